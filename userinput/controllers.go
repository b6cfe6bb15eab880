// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package userinput

import (
	"github.com/jetsetilly/gopher8/emulation"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/preferences"
)

// Help describes the keypad layout and the hotkeys.
const Help = `keypad:
  1 2 3 4        1 2 3 C
  Q W E R   ->   4 5 6 D
  A S D F        7 8 9 E
  Z X C V        A 0 B F

hotkeys:
  space       run/pause
  F5          step one frame while paused
  F12         reset (keeping the ROM)
  = and -     increase/decrease opcodes per frame
  backspace   default opcodes per frame
  escape      quit`

// The range and step of the speed hotkeys.
const (
	MinSpeed  = 1
	MaxSpeed  = 100
	SpeedStep = 1
)

// HandleInput conceptualises the commands being sent to the emulation. The
// emulation.Queue type satisfies the interface.
type HandleInput interface {
	Push(cmd emulation.Command)
}

// Controllers translates user input into emulation commands.
type Controllers struct {
	keymap *Keymap
	state  emulation.Reader

	// the keys currently held down
	down [input.NumKeys]bool

	// whether or not the last HandleUserInput() was for an event that was
	// consumed by the emulation as keypad input
	LastKeyHandled bool

	// is true if the user has requested the end of the program
	Quit bool

	// is true if the user has requested a machine reset. the frontend should
	// replace the engine and clear the flag
	Reset bool
}

// NewControllers is the preferred method of initialisation for the
// Controllers type. The reader is used to decide the effect of toggling
// hotkeys.
func NewControllers(keymap *Keymap, state emulation.Reader) *Controllers {
	return &Controllers{
		keymap: keymap,
		state:  state,
	}
}

// Down returns the keys currently held down.
func (c *Controllers) Down() [input.NumKeys]bool {
	return c.down
}

// SetReader changes the source of emulation state. Used when the engine has
// been replaced.
func (c *Controllers) SetReader(state emulation.Reader) {
	c.state = state
}

// HandleUserInput translates the event and forwards any resulting commands.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) {
	c.LastKeyHandled = false

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
		handle.Push(emulation.Exit{})
	case EventKeyboard:
		c.keyboard(ev, handle)
	}
}

// ReleaseAll releases every key that is held down.
func (c *Controllers) ReleaseAll(handle HandleInput) {
	c.down = [input.NumKeys]bool{}
	handle.Push(emulation.SetKeysDown{Keys: c.down})
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) {
	if ev.Repeat {
		return
	}

	// a release is always forwarded, even if a modifier has been pressed
	// since the key went down
	if i, ok := c.keymap.Lookup(ev.Key); ok && (ev.Mod == KeyModNone || !ev.Down) {
		c.LastKeyHandled = true
		if c.down[i] == ev.Down {
			return
		}
		c.down[i] = ev.Down
		handle.Push(emulation.SetKeysDown{Keys: c.down})
		return
	}

	if !ev.Down {
		return
	}

	switch ev.Key {
	case "Space":
		running := false
		if c.state != nil {
			running = c.state.Latest().Running
		}
		handle.Push(emulation.SetRunning{Running: !running})
	case "F5":
		handle.Push(emulation.StepFrame{})
	case "F12":
		c.Reset = true
	case "=", "+", "Keypad +":
		c.changeSpeed(handle, SpeedStep)
	case "-", "Keypad -":
		c.changeSpeed(handle, -SpeedStep)
	case "Backspace":
		handle.Push(emulation.SetOpcodesPerFrame{N: preferences.DefaultOpcodesPerFrame})
	case "Escape":
		c.Quit = true
		handle.Push(emulation.Exit{})
	}
}

// change the number of opcodes per frame by delta, limited by the range of
// the speed hotkeys. nothing is sent if the speed is unchanged.
func (c *Controllers) changeSpeed(handle HandleInput, delta int) {
	if c.state == nil {
		return
	}

	current := int(c.state.Latest().OpcodesPerFrame)

	// a speed set beyond the range by the preferences can still be reduced
	n := current + delta
	if delta > 0 && n > MaxSpeed {
		n = max(current, MaxSpeed)
	}
	if n < MinSpeed {
		n = MinSpeed
	}

	if n == current {
		return
	}

	handle.Push(emulation.SetOpcodesPerFrame{N: uint32(n)})
}
