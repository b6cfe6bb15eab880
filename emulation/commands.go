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

package emulation

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/input"
)

// Command is an instruction from a frontend to the emulation. The list of
// commands is closed; only the types in this package implement the
// interface.
type Command interface {
	fmt.Stringer
	command()
}

// SetRunning starts or stops the emulation.
type SetRunning struct {
	Running bool
}

func (SetRunning) command() {}

func (c SetRunning) String() string {
	return fmt.Sprintf("SetRunning(%v)", c.Running)
}

// StepFrame processes a single frame while the emulation is not running.
type StepFrame struct{}

func (StepFrame) command() {}

func (StepFrame) String() string {
	return "StepFrame"
}

// LoadROM loads the file at Path into memory.
type LoadROM struct {
	Path string
}

func (LoadROM) command() {}

func (c LoadROM) String() string {
	return fmt.Sprintf("LoadROM(%s)", c.Path)
}

// SetOpcodesPerFrame changes the speed of the emulation. N must be positive.
type SetOpcodesPerFrame struct {
	N uint32
}

func (SetOpcodesPerFrame) command() {}

func (c SetOpcodesPerFrame) String() string {
	return fmt.Sprintf("SetOpcodesPerFrame(%d)", c.N)
}

// SetKeysDown replaces the state of every key on the keypad.
type SetKeysDown struct {
	Keys [input.NumKeys]bool
}

func (SetKeysDown) command() {}

func (c SetKeysDown) String() string {
	return fmt.Sprintf("SetKeysDown(%s)", input.Keypad(c.Keys))
}

// Exit ends the emulation.
type Exit struct{}

func (Exit) command() {}

func (Exit) String() string {
	return "Exit"
}
