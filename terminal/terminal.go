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

package terminal

import (
	"os"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/engine"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/terminal/easyterm"
	"github.com/jetsetilly/gopher8/userinput"
)

// sentinal error pattern.
const TerminalError = "terminal: %v"

// the period a key is held down after it was last seen in the input. long
// enough to bridge the delay before the terminal's key repeat starts.
const keyHold = 500 * time.Millisecond

// the rate at which input is serviced.
const serviceRate = time.Second / 60

// Terminal is the terminal frontend.
type Terminal struct {
	easyterm.Terminal

	eng  *engine.Engine
	ctrl *userinput.Controllers

	// the time at which each held key should be released
	held map[string]time.Time

	input chan []byte
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The terminal is put into raw mode. CleanUp() must be called before
// the program ends.
func NewTerminal(eng *engine.Engine) (*Terminal, error) {
	trm := &Terminal{
		eng:   eng,
		ctrl:  userinput.NewControllers(userinput.NewKeymap(), eng.State()),
		held:  make(map[string]time.Time),
		input: make(chan []byte, 16),
	}

	if err := trm.Initialise(os.Stdin, os.Stdout); err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	if err := trm.RawMode(); err != nil {
		trm.Terminal.CleanUp()
		return nil, curated.Errorf(TerminalError, err)
	}

	trm.Print(easyterm.HideCursor)
	trm.Print(easyterm.ClearScreen)

	// stdin is read in a separate goroutine. the goroutine will be blocked on
	// the read when the program ends. this is not a problem because the
	// terminal is the last thing to end
	go func() {
		for {
			b := make([]byte, 32)
			n, err := os.Stdin.Read(b)
			if err != nil {
				close(trm.input)
				return
			}
			trm.input <- b[:n]
		}
	}()

	return trm, nil
}

// CleanUp returns the terminal to its normal state.
func (trm *Terminal) CleanUp() {
	trm.Print(easyterm.NormalPen)
	trm.Print(easyterm.ShowCursor)
	trm.Print("\r\n")
	trm.Terminal.CleanUp()
}

// Engine returns the current engine. The engine will have changed if the
// user has reset the machine.
func (trm *Terminal) Engine() *engine.Engine {
	return trm.eng
}

// Run services user input and draws the display until the user quits or the
// engine ends.
func (trm *Terminal) Run() error {
	tck := time.NewTicker(serviceRate)
	defer tck.Stop()

	for {
		select {
		case b, ok := <-trm.input:
			if !ok {
				trm.ctrl.HandleUserInput(userinput.EventQuit{}, trm.eng.Commands())
				break
			}
			for _, k := range easyterm.DecodeKeys(b) {
				trm.keyDown(k)
			}
		case now := <-tck.C:
			trm.releaseKeys(now)
		case <-trm.eng.State().Updated():
			trm.Print(render(trm.eng.State().Latest(), trm.Geometry()))
		case <-trm.eng.Done():
			if !trm.ctrl.Quit {
				return curated.Errorf(TerminalError, "engine ended unexpectedly")
			}
		}

		if trm.ctrl.Quit {
			trm.eng.Wait()
			return nil
		}

		if trm.ctrl.Reset {
			if err := trm.reset(); err != nil {
				return err
			}
		}
	}
}

func (trm *Terminal) keyDown(key string) {
	if key == easyterm.KeyInterruptName {
		trm.ctrl.HandleUserInput(userinput.EventQuit{}, trm.eng.Commands())
		return
	}

	trm.ctrl.HandleUserInput(userinput.EventKeyboard{Key: key, Down: true}, trm.eng.Commands())
	if trm.ctrl.LastKeyHandled {
		trm.held[key] = time.Now().Add(keyHold)
	}
}

func (trm *Terminal) releaseKeys(now time.Time) {
	for k, t := range trm.held {
		if now.After(t) {
			delete(trm.held, k)
			trm.ctrl.HandleUserInput(userinput.EventKeyboard{Key: k, Down: false}, trm.eng.Commands())
		}
	}
}

func (trm *Terminal) reset() error {
	trm.ctrl.Reset = false

	eng, err := engine.Replace(trm.eng, true)
	if err != nil {
		return curated.Errorf(TerminalError, err)
	}
	trm.eng = eng
	trm.ctrl.SetReader(eng.State())

	// keys held before the reset are released in the new engine
	trm.ctrl.ReleaseAll(eng.Commands())
	trm.held = make(map[string]time.Time)

	logger.Log(logger.Allow, "terminal", "machine reset")

	return nil
}
