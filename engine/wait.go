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

package engine

import (
	"time"
)

// WaitForKey implements the cpu.KeyWaiter interface. It is called by the CPU
// from the engine's goroutine during the FX0A instruction.
//
// The wait is a loop that publishes a snapshot, waits for a command or for
// the end of the frame interval, and then drains the command queue. Timers
// continue to tick at the frame rate while the machine is running.
//
// The wait is abandoned if an exit is requested, if the machine halts or if
// running is turned off. In the last case the machine will not be stepping
// and the FX0A instruction is waited on again when running resumes.
func (eng *Engine) WaitForKey() (uint8, bool) {
	m := eng.machine

	m.WaitingForKey = true
	defer func() {
		m.WaitingForKey = false
	}()

	previous := *m.Keypad

	tick := time.NewTicker(eng.lmtr.Target())
	defer tick.Stop()

	for {
		eng.publish()

		select {
		case <-eng.queue.Notify():
		case <-tick.C:
			if m.Running {
				m.Timers.Tick()
				eng.sound()
			}
		}

		eng.drain()

		if m.ExitRequested || m.Err != nil {
			return 0, false
		}

		if !m.Running && !m.StepOnce {
			return 0, false
		}

		if key, ok := m.Keypad.Pressed(previous); ok {
			return key, true
		}

		previous = *m.Keypad
	}
}
