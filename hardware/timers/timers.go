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

// Package timers implements the delay and sound timers. Both timers count
// down to zero at the frame rate. The sound timer produces a tone while it is
// non-zero.
package timers

import "fmt"

// Timers of the machine.
type Timers struct {
	Delay uint8
	Sound uint8
}

func (tmr Timers) String() string {
	return fmt.Sprintf("DT=%d ST=%d", tmr.Delay, tmr.Sound)
}

// Tick should be called once per frame. Each timer is decremented by one
// unless it is already zero.
func (tmr *Timers) Tick() {
	if tmr.Delay > 0 {
		tmr.Delay--
	}
	if tmr.Sound > 0 {
		tmr.Sound--
	}
}

// DelayTimer returns the current value of the delay timer.
func (tmr *Timers) DelayTimer() uint8 {
	return tmr.Delay
}

// SetDelayTimer sets the value of the delay timer.
func (tmr *Timers) SetDelayTimer(v uint8) {
	tmr.Delay = v
}

// SetSoundTimer sets the value of the sound timer.
func (tmr *Timers) SetSoundTimer(v uint8) {
	tmr.Sound = v
}

// Beeping returns true if the sound timer is non-zero.
func (tmr *Timers) Beeping() bool {
	return tmr.Sound > 0
}
