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

// Package input implements the sixteen key keypad of the machine. Keys are
// numbered 0x0 to 0xF.
package input

import (
	"fmt"
	"strings"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Keypad is the current state of every key. True means the key is down.
type Keypad [NumKeys]bool

func (kp Keypad) String() string {
	s := strings.Builder{}
	for k, down := range kp {
		if down {
			s.WriteString(fmt.Sprintf("%X", k))
		} else {
			s.WriteRune('-')
		}
	}
	return s.String()
}

// IsDown returns true if the key is down. Keys outside the range 0x0 to 0xF
// are never down.
func (kp *Keypad) IsDown(key uint8) bool {
	if int(key) >= NumKeys {
		return false
	}
	return kp[key]
}

// Set the state of all keys.
func (kp *Keypad) Set(keys [NumKeys]bool) {
	*kp = keys
}

// Pressed returns the lowest numbered key that is down in the current state
// but which was up in the previous state.
func (kp *Keypad) Pressed(previous Keypad) (uint8, bool) {
	for k := range kp {
		if kp[k] && !previous[k] {
			return uint8(k), true
		}
	}
	return 0, false
}
