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
	"strings"

	"github.com/jetsetilly/gopher8/hardware/input"
)

// Keymap maps key names to keypad indices.
type Keymap struct {
	keys map[string]uint8
}

// the default layout uses the four by four block of keys on the left of a
// QWERTY keyboard
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
var defaultLayout = [input.NumKeys]string{
	0x0: "X",
	0x1: "1",
	0x2: "2",
	0x3: "3",
	0x4: "Q",
	0x5: "W",
	0x6: "E",
	0x7: "A",
	0x8: "S",
	0x9: "D",
	0xa: "Z",
	0xb: "C",
	0xc: "4",
	0xd: "R",
	0xe: "F",
	0xf: "V",
}

// NewKeymap returns the default keymap.
func NewKeymap() *Keymap {
	km := &Keymap{
		keys: make(map[string]uint8, input.NumKeys),
	}
	for i, k := range defaultLayout {
		km.keys[k] = uint8(i)
	}
	return km
}

// Lookup returns the keypad index for the named key. Key names are not case
// sensitive.
func (km *Keymap) Lookup(key string) (uint8, bool) {
	i, ok := km.keys[strings.ToUpper(key)]
	return i, ok
}

// String returns the key name for every keypad index.
func (km *Keymap) String() string {
	s := strings.Builder{}
	for i := 0; i < input.NumKeys; i++ {
		for k, v := range km.keys {
			if int(v) == i {
				s.WriteString(k)
				break
			}
		}
	}
	return s.String()
}
