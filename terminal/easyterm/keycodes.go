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

package easyterm

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// control characters.
const (
	KeyInterrupt      = 3  // end-of-text character
	KeySuspend        = 26 // substitute character
	KeyTab            = 9
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeyBackspace      = 127
)

// KeyInterruptName is the name given by DecodeKeys() to the interrupt
// character.
const KeyInterruptName = "Interrupt"

// escape sequences mapped to key names. the names follow the names used by
// SDL.
var escSequences = map[string]string{
	"[A":   "Up",
	"[B":   "Down",
	"[C":   "Right",
	"[D":   "Left",
	"[H":   "Home",
	"[F":   "End",
	"OP":   "F1",
	"OQ":   "F2",
	"OR":   "F3",
	"OS":   "F4",
	"[15~": "F5",
	"[17~": "F6",
	"[18~": "F7",
	"[19~": "F8",
	"[20~": "F9",
	"[21~": "F10",
	"[23~": "F11",
	"[24~": "F12",
	"[3~":  "Delete",
}

// DecodeKeys converts input read from a terminal in raw mode into a list of
// key names. Printable characters are returned in upper case. Unrecognised
// escape sequences are ignored.
func DecodeKeys(b []byte) []string {
	var keys []string

	for len(b) > 0 {
		switch b[0] {
		case KeyEsc:
			if len(b) == 1 {
				keys = append(keys, "Escape")
				b = b[1:]
				continue
			}

			// an escape sequence ends with a letter or a tilde
			n := 2
			if b[1] == '[' || b[1] == 'O' {
				for n < len(b) && !isSequenceEnd(b[n-1], n) {
					n++
				}
			}
			if k, ok := escSequences[string(b[1:n])]; ok {
				keys = append(keys, k)
			}
			b = b[n:]
			continue
		case KeyInterrupt:
			keys = append(keys, KeyInterruptName)
		case KeyCarriageReturn:
			keys = append(keys, "Return")
		case KeyTab:
			keys = append(keys, "Tab")
		case KeyBackspace:
			keys = append(keys, "Backspace")
		case ' ':
			keys = append(keys, "Space")
		default:
			r, sz := utf8.DecodeRune(b)
			if unicode.IsPrint(r) {
				keys = append(keys, strings.ToUpper(string(r)))
			}
			b = b[sz:]
			continue
		}
		b = b[1:]
	}

	return keys
}

// the character at index n-1 ends the sequence. the first two characters of
// the sequence are the escape character and the introducer.
func isSequenceEnd(c byte, n int) bool {
	if n <= 2 {
		return false
	}
	return c == '~' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
