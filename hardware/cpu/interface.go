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

package cpu

// Memory defines the memory operations required by the CPU.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Display defines the display operations required by the CPU.
type Display interface {
	Clear()

	// XORPixel inverts the pixel and returns true if the pixel was on before
	// the inversion
	XORPixel(x int, y int) bool

	Width() int
	Height() int
}

// Keypad defines the key state required by the EX9E and EXA1 instructions.
type Keypad interface {
	IsDown(key uint8) bool
}

// Timers defines the timer operations required by the CPU.
type Timers interface {
	DelayTimer() uint8
	SetDelayTimer(v uint8)
	SetSoundTimer(v uint8)
}

// KeyWaiter is used by the FX0A instruction. WaitForKey() should block until
// a key has been pressed and return the number of that key.
//
// The ok value should be false if the wait was abandoned, for example because
// the emulation is ending. In that case the CPU leaves the program counter
// pointing at the FX0A instruction.
type KeyWaiter interface {
	WaitForKey() (key uint8, ok bool)
}

// RandomSource is used by the CXNN instruction.
type RandomSource interface {
	Byte() uint8
}
