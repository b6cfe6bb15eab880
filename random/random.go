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

package random

import (
	"math/rand"
	"time"
)

// Source is the minimal interface needed by consumers of random bytes.
type Source interface {
	Byte() uint8
}

// Random is a random number generator for the emulation. Not safe for use by
// more than one goroutine.
type Random struct {
	rnd *rand.Rand

	// use zero seed rather than a time based seed. only takes effect after a
	// call to Reset()
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	rnd := &Random{}
	rnd.Reset()
	return rnd
}

// Reset the random number generator. The sequence will repeat after a reset
// if ZeroSeed is true.
func (rnd *Random) Reset() {
	var seed int64
	if !rnd.ZeroSeed {
		seed = time.Now().UnixNano()
	}
	rnd.rnd = rand.New(rand.NewSource(seed))
}

// Intn returns a random number in the range [0, n).
func (rnd *Random) Intn(n int) int {
	return rnd.rnd.Intn(n)
}

// Byte returns a random number in the range [0, 255]. Implements the Source
// interface.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.rnd.Intn(256))
}
