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

package display_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestXOR(t *testing.T) {
	dsp := display.NewDisplay(64, 32)
	test.ExpectEquality(t, dsp.Width(), 64)
	test.ExpectEquality(t, dsp.Height(), 32)
	test.ExpectEquality(t, len(dsp.Pixels), 64*32)

	test.ExpectFailure(t, dsp.XORPixel(10, 5))
	test.ExpectSuccess(t, dsp.Pixel(10, 5))
	test.ExpectSuccess(t, dsp.XORPixel(10, 5))
	test.ExpectFailure(t, dsp.Pixel(10, 5))

	// out of range
	test.ExpectFailure(t, dsp.XORPixel(64, 0))
	test.ExpectFailure(t, dsp.Pixel(-1, 0))
}

func TestClearAndSnapshot(t *testing.T) {
	dsp := display.NewDisplay(8, 2)
	dsp.XORPixel(0, 0)
	dsp.XORPixel(7, 1)
	test.ExpectEquality(t, dsp.String(), "#.......\n.......#\n")

	snap := dsp.Snapshot()
	dsp.Clear()
	test.ExpectEquality(t, dsp.String(), "........\n........\n")
	test.ExpectEquality(t, snap.String(), "#.......\n.......#\n")
	test.ExpectEquality(t, snap.Width(), 8)
}
