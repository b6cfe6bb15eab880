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

package audio

import "math"

// Tone is a sine wave generator.
type Tone struct {
	// frequency in Hz
	Frequency float64

	// volume in the range 0.0 to 1.0
	Volume float64

	// phase of the wave in the range 0.0 to 1.0. the phase is continuous
	// across calls to Generate()
	phase float64
}

// Generate fills the buffer with the next part of the wave.
func (t *Tone) Generate(buf []uint8) {
	step := t.Frequency / SampleFreq
	amp := 127.0 * t.Volume * volumeScale
	for i := range buf {
		v := math.Sin(2 * math.Pi * t.phase)
		buf[i] = uint8(Silence + int(math.Round(v*amp)))
		t.phase += step
		if t.phase >= 1.0 {
			t.phase -= 1.0
		}
	}
}
