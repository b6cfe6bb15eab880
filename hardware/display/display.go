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

// Package display implements the monochrome framebuffer of the machine. The
// size of the framebuffer is fixed when it is created.
package display

import (
	"strings"
)

// Display is a grid of pixels. A pixel is either on or off.
type Display struct {
	width  int
	height int

	// pixels are stored row by row
	Pixels []bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay(width int, height int) *Display {
	return &Display{
		width:  width,
		height: height,
		Pixels: make([]bool, width*height),
	}
}

// Snapshot creates a deep copy of the display.
func (dsp *Display) Snapshot() *Display {
	n := *dsp
	n.Pixels = make([]bool, len(dsp.Pixels))
	copy(n.Pixels, dsp.Pixels)
	return &n
}

// Width of the display in pixels.
func (dsp *Display) Width() int {
	return dsp.width
}

// Height of the display in pixels.
func (dsp *Display) Height() int {
	return dsp.height
}

// Clear turns all pixels off.
func (dsp *Display) Clear() {
	clear(dsp.Pixels)
}

// Pixel returns the state of the pixel at x, y. Coordinates outside of the
// display return false.
func (dsp *Display) Pixel(x int, y int) bool {
	if x < 0 || y < 0 || x >= dsp.width || y >= dsp.height {
		return false
	}
	return dsp.Pixels[y*dsp.width+x]
}

// XORPixel inverts the pixel at x, y. Returns true if the pixel was on
// before the inversion (ie. the pixel has been turned off). Coordinates
// outside of the display are ignored.
func (dsp *Display) XORPixel(x int, y int) bool {
	if x < 0 || y < 0 || x >= dsp.width || y >= dsp.height {
		return false
	}
	i := y*dsp.width + x
	was := dsp.Pixels[i]
	dsp.Pixels[i] = !was
	return was
}

// String returns the display as a series of lines. Pixels that are on are
// shown with the '#' character.
func (dsp *Display) String() string {
	s := strings.Builder{}
	for y := 0; y < dsp.height; y++ {
		for x := 0; x < dsp.width; x++ {
			if dsp.Pixels[y*dsp.width+x] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}
