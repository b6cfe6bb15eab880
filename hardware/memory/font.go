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

package memory

// the number of bytes used by a single glyph in the font.
const GlyphSize = 5

// the built-in font. sixteen glyphs, 0 to F, each five bytes high and four
// pixels wide. the high nibble of each byte is the pixel data.
var font = [16 * GlyphSize]uint8{
	0x60, 0xd0, 0x90, 0xb0, 0x60, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0x60, 0x90, 0x20, 0x40, 0xf0, // 2
	0x60, 0x90, 0x20, 0x90, 0x60, // 3
	0x20, 0x60, 0xa0, 0xf0, 0x20, // 4
	0xf0, 0x80, 0xe0, 0x10, 0xe0, // 5
	0x60, 0x80, 0xe0, 0x90, 0x60, // 6
	0xf0, 0x10, 0x20, 0x40, 0x40, // 7
	0x60, 0x90, 0x60, 0x90, 0x60, // 8
	0x60, 0x90, 0x70, 0x10, 0x60, // 9
	0x60, 0x90, 0xf0, 0x90, 0x90, // A
	0xe0, 0x90, 0xe0, 0x90, 0xe0, // B
	0x60, 0x80, 0x80, 0x80, 0x60, // C
	0xe0, 0x90, 0x90, 0x90, 0xe0, // D
	0xf0, 0x80, 0xe0, 0x80, 0xf0, // E
	0xf0, 0x80, 0xe0, 0x80, 0x80, // F
}

// Font returns a copy of the built-in font.
func Font() []uint8 {
	f := make([]uint8, len(font))
	copy(f, font[:])
	return f
}
