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

// Package memory implements the 4KB of addressable memory of the machine.
//
// The built-in font is installed at the bottom of memory when the memory is
// created. Programs are loaded at ProgramOrigin and can be at most
// MaxROMSize bytes long.
//
// Reads and writes beyond the end of memory are not possible. They result in
// a MemoryOutOfRange fault rather than a panic. This can happen when an
// instruction adds an offset to the I register, which is not masked to 12
// bits.
package memory
