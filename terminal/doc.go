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

// Package terminal is a frontend that runs the emulation inside a terminal.
//
// The display is drawn with half-block characters so that every character
// cell shows two rows of pixels. A status line below the display shows the
// ROM name, the frame number, the measured frame rate and the emulation
// state.
//
// Terminals do not report the release of a key. A key is instead considered
// to be held down for a short period after it is pressed. The period is
// renewed by the terminal's own key repeat.
package terminal
