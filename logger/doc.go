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

// Package logger is the central log for the emulator. Entries are made up of a
// tag and a detail string. The tag is usually the name of the package or
// component making the entry.
//
// Repeated entries (same tag and detail) are folded into a single entry with
// a repeat count. The number of entries is capped and the oldest entries are
// dropped when the cap is reached.
//
// Log requests must be accompanied by a Permission. Environments that should
// not pollute the log (for example, a throwaway emulation created for a test)
// can refuse permission. Use logger.Allow when the request should always be
// honoured.
//
// The package level functions operate on the central logger. The NewLogger()
// function can be used to create a local logger, which is mostly useful for
// testing.
package logger
