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

// Package hardware is the base package for the emulated machine. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains references to
// all the sub-systems. The Machine is not safe for use from more than one
// goroutine. Other goroutines should observe the machine through the
// Snapshot type, which is a deep copy of the machine state at a moment in
// time.
package hardware
