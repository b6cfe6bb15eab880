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

// Package cpu emulates the instruction decoder and dispatcher of the
// machine. The CPU type holds the register file (V0 to VF, I, the program
// counter and the call stack) and reaches the rest of the machine through the
// small interfaces defined in this package. This means the CPU can be tested
// without a complete machine.
//
// ExecuteInstruction() fetches, decodes and executes a single instruction.
// The program counter is advanced past the instruction before it is
// executed, so instructions that change the flow of the program overwrite the
// advanced value.
//
// Instructions that cannot be decoded, and returns from an empty call stack,
// result in a fault from the faults package. The CPU does not remember the
// fault; it is up to the caller to stop calling ExecuteInstruction().
//
// Some instructions have been interpreted differently over the years. The
// behaviour of these instructions is controlled by the quirks in the
// preferences package.
package cpu
