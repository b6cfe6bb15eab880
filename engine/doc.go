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

// Package engine runs the emulated machine in a background goroutine at a
// fixed rate of sixty frames per second.
//
// An engine is created with New(). The goroutine starts immediately. Frontends
// control the engine by pushing commands onto the queue returned by
// Commands() and observe the machine through the Reader returned by State().
//
// The only way to end an engine is the Exit command. Wait() blocks until the
// goroutine has ended. Engines are not reused: to reset the machine a new
// engine is created with Replace(), which ends the old engine and waits for
// it before creating the new one.
package engine
