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

// Package prefs facilitates the storage of preferential values in the
// emulator. Preference values are typed and are safe to read from any
// goroutine.
//
// A value is associated with a key by adding it to a Disk instance. The Disk
// type saves and loads all values added to it, from and to a file. Keys that
// are in the file but which have not been added to the Disk instance are
// preserved when the file is saved. This means that more than one Disk
// instance can share the same file.
//
// Values can also be supplied on the command line, as a string of key/value
// pairs separated by semicolons:
//
//	hardware.opcodesPerFrame::30; hardware.quirks.vfReset::false
//
// The string is pushed onto the command line stack with
// PushCommandLineStack(). Values on the stack take priority over the values
// in the prefs file when Disk.Load() is called, and are not saved.
package prefs
