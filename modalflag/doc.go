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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Instead of defining flags globally, flags are added to a
// Modes instance:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	echo := md.AddBool("echo", false, "echo log to stdout")
//
// Program modes are added with AddSubModes(). The first sub-mode is the
// default mode and is selected if the first argument after the flags does
// not name a mode:
//
//	md.AddSubModes("PLAY", "TERM", "HEADLESS")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "PLAY":
//		...
//	}
//
// A new set of flags and sub-modes can then be defined for the selected mode
// by calling NewMode() and Parse() again. Arguments consumed by earlier calls
// to Parse() are not seen by later calls.
//
// Help is printed to Output when the -help flag is found. The help message
// includes the mode path and the list of sub-modes.
package modalflag
