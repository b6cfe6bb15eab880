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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a formatting
// pattern and placeholder values, in the same way as the Errorf() function in
// the fmt package, but the pattern is remembered so that errors can later be
// identified by it:
//
//	const NoPrefsFile = "prefs: no prefs file (%s)"
//
//	e := curated.Errorf(NoPrefsFile, filename)
//
//	if curated.Is(e, NoPrefsFile) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain:
//
//	f := curated.Errorf("terminal: %v", e)
//
//	if curated.Has(f, NoPrefsFile) {
//		fmt.Println("true")
//	}
//
// Sentinal patterns should be stored as a const string, suitably named and
// commented, close to the code that creates them.
//
// The Error() implementation normalises the error chain so that the message
// does not contain duplicate adjacent parts. Chains are thought of as being
// composed of parts separated by the sub-string ": ". For example:
//
//	prefs: prefs: no prefs file
//
// is printed as:
//
//	prefs: no prefs file
//
// Curated errors also implement Unwrap() so they can be used with the As()
// and Is() functions in the errors package of the standard library. Values
// that are themselves errors are part of the chain.
package curated
