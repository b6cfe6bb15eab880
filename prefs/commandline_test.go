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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/test"
)

func TestCommandLineStack(t *testing.T) {
	// empty stack
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	ok, v := prefs.GetCommandLinePref("foo")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "bar")

	// value is removed once it has been retrieved
	ok, _ = prefs.GetCommandLinePref("foo")
	test.ExpectFailure(t, ok)

	// second group hides the first
	prefs.PushCommandLineStack("hardware.opcodesPerFrame::30")
	ok, _ = prefs.GetCommandLinePref("baz")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.opcodesPerFrame::30")

	// unused entries in the first group are returned by the pop
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestCommandLineMalformed(t *testing.T) {
	prefs.PushCommandLineStack("foo; ::; bar::1::2; baz :: 3")
	defer prefs.PopCommandLineStack()

	ok, _ := prefs.GetCommandLinePref("foo")
	test.ExpectFailure(t, ok)

	ok, v := prefs.GetCommandLinePref("baz")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "3")
}
