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

//go:build !release

package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/resources"
	"github.com/jetsetilly/gopher8/test"
)

func TestJoinPath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	p, err := resources.JoinPath("foo", "bar")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(".gopher8", "foo", "bar"))

	// parent directory has been created but the file itself has not
	_, err = os.Stat(filepath.Join(".gopher8", "foo"))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(p)
	test.ExpectFailure(t, err)

	// base path is not prepended twice
	q, err := resources.JoinPath(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, q, p)
}
