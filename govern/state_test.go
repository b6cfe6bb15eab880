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

package govern_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/test"
)

func TestDerive(t *testing.T) {
	err := errors.New("test")

	test.ExpectEquality(t, govern.Derive(false, false, false, nil), govern.Idle)
	test.ExpectEquality(t, govern.Derive(true, false, false, nil), govern.Running)
	test.ExpectEquality(t, govern.Derive(false, true, false, nil), govern.Stepping)
	test.ExpectEquality(t, govern.Derive(true, true, false, nil), govern.Running)
	test.ExpectEquality(t, govern.Derive(true, false, false, err), govern.Errored)
	test.ExpectEquality(t, govern.Derive(true, false, true, err), govern.Exiting)
}

func TestStateIntegrity(t *testing.T) {
	test.ExpectSuccess(t, govern.StateIntegrity(govern.Idle, govern.Normal))
	test.ExpectSuccess(t, govern.StateIntegrity(govern.Running, govern.WaitingForKey))
	test.ExpectSuccess(t, govern.StateIntegrity(govern.Stepping, govern.WaitingForKey))
	test.ExpectFailure(t, govern.StateIntegrity(govern.Idle, govern.WaitingForKey))
	test.ExpectFailure(t, govern.StateIntegrity(govern.Errored, govern.WaitingForKey))
}

func TestTerminal(t *testing.T) {
	test.ExpectSuccess(t, govern.Errored.Terminal())
	test.ExpectSuccess(t, govern.Exiting.Terminal())
	test.ExpectFailure(t, govern.Running.Terminal())
	test.ExpectEquality(t, govern.Stepping.String(), "Stepping")
}
