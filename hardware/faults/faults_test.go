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

package faults_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/faults"
	"github.com/jetsetilly/gopher8/test"
)

func TestMessages(t *testing.T) {
	test.ExpectEquality(t, faults.NewInvalidOpcode(0x8fff, 0x202).Error(), "invalid opcode 0x8FFF at 0x0202")
	test.ExpectEquality(t, faults.NewInvalidReturn(0x200).Error(), "invalid return at 0x0200")
	test.ExpectEquality(t, faults.NewRomTooLarge("big.ch8", 4000, 3584).Error(),
		"rom 'big.ch8' is too large: 4000 bytes, allowed: 3584 bytes")
	test.ExpectEquality(t, faults.NewMemoryOutOfRange(0x1000).Error(), "memory address out of range 0x1000")
}

func TestIs(t *testing.T) {
	var err error = faults.NewInvalidReturn(0x200)
	test.ExpectSuccess(t, faults.Is(err, faults.InvalidReturn))
	test.ExpectFailure(t, faults.Is(err, faults.InvalidOpcode))
	test.ExpectFailure(t, faults.Is(nil, faults.InvalidOpcode))

	// wrapped faults are still found
	err = fmt.Errorf("engine: %w", faults.NewInvalidOpcode(0, 0x200))
	test.ExpectSuccess(t, faults.Is(err, faults.InvalidOpcode))
	err = curated.Errorf("engine: %v", faults.NewInvalidOpcode(0, 0x200))
	test.ExpectSuccess(t, faults.Is(err, faults.InvalidOpcode))
}

func TestInvalidRomUnwrap(t *testing.T) {
	err := faults.NewInvalidRom("missing.ch8", fs.ErrNotExist)
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))
	test.ExpectEquality(t, err.Error(), "invalid rom 'missing.ch8': file does not exist")
}
