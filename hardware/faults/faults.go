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

// Package faults describes the conditions that halt the emulated machine.
// Once a fault has been raised no further instruction is executed until the
// machine is replaced.
//
// All faults are of the Fault type. The Kind field says what sort of fault
// it is and which of the other fields are meaningful.
package faults

import (
	"errors"
	"fmt"
)

// Kind of fault.
type Kind int

// List of valid Kind values.
const (
	InvalidOpcode Kind = iota
	InvalidReturn
	RomTooLarge
	InvalidRom
	MemoryOutOfRange
)

func (k Kind) String() string {
	switch k {
	case InvalidOpcode:
		return "invalid opcode"
	case InvalidReturn:
		return "invalid return"
	case RomTooLarge:
		return "rom too large"
	case InvalidRom:
		return "invalid rom"
	case MemoryOutOfRange:
		return "memory out of range"
	}
	return fmt.Sprintf("unknown fault (%d)", int(k))
}

// Fault is the error type for all machine faults.
type Fault struct {
	Kind Kind

	// InvalidOpcode
	Opcode uint16

	// InvalidOpcode, InvalidReturn: the address of the instruction
	// MemoryOutOfRange: the address that was accessed
	Address uint16

	// RomTooLarge, InvalidRom
	Path string

	// RomTooLarge
	Size    int
	Allowed int

	// InvalidRom: the underlying error
	Err error
}

// NewInvalidOpcode is used when an instruction cannot be decoded. The address
// is the address of the first byte of the instruction.
func NewInvalidOpcode(opcode uint16, address uint16) *Fault {
	return &Fault{Kind: InvalidOpcode, Opcode: opcode, Address: address}
}

// NewInvalidReturn is used when a return instruction is executed with an
// empty stack.
func NewInvalidReturn(address uint16) *Fault {
	return &Fault{Kind: InvalidReturn, Address: address}
}

// NewRomTooLarge is used when a ROM file is too large to fit in memory.
func NewRomTooLarge(path string, size int, allowed int) *Fault {
	return &Fault{Kind: RomTooLarge, Path: path, Size: size, Allowed: allowed}
}

// NewInvalidRom is used when a ROM file cannot be read.
func NewInvalidRom(path string, err error) *Fault {
	return &Fault{Kind: InvalidRom, Path: path, Err: err}
}

// NewMemoryOutOfRange is used when an instruction accesses an address outside
// of the addressable memory.
func NewMemoryOutOfRange(address uint16) *Fault {
	return &Fault{Kind: MemoryOutOfRange, Address: address}
}

func (f *Fault) Error() string {
	switch f.Kind {
	case InvalidOpcode:
		return fmt.Sprintf("invalid opcode 0x%04X at 0x%04X", f.Opcode, f.Address)
	case InvalidReturn:
		return fmt.Sprintf("invalid return at 0x%04X", f.Address)
	case RomTooLarge:
		return fmt.Sprintf("rom '%s' is too large: %d bytes, allowed: %d bytes", f.Path, f.Size, f.Allowed)
	case InvalidRom:
		return fmt.Sprintf("invalid rom '%s': %v", f.Path, f.Err)
	case MemoryOutOfRange:
		return fmt.Sprintf("memory address out of range 0x%04X", f.Address)
	}
	return f.Kind.String()
}

// Unwrap returns the underlying error of an InvalidRom fault.
func (f *Fault) Unwrap() error {
	return f.Err
}

// Is returns true if the error is a Fault (or wraps a Fault) of the specified
// kind.
func Is(err error, kind Kind) bool {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind == kind
	}
	return false
}
