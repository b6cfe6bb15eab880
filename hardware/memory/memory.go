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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/hardware/faults"
)

// memory layout.
const (
	Size          = 4096
	FontOrigin    = 0x000
	ProgramOrigin = 0x200
	MaxROMSize    = Size - ProgramOrigin
)

// Memory is the addressable memory of the machine.
type Memory struct {
	Data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The font is installed in the new memory.
func NewMemory() *Memory {
	mem := &Memory{}
	copy(mem.Data[FontOrigin:], font[:])
	return mem
}

// Snapshot creates a copy of memory.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	return &n
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	for i := 0; i < Size; i += 16 {
		s.WriteString(fmt.Sprintf("%03x  % x\n", i, mem.Data[i:i+16]))
	}
	return s.String()
}

// Read byte from address.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if int(address) >= Size {
		return 0, faults.NewMemoryOutOfRange(address)
	}
	return mem.Data[address], nil
}

// Write byte to address.
func (mem *Memory) Write(address uint16, data uint8) error {
	if int(address) >= Size {
		return faults.NewMemoryOutOfRange(address)
	}
	mem.Data[address] = data
	return nil
}

// LoadROM copies data into memory at ProgramOrigin. Memory is left untouched
// if the data is too large, in which case a RomTooLarge fault is returned.
// The name is used only for the fault.
func (mem *Memory) LoadROM(name string, data []byte) error {
	if len(data) > MaxROMSize {
		return faults.NewRomTooLarge(name, len(data), MaxROMSize)
	}
	copy(mem.Data[ProgramOrigin:], data)
	return nil
}
