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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/faults"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
)

// CPU implements the instruction decoder and dispatcher.
type CPU struct {
	V     Registers
	I     uint16
	PC    uint16
	Stack []uint16

	// Interrupted is true if the last instruction was abandoned before it
	// completed. Resets to false on every call to ExecuteInstruction()
	Interrupted bool

	// the opcode of the most recent instruction and the address it was
	// fetched from
	LastOpcode  uint16
	LastAddress uint16

	quirks *preferences.LiveQuirks

	mem    Memory
	dsp    Display
	keys   Keypad
	tmr    Timers
	waiter KeyWaiter
	rnd    RandomSource
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// program counter is set to memory.ProgramOrigin.
//
// The KeyWaiter can be nil, in which case the FX0A instruction will always be
// abandoned. Use Plumb() to set the key waiter after creation.
func NewCPU(quirks *preferences.LiveQuirks, mem Memory, dsp Display, keys Keypad, tmr Timers, rnd RandomSource) *CPU {
	return &CPU{
		PC:     memory.ProgramOrigin,
		Stack:  make([]uint16, 0, 16),
		quirks: quirks,
		mem:    mem,
		dsp:    dsp,
		keys:   keys,
		tmr:    tmr,
		rnd:    rnd,
	}
}

// Plumb a new KeyWaiter into the CPU.
func (mc *CPU) Plumb(waiter KeyWaiter) {
	mc.waiter = waiter
}

// Snapshot creates a copy of the register file. The copy is not connected to
// the rest of the machine and should not be used to execute instructions.
func (mc *CPU) Snapshot() *CPU {
	n := &CPU{
		V:           mc.V,
		I:           mc.I,
		PC:          mc.PC,
		Interrupted: mc.Interrupted,
		LastOpcode:  mc.LastOpcode,
		LastAddress: mc.LastAddress,
	}
	n.Stack = make([]uint16, len(mc.Stack))
	copy(n.Stack, mc.Stack)
	return n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%04x I=%04x SP=%d %s", mc.PC, mc.I, len(mc.Stack), mc.V)
}

// the fetch address of the current instruction.
func (mc *CPU) fetchAddress() uint16 {
	return mc.PC - 2
}

func (mc *CPU) invalidOpcode(opcode uint16) error {
	return faults.NewInvalidOpcode(opcode, mc.fetchAddress())
}

// address I plus offset. the I register is not masked so the address can be
// beyond the end of memory, in which case the memory access will fault.
func (mc *CPU) indexed(offset int) uint16 {
	a := int(mc.I) + offset
	if a > 0xffff {
		a = 0xffff
	}
	return uint16(a)
}

// skip the next instruction.
func (mc *CPU) skip(condition bool) {
	if condition {
		mc.PC += 2
	}
}
