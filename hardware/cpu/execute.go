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
	"github.com/jetsetilly/gopher8/hardware/faults"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// ExecuteInstruction fetches, decodes and executes the instruction at the
// program counter. Any error returned will be a fault from the faults
// package.
func (mc *CPU) ExecuteInstruction() error {
	mc.Interrupted = false

	hi, err := mc.mem.Read(mc.PC)
	if err != nil {
		return err
	}
	lo, err := mc.mem.Read(mc.PC + 1)
	if err != nil {
		return err
	}

	opcode := uint16(hi)<<8 | uint16(lo)
	mc.LastOpcode = opcode
	mc.LastAddress = mc.PC

	// program counter is advanced before the instruction is executed
	mc.PC += 2

	x := (opcode & 0x0f00) >> 8
	y := (opcode & 0x00f0) >> 4
	n := opcode & 0x000f
	nn := uint8(opcode & 0x00ff)
	nnn := opcode & 0x0fff

	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00e0:
			mc.dsp.Clear()
		case 0x00ee:
			if len(mc.Stack) == 0 {
				return faults.NewInvalidReturn(mc.fetchAddress())
			}
			mc.PC = mc.Stack[len(mc.Stack)-1]
			mc.Stack = mc.Stack[:len(mc.Stack)-1]
		default:
			// 0NNN machine code routines are ignored
		}

	case 0x1:
		mc.PC = nnn

	case 0x2:
		mc.Stack = append(mc.Stack, mc.PC)
		mc.PC = nnn

	case 0x3:
		mc.skip(mc.V[x] == nn)

	case 0x4:
		mc.skip(mc.V[x] != nn)

	case 0x5:
		if n != 0x0 {
			return mc.invalidOpcode(opcode)
		}
		mc.skip(mc.V[x] == mc.V[y])

	case 0x6:
		mc.V[x] = nn

	case 0x7:
		mc.V[x] += nn

	case 0x8:
		return mc.executeALU(opcode, x, y, n)

	case 0x9:
		if n != 0x0 {
			return mc.invalidOpcode(opcode)
		}
		mc.skip(mc.V[x] != mc.V[y])

	case 0xa:
		mc.I = nnn

	case 0xb:
		mc.PC = nnn + uint16(mc.V[0])

	case 0xc:
		mc.V[x] = mc.rnd.Byte() & nn

	case 0xd:
		return mc.draw(x, y, n)

	case 0xe:
		switch nn {
		case 0x9e:
			mc.skip(mc.keys.IsDown(mc.V[x]))
		case 0xa1:
			mc.skip(!mc.keys.IsDown(mc.V[x]))
		default:
			return mc.invalidOpcode(opcode)
		}

	case 0xf:
		return mc.executeMisc(opcode, x, nn)
	}

	return nil
}

// the 8XYN family of register to register instructions.
func (mc *CPU) executeALU(opcode uint16, x uint16, y uint16, n uint16) error {
	vx := mc.V[x]
	vy := mc.V[y]

	// the flag is always written after the result. this matters when X is
	// the flag register
	var flag uint8

	switch n {
	case 0x0:
		mc.V[x] = vy
		return nil

	case 0x1:
		mc.V[x] = vx | vy
		if mc.quirks.VFReset.Load() {
			mc.V[VF] = 0
		}
		return nil

	case 0x2:
		mc.V[x] = vx & vy
		if mc.quirks.VFReset.Load() {
			mc.V[VF] = 0
		}
		return nil

	case 0x3:
		mc.V[x] = vx ^ vy
		if mc.quirks.VFReset.Load() {
			mc.V[VF] = 0
		}
		return nil

	case 0x4:
		r := uint16(vx) + uint16(vy)
		mc.V[x] = uint8(r)
		if r > 0xff {
			flag = 1
		}

	case 0x5:
		mc.V[x] = vx - vy
		if vx >= vy {
			flag = 1
		}

	case 0x6:
		mc.V[x] = vx >> 1
		flag = vx & 0x01

	case 0x7:
		mc.V[x] = vy - vx
		if vy >= vx {
			flag = 1
		}

	case 0xe:
		mc.V[x] = vx << 1
		flag = vx >> 7

	default:
		return mc.invalidOpcode(opcode)
	}

	mc.V[VF] = flag

	return nil
}

// the DXYN instruction. draws an N row sprite from memory at I, at the
// coordinates in VX and VY.
func (mc *CPU) draw(x uint16, y uint16, n uint16) error {
	w := mc.dsp.Width()
	h := mc.dsp.Height()

	// starting coordinates always wrap
	ox := int(mc.V[x]) % w
	oy := int(mc.V[y]) % h

	wrap := mc.quirks.WrapSprites.Load()

	mc.V[VF] = 0

	for row := 0; row < int(n); row++ {
		py := oy + row
		if py >= h {
			if !wrap {
				break
			}
			py %= h
		}

		b, err := mc.mem.Read(mc.indexed(row))
		if err != nil {
			return err
		}

		for col := 0; col < 8; col++ {
			if b&(0x80>>col) == 0 {
				continue
			}

			px := ox + col
			if px >= w {
				if !wrap {
					break
				}
				px %= w
			}

			if mc.dsp.XORPixel(px, py) {
				mc.V[VF] = 1
			}
		}
	}

	return nil
}

// the FXNN family of instructions.
func (mc *CPU) executeMisc(opcode uint16, x uint16, nn uint8) error {
	switch nn {
	case 0x07:
		mc.V[x] = mc.tmr.DelayTimer()

	case 0x0a:
		if mc.waiter == nil {
			mc.abandon()
			return nil
		}
		key, ok := mc.waiter.WaitForKey()
		if !ok {
			mc.abandon()
			return nil
		}
		mc.V[x] = key

	case 0x15:
		mc.tmr.SetDelayTimer(mc.V[x])

	case 0x18:
		mc.tmr.SetSoundTimer(mc.V[x])

	case 0x1e:
		mc.I += uint16(mc.V[x])

	case 0x29:
		mc.I = uint16(mc.V[x]) * memory.GlyphSize

	case 0x33:
		v := mc.V[x]
		for i, d := range []uint8{v / 100, (v / 10) % 10, v % 10} {
			if err := mc.mem.Write(mc.indexed(i), d); err != nil {
				return err
			}
		}

	case 0x55:
		for i := 0; i <= int(x); i++ {
			if err := mc.mem.Write(mc.indexed(i), mc.V[i]); err != nil {
				return err
			}
		}
		if mc.quirks.LoadStoreIncrementsI.Load() {
			mc.I += x + 1
		}

	case 0x65:
		for i := 0; i <= int(x); i++ {
			v, err := mc.mem.Read(mc.indexed(i))
			if err != nil {
				return err
			}
			mc.V[i] = v
		}
		if mc.quirks.LoadStoreIncrementsI.Load() {
			mc.I += x + 1
		}

	default:
		return mc.invalidOpcode(opcode)
	}

	return nil
}

// abandon the current instruction. the program counter is moved back so that
// the instruction will be executed again.
func (mc *CPU) abandon() {
	mc.PC = mc.fetchAddress()
	mc.Interrupted = true
}
