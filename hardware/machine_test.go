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

package hardware_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/faults"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()
	env, err := environment.NewEnvironment("test", nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	env.Quiet = true
	m, err := hardware.NewMachine(env)
	test.DemandSuccess(t, err)
	return m
}

func writeROM(t *testing.T, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "test.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func TestNewMachine(t *testing.T) {
	m := newMachine(t)
	test.ExpectEquality(t, m.CPU.PC, memory.ProgramOrigin)
	test.ExpectEquality(t, m.OpcodesPerFrame, 20)
	test.ExpectEquality(t, m.Display.Width(), 64)
	test.ExpectEquality(t, m.Display.Height(), 32)
	test.ExpectEquality(t, m.State(), govern.Idle)
	test.ExpectSuccess(t, m.ROM == nil)
}

func TestLoadROM(t *testing.T) {
	for _, size := range []int{0, 1, 2, 100, memory.MaxROMSize} {
		m := newMachine(t)

		data := make([]byte, size)
		for i := range data {
			data[i] = uint8(i * 7)
		}

		test.ExpectSuccess(t, m.LoadROM(writeROM(t, data)), size)
		test.ExpectSuccess(t, bytes.Equal(m.Mem.Data[memory.ProgramOrigin:memory.ProgramOrigin+size], data), size)
		test.ExpectSuccess(t, m.Err == nil, size)
		test.ExpectEquality(t, m.ROM.Size, size)
		test.ExpectEquality(t, m.ROM.Name, "test.ch8")
	}
}

func TestLoadROMTooLarge(t *testing.T) {
	for _, size := range []int{memory.MaxROMSize + 1, memory.Size, 10000} {
		m := newMachine(t)
		before := *m.Mem

		err := m.LoadROM(writeROM(t, bytes.Repeat([]byte{0xff}, size)))
		test.ExpectSuccess(t, faults.Is(err, faults.RomTooLarge))
		test.ExpectSuccess(t, faults.Is(m.Err, faults.RomTooLarge))

		f := m.Err.(*faults.Fault)
		test.ExpectEquality(t, f.Size, size)
		test.ExpectEquality(t, f.Allowed, 3584)

		test.ExpectSuccess(t, before.Data == m.Mem.Data)
		test.ExpectSuccess(t, m.ROM == nil)
		test.ExpectEquality(t, m.State(), govern.Errored)
	}
}

func TestLoadROMMissing(t *testing.T) {
	m := newMachine(t)
	err := m.LoadROM(filepath.Join(t.TempDir(), "missing.ch8"))
	test.ExpectSuccess(t, faults.Is(err, faults.InvalidRom))
	test.ExpectSuccess(t, m.ROM == nil)
	test.ExpectEquality(t, m.State(), govern.Errored)
}

func TestRunFrames(t *testing.T) {
	// a program of nothing but 6XNN instructions
	rom := make([]byte, 0, memory.MaxROMSize)
	for len(rom) < memory.MaxROMSize {
		rom = append(rom, 0x60, 0x01)
	}

	const k = 7
	const n = 10

	m := newMachine(t)
	test.DemandSuccess(t, m.LoadROM(writeROM(t, rom)))
	test.ExpectSuccess(t, m.SetOpcodesPerFrame(k))
	m.Running = true

	for i := 0; i < n; i++ {
		test.DemandSuccess(t, m.RunFrame())
	}

	test.ExpectEquality(t, m.Frame, n)
	test.ExpectEquality(t, m.CPU.PC, uint16(512+2*k*n))
}

func TestRunFrameTimers(t *testing.T) {
	m := newMachine(t)
	test.DemandSuccess(t, m.LoadROM(writeROM(t, []byte{0x12, 0x00})))
	m.Running = true
	m.Timers.Delay = 2
	m.Timers.Sound = 1

	test.DemandSuccess(t, m.RunFrame())
	test.ExpectEquality(t, m.Timers.Delay, 1)
	test.ExpectEquality(t, m.Timers.Sound, 0)

	test.DemandSuccess(t, m.RunFrame())
	test.DemandSuccess(t, m.RunFrame())
	test.ExpectEquality(t, m.Timers.Delay, 0)
}

func TestRunFrameHalts(t *testing.T) {
	m := newMachine(t)

	// V0=1, invalid opcode, V0=2
	test.DemandSuccess(t, m.LoadROM(writeROM(t, []byte{0x60, 0x01, 0x51, 0x21, 0x60, 0x02})))
	m.Running = true
	m.Timers.Delay = 5

	err := m.RunFrame()
	test.ExpectSuccess(t, faults.Is(err, faults.InvalidOpcode))
	test.ExpectEquality(t, m.CPU.V[0], 1)
	test.ExpectEquality(t, m.State(), govern.Errored)

	// the frame was not completed
	test.ExpectEquality(t, m.Frame, 0)
	test.ExpectEquality(t, m.Timers.Delay, 5)

	// no more instructions are executed
	pc := m.CPU.PC
	m.RunFrame()
	test.ExpectEquality(t, m.CPU.PC, pc)
}

// pausingWaiter turns running off while the FX0A instruction is waiting.
type pausingWaiter struct {
	m *hardware.Machine
}

func (w pausingWaiter) WaitForKey() (uint8, bool) {
	w.m.Running = false
	return 0, false
}

func TestRunFramePaused(t *testing.T) {
	m := newMachine(t)
	m.CPU.Plumb(pausingWaiter{m: m})

	// V5=key, V0++, loop to V0++
	test.DemandSuccess(t, m.LoadROM(writeROM(t, []byte{0xf5, 0x0a, 0x70, 0x01, 0x12, 0x02})))
	m.Running = true
	m.Timers.Delay = 5

	test.DemandSuccess(t, m.RunFrame())
	test.ExpectEquality(t, m.State(), govern.Idle)
	test.ExpectEquality(t, m.CPU.PC, 0x200)
	test.ExpectEquality(t, m.CPU.V[0], 0)
	test.ExpectEquality(t, m.Frame, 0)
	test.ExpectEquality(t, m.Timers.Delay, 5)
}

func TestSetOpcodesPerFrame(t *testing.T) {
	m := newMachine(t)
	test.ExpectFailure(t, m.SetOpcodesPerFrame(0))
	test.ExpectEquality(t, m.OpcodesPerFrame, 20)
	test.ExpectSuccess(t, m.SetOpcodesPerFrame(1000))
	test.ExpectEquality(t, m.OpcodesPerFrame, 1000)
}

func TestSnapshot(t *testing.T) {
	m := newMachine(t)
	test.DemandSuccess(t, m.LoadROM(writeROM(t, []byte{0x22, 0x04, 0x00, 0x00, 0xd0, 0x05})))
	m.Running = true
	test.DemandSuccess(t, m.Step())
	test.DemandSuccess(t, m.Step())

	s := m.Snapshot()
	test.ExpectEquality(t, s.State, govern.Running)
	test.ExpectEquality(t, s.CPU.PC, 0x206)
	test.ExpectEquality(t, len(s.CPU.Stack), 1)
	test.ExpectEquality(t, s.ROM.Name, "test.ch8")

	// changes to the machine do not affect the snapshot
	m.Mem.Data[0x300] = 0xff
	m.CPU.Stack[0] = 0
	m.Display.XORPixel(0, 0)
	m.ROM.Name = "changed"
	test.ExpectEquality(t, s.Mem.Data[0x300], 0)
	test.ExpectEquality(t, s.CPU.Stack[0], 0x202)
	test.ExpectFailure(t, s.Display.Pixel(0, 0))
	test.ExpectSuccess(t, s.Display.Pixel(1, 0))
	test.ExpectEquality(t, s.ROM.Name, "test.ch8")
}

func TestSnapshotSubState(t *testing.T) {
	m := newMachine(t)
	m.Running = true
	m.WaitingForKey = true
	test.ExpectEquality(t, m.Snapshot().SubState, govern.WaitingForKey)

	// waiting for a key is not possible unless the machine is executing
	m.Running = false
	s := m.Snapshot()
	test.ExpectEquality(t, s.State, govern.Idle)
	test.ExpectEquality(t, s.SubState, govern.Normal)
}
