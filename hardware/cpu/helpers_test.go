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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/hardware/timers"
)

// fixedRandom always returns the same byte.
type fixedRandom uint8

func (r fixedRandom) Byte() uint8 {
	return uint8(r)
}

// scriptedWaiter returns keys from a list. when the list is exhausted the
// wait is abandoned.
type scriptedWaiter struct {
	keys  []uint8
	calls int
}

func (w *scriptedWaiter) WaitForKey() (uint8, bool) {
	w.calls++
	if len(w.keys) == 0 {
		return 0, false
	}
	k := w.keys[0]
	w.keys = w.keys[1:]
	return k, true
}

type machine struct {
	mc     *cpu.CPU
	mem    *memory.Memory
	dsp    *display.Display
	keys   *input.Keypad
	tmr    *timers.Timers
	quirks *preferences.LiveQuirks
}

func newMachine() *machine {
	m := &machine{
		mem:    memory.NewMemory(),
		dsp:    display.NewDisplay(64, 32),
		keys:   &input.Keypad{},
		tmr:    &timers.Timers{},
		quirks: &preferences.LiveQuirks{},
	}
	m.quirks.VFReset.Store(true)
	m.quirks.WrapSprites.Store(true)
	m.mc = cpu.NewCPU(m.quirks, m.mem, m.dsp, m.keys, m.tmr, fixedRandom(0xa5))
	return m
}

// load instructions at the program origin.
func (m *machine) load(t *testing.T, bytes ...uint8) {
	t.Helper()
	if err := m.mem.LoadROM("test", bytes); err != nil {
		t.Fatal(err)
	}
}

// execute a single instruction, failing the test if there is an error.
func (m *machine) step(t *testing.T) {
	t.Helper()
	if err := m.mc.ExecuteInstruction(); err != nil {
		t.Fatal(err)
	}
}
