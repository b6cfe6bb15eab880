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

package hardware

import (
	"time"

	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/logger"
)

// Snapshot is a deep copy of the machine state. Snapshots are not connected
// to the machine they were taken from and should be treated as immutable.
type Snapshot struct {
	State    govern.State
	SubState govern.SubState

	Mem     *memory.Memory
	CPU     *cpu.CPU
	Display *display.Display
	Timers  timers.Timers
	Keypad  input.Keypad

	ROM *ROMInfo

	OpcodesPerFrame uint32
	Running         bool
	StepOnce        bool
	ExitRequested   bool
	Err             error

	Frame              uint64
	ActualFrameTime    time.Duration
	FrameTimeWithSleep time.Duration
	FPS                float64
	MeasuredFPS        float32

	WaitingForKey bool
}

// Snapshot the state of the machine.
func (m *Machine) Snapshot() *Snapshot {
	s := &Snapshot{
		State:              m.State(),
		Mem:                m.Mem.Snapshot(),
		CPU:                m.CPU.Snapshot(),
		Display:            m.Display.Snapshot(),
		Timers:             *m.Timers,
		Keypad:             *m.Keypad,
		OpcodesPerFrame:    m.OpcodesPerFrame,
		Running:            m.Running,
		StepOnce:           m.StepOnce,
		ExitRequested:      m.ExitRequested,
		Err:                m.Err,
		Frame:              m.Frame,
		ActualFrameTime:    m.ActualFrameTime,
		FrameTimeWithSleep: m.FrameTimeWithSleep,
		FPS:                m.FPS,
		MeasuredFPS:        m.MeasuredFPS,
		WaitingForKey:      m.WaitingForKey,
	}

	if m.ROM != nil {
		rom := *m.ROM
		s.ROM = &rom
	}

	if m.WaitingForKey {
		s.SubState = govern.WaitingForKey
	}

	if !govern.StateIntegrity(s.State, s.SubState) {
		logger.Logf(m.Env, "hardware", "sub-state %s is not possible while %s", s.SubState, s.State)
		s.SubState = govern.Normal
	}

	return s
}
