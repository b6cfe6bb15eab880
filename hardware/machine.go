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
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/faults"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/logger"
)

// sentinal error pattern for errors that are not machine faults.
const MachineError = "hardware: %v"

// ROMInfo is the metadata for the loaded ROM.
type ROMInfo struct {
	// the path used to load the ROM
	Path string

	// the base name of the path
	Name string

	Size int
}

func (r ROMInfo) String() string {
	return fmt.Sprintf("%s (%d bytes)", r.Name, r.Size)
}

// Machine is the root of the emulation.
type Machine struct {
	Env *environment.Environment

	Mem     *memory.Memory
	CPU     *cpu.CPU
	Display *display.Display
	Timers  *timers.Timers
	Keypad  *input.Keypad

	// nil until a ROM has been loaded successfully
	ROM *ROMInfo

	// the number of instructions executed every frame. always positive
	OpcodesPerFrame uint32

	// control flags
	Running       bool
	StepOnce      bool
	ExitRequested bool

	// the fault that halted the machine. once set no further instruction is
	// executed
	Err error

	// the number of frames processed
	Frame uint64

	// instrumentation. zero when not running
	ActualFrameTime    time.Duration
	FrameTimeWithSleep time.Duration
	FPS                float64

	// frame rate measured over about a second. zero when not running
	MeasuredFPS float32

	// true while the FX0A instruction is waiting for a key press
	WaitingForKey bool
}

// NewMachine creates a new instance of the emulated machine. The size of the
// display and the number of opcodes per frame are taken from the
// environment's preferences.
func NewMachine(env *environment.Environment) (*Machine, error) {
	if env == nil {
		return nil, curated.Errorf(MachineError, "environment is required")
	}

	w := env.Prefs.DisplayWidth.Get().(int)
	h := env.Prefs.DisplayHeight.Get().(int)

	m := &Machine{
		Env:             env,
		Mem:             memory.NewMemory(),
		Display:         display.NewDisplay(w, h),
		Timers:          &timers.Timers{},
		Keypad:          &input.Keypad{},
		OpcodesPerFrame: uint32(env.Prefs.OpcodesPerFrame.Get().(int)),
	}

	m.CPU = cpu.NewCPU(&env.Prefs.Quirks.Live, m.Mem, m.Display, m.Keypad, m.Timers, env.Random)

	return m, nil
}

// State returns the emulation state implied by the control flags.
func (m *Machine) State() govern.State {
	return govern.Derive(m.Running, m.StepOnce, m.ExitRequested, m.Err)
}

// LoadROM reads the file at path and copies it into memory. If the file
// cannot be read, or if it is too large, then the machine is halted with the
// appropriate fault and memory and ROM metadata are left untouched.
func (m *Machine) LoadROM(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return m.halt(faults.NewInvalidRom(path, err))
	}

	if err := m.Mem.LoadROM(path, data); err != nil {
		return m.halt(err)
	}

	m.ROM = &ROMInfo{
		Path: path,
		Name: filepath.Base(path),
		Size: len(data),
	}

	logger.Logf(m.Env, "hardware", "loaded %s", m.ROM)

	return nil
}

// SetOpcodesPerFrame changes the number of instructions executed every frame.
// Zero is not a valid value and is ignored.
func (m *Machine) SetOpcodesPerFrame(n uint32) bool {
	if n == 0 {
		logger.Log(m.Env, "hardware", "opcodes per frame must be positive")
		return false
	}
	m.OpcodesPerFrame = n
	return true
}

// halt the machine with the error. the error is returned for convenience.
func (m *Machine) halt(err error) error {
	m.Err = err
	m.Running = false
	m.StepOnce = false
	logger.Log(m.Env, "hardware", err)
	return err
}
