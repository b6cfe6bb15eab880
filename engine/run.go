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

package engine

import (
	"github.com/jetsetilly/gopher8/emulation"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/logger"
)

// the engine's goroutine.
func (eng *Engine) run() {
	defer close(eng.done)

	m := eng.machine

	for {
		if eng.drain() {
			eng.publish()
		}

		state := m.State()

		if state == govern.Exiting {
			eng.publish()
			return
		}

		if state.Executing() {
			frame := m.Frame

			// faults are logged and recorded by the machine
			_ = m.RunFrame()

			if m.ExitRequested {
				eng.publish()
				return
			}

			// audio only for complete frames
			if m.Frame != frame {
				eng.sound()
			}
			eng.publish()
		}

		t := eng.lmtr.CheckFrame()

		if m.Running && m.Err == nil {
			m.ActualFrameTime = t.ActualFrameTime
			m.FrameTimeWithSleep = t.FrameTimeWithSleep
			m.FPS = t.FPS
			m.MeasuredFPS = eng.lmtr.Measured.Load().(float32)
		} else {
			eng.zeroInstrumentation()
		}
	}
}

func (eng *Engine) zeroInstrumentation() {
	eng.machine.ActualFrameTime = 0
	eng.machine.FrameTimeWithSleep = 0
	eng.machine.FPS = 0
	eng.machine.MeasuredFPS = 0
}

// publish a snapshot of the machine.
func (eng *Engine) publish() {
	eng.pub.Publish(eng.machine.Snapshot())
}

// forward the state of the sound timer to the audio sink.
func (eng *Engine) sound() {
	if eng.audio == nil {
		return
	}
	if err := eng.audio.Frame(eng.machine.Timers.Beeping()); err != nil {
		logger.Log(eng.env, "engine", err)
	}
}

// drain all pending commands and apply them in order. returns true if any
// command was applied.
func (eng *Engine) drain() bool {
	cmds := eng.queue.Drain()
	for _, cmd := range cmds {
		eng.apply(cmd)
	}
	return len(cmds) > 0
}

func (eng *Engine) apply(cmd emulation.Command) {
	m := eng.machine

	switch cmd := cmd.(type) {
	case emulation.SetRunning:
		m.Running = cmd.Running
		if !m.Running {
			eng.zeroInstrumentation()
		}
		logger.Log(eng.env, "engine", cmd)
	case emulation.StepFrame:
		if !m.Running {
			m.StepOnce = true
		}
	case emulation.LoadROM:
		// faults are logged and recorded by the machine
		_ = m.LoadROM(cmd.Path)
	case emulation.SetOpcodesPerFrame:
		if m.SetOpcodesPerFrame(cmd.N) {
			logger.Log(eng.env, "engine", cmd)
		}
	case emulation.SetKeysDown:
		m.Keypad.Set(cmd.Keys)
	case emulation.Exit:
		m.ExitRequested = true
		logger.Log(eng.env, "engine", cmd)
	}
}
