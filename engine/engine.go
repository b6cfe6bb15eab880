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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/emulation"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/limiter"
	"github.com/jetsetilly/gopher8/logger"
)

// sentinal error pattern.
const EngineError = "engine: %v"

// Engine owns the machine and the goroutine that runs it.
type Engine struct {
	env *environment.Environment

	// the machine must only be accessed by the engine's goroutine, or after
	// the goroutine has ended
	machine *hardware.Machine

	queue *emulation.Queue
	pub   *emulation.Publisher
	lmtr  *limiter.Limiter
	audio AudioSink

	done chan struct{}
}

// New creates a new engine and starts its goroutine.
func New(opts ...Option) (*Engine, error) {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.env == nil {
		var err error
		cfg.env, err = environment.NewEnvironment(environment.MainEmulation, nil)
		if err != nil {
			return nil, curated.Errorf(EngineError, err)
		}
	}

	m, err := hardware.NewMachine(cfg.env)
	if err != nil {
		return nil, curated.Errorf(EngineError, err)
	}

	if cfg.opcodesPerFrame > 0 {
		m.SetOpcodesPerFrame(cfg.opcodesPerFrame)
	}

	eng := &Engine{
		env:     cfg.env,
		machine: m,
		queue:   emulation.NewQueue(),
		pub:     emulation.NewPublisher(m.Snapshot()),
		lmtr:    limiter.NewLimiter(limiter.DefaultFPS, cfg.clock),
		audio:   cfg.audio,
		done:    make(chan struct{}),
	}

	m.CPU.Plumb(eng)

	// initial commands are pushed onto the queue so that they are processed
	// in the same way as commands from a frontend
	if cfg.rom != "" {
		eng.queue.Push(emulation.LoadROM{Path: cfg.rom})
	}
	if cfg.running {
		eng.queue.Push(emulation.SetRunning{Running: true})
	}

	go eng.run()

	return eng, nil
}

// Commands returns the queue used to send commands to the engine.
func (eng *Engine) Commands() *emulation.Queue {
	return eng.queue
}

// State returns the reader for the machine snapshots.
func (eng *Engine) State() emulation.Reader {
	return eng.pub
}

// Done returns a channel that is closed when the engine's goroutine ends.
func (eng *Engine) Done() <-chan struct{} {
	return eng.done
}

// Wait blocks until the engine's goroutine has ended.
func (eng *Engine) Wait() {
	<-eng.done
}

// Replace ends the old engine, waits for it and creates a new engine. The
// opcodes per frame and the environment of the old engine are carried over
// to the new engine.
//
// If keepROM is true and the old engine had loaded a ROM then the new engine
// loads the same ROM and is set running.
//
// The old engine can be nil, in which case Replace() is the same as New().
func Replace(old *Engine, keepROM bool, opts ...Option) (*Engine, error) {
	var carry []Option

	if old != nil {
		old.queue.Push(emulation.Exit{})
		old.Wait()

		// the old engine's goroutine has ended so it is safe to access the
		// machine
		carry = append(carry,
			WithEnvironment(old.env),
			WithOpcodesPerFrame(old.machine.OpcodesPerFrame),
			WithAudio(old.audio),
			WithClock(old.lmtr.Clock()),
		)

		if keepROM && old.machine.ROM != nil {
			carry = append(carry, WithROM(old.machine.ROM.Path), WithRunning(true))
		}

		logger.Log(old.env, "engine", "replacing engine")
	}

	return New(append(carry, opts...)...)
}
