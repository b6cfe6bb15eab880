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
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/limiter"
)

// AudioSink receives the state of the sound timer once per processed frame.
// It is called from the engine's goroutine.
type AudioSink interface {
	Frame(beeping bool) error
}

type config struct {
	env             *environment.Environment
	rom             string
	running         bool
	opcodesPerFrame uint32
	clock           limiter.Clock
	audio           AudioSink
}

// Option configures a new engine.
type Option func(*config)

// WithEnvironment sets the environment for the machine. If not set a new
// environment is created for the main emulation.
func WithEnvironment(env *environment.Environment) Option {
	return func(c *config) {
		c.env = env
	}
}

// WithROM loads the ROM at path as the first thing the engine does.
func WithROM(path string) Option {
	return func(c *config) {
		c.rom = path
	}
}

// WithRunning sets the engine running as soon as it starts.
func WithRunning(running bool) Option {
	return func(c *config) {
		c.running = running
	}
}

// WithOpcodesPerFrame overrides the opcodes per frame preference. A value of
// zero is ignored.
func WithOpcodesPerFrame(n uint32) Option {
	return func(c *config) {
		c.opcodesPerFrame = n
	}
}

// WithClock sets the clock used to pace the engine.
func WithClock(clock limiter.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithAudio sets the audio sink for the engine.
func WithAudio(audio AudioSink) Option {
	return func(c *config) {
		c.audio = audio
	}
}
