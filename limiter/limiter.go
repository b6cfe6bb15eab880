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

// Package limiter paces the emulation so that frames are processed at a
// fixed rate. Time lost or gained to the imprecision of the operating
// system's sleep is carried forward and corrected in the next frame. Over a
// long run the mean frame interval converges to the target interval.
package limiter

import (
	"sync/atomic"
	"time"
)

// the number of frames processed per second by default.
const DefaultFPS = 60

// Clock abstracts the passing of time. The default clock uses the time
// package but tests can provide a clock that introduces deterministic
// jitter.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Unlimited is a clock that never sleeps. A limiter using this clock
// processes frames as quickly as possible.
type Unlimited struct{}

// Now implements the Clock interface.
func (Unlimited) Now() time.Time {
	return time.Now()
}

// Sleep implements the Clock interface.
func (Unlimited) Sleep(_ time.Duration) {
}

// Timing is the measurement of a single frame.
type Timing struct {
	// time taken to process the frame, not including the sleep
	ActualFrameTime time.Duration

	// time taken to process the frame including the sleep
	FrameTimeWithSleep time.Duration

	// instantaneous frame rate implied by FrameTimeWithSleep
	FPS float64
}

// Limiter paces frames to the target interval.
type Limiter struct {
	clock  Clock
	target time.Duration

	// the difference between the sleep that was needed and the sleep that
	// was taken in the previous frame
	carried time.Duration

	// start time of the current frame
	frameStart time.Time

	// the measured FPS is the number of frames divided by the amount of
	// elapsed time since the previous measurement
	measureTime time.Time
	measureCt   int

	// the measured number of frames per second. updated about once a second
	Measured atomic.Value // float32
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// A nil clock means the real clock will be used.
func NewLimiter(fps float64, clock Clock) *Limiter {
	if clock == nil {
		clock = realClock{}
	}
	if fps <= 0 {
		fps = DefaultFPS
	}

	lmtr := &Limiter{
		clock:  clock,
		target: time.Duration(float64(time.Second) / fps),
	}
	lmtr.Measured.Store(float32(0.0))
	lmtr.frameStart = clock.Now()
	lmtr.measureTime = lmtr.frameStart

	return lmtr
}

// Target returns the target frame interval.
func (lmtr *Limiter) Target() time.Duration {
	return lmtr.target
}

// Carried returns the correction that will be applied to the next sleep.
func (lmtr *Limiter) Carried() time.Duration {
	return lmtr.carried
}

// CheckFrame should be called at the end of every frame. It sleeps for the
// remainder of the frame interval and returns the timing of the frame. The
// next frame begins when CheckFrame returns.
func (lmtr *Limiter) CheckFrame() Timing {
	now := lmtr.clock.Now()
	elapsed := now.Sub(lmtr.frameStart)

	needed := lmtr.target - elapsed + lmtr.carried
	if needed <= 0 {
		lmtr.carried = 0
	} else {
		lmtr.clock.Sleep(needed)
		after := lmtr.clock.Now()
		lmtr.carried = needed - after.Sub(now)
		now = after
	}

	t := Timing{
		ActualFrameTime:    elapsed,
		FrameTimeWithSleep: now.Sub(lmtr.frameStart),
	}
	if t.FrameTimeWithSleep > 0 {
		t.FPS = float64(time.Second) / float64(t.FrameTimeWithSleep)
	}

	lmtr.frameStart = now
	lmtr.measure(now)

	return t
}

func (lmtr *Limiter) measure(now time.Time) {
	lmtr.measureCt++
	d := now.Sub(lmtr.measureTime)
	if d >= time.Second {
		lmtr.Measured.Store(float32(float64(lmtr.measureCt) / d.Seconds()))
		lmtr.measureTime = now
		lmtr.measureCt = 0
	}
}

// Clock returns the clock used by the limiter.
func (lmtr *Limiter) Clock() Clock {
	return lmtr.clock
}
