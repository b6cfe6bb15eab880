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

package main

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher8/emulation"
	"github.com/jetsetilly/gopher8/engine"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/limiter"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
)

// headless mode runs the ROM for a fixed number of frames, as quickly as
// possible, and prints the final state of the machine. useful for scripting
// and for checking the behaviour of a ROM.
func headless(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	opt := addCommonOptions(md)
	frames := md.AddInt("frames", 600, "number of frames to run")
	display := md.AddBool("display", true, "print the display at the end of the run")
	log := md.AddBool("log", false, "print the log at the end of the run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// the log for this run only
	logger.Clear()

	bpr, opts, err := prepare(md, opt)
	if err != nil {
		return err
	}

	// frames are stepped one at a time so that the run always ends on the
	// requested frame
	opts = append(opts,
		engine.WithRunning(false),
		engine.WithClock(limiter.Unlimited{}),
	)

	snap, err := runHeadless(*frames, opts...)
	if err != nil {
		return err
	}

	printSnapshot(output, snap, *display)

	if *log {
		logger.Write(output)
	}

	if err := bpr.End(); err != nil {
		return err
	}

	if *log {
		return snap.Err
	}
	return summariseLog(output, opt, snap.Err)
}

// runHeadless steps the engine until the number of frames have been run, the
// machine faults or the machine waits for a key. returns the final snapshot.
func runHeadless(frames int, opts ...engine.Option) (*hardware.Snapshot, error) {
	eng, err := engine.New(opts...)
	if err != nil {
		return nil, err
	}

	pub := eng.State()
	snap := pub.Latest()

	for snap.Frame < uint64(frames) && !halted(snap) {
		eng.Commands().Push(emulation.StepFrame{})

		target := snap.Frame + 1
		for snap.Frame < target && !halted(snap) {
			select {
			case <-pub.Updated():
			case <-eng.Done():
				return pub.Latest(), nil
			}
			snap = pub.Latest()
		}
	}

	eng.Commands().Push(emulation.Exit{})
	eng.Wait()

	return snap, nil
}

// the machine will not progress any further without intervention.
func halted(snap *hardware.Snapshot) bool {
	return snap.Err != nil || snap.WaitingForKey || snap.State == govern.Exiting
}

func printSnapshot(output io.Writer, snap *hardware.Snapshot, display bool) {
	if snap.ROM != nil {
		fmt.Fprintf(output, "rom: %s\n", snap.ROM)
	}
	fmt.Fprintf(output, "frames: %d\n", snap.Frame)
	if snap.WaitingForKey {
		fmt.Fprintln(output, "waiting for key")
	}
	fmt.Fprintf(output, "cpu: %s\n", snap.CPU)
	fmt.Fprintf(output, "timers: %s\n", snap.Timers)
	if snap.Err != nil {
		fmt.Fprintf(output, "error: %v\n", snap.Err)
	}
	if display {
		fmt.Fprint(output, snap.Display)
	}
}
