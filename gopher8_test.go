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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/engine"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/faults"
	"github.com/jetsetilly/gopher8/limiter"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

func writeROM(t *testing.T, data ...byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "test.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0644))
	return fn
}

func newEnvironment(t *testing.T) *environment.Environment {
	t.Helper()
	env, err := environment.NewEnvironment("test", nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	env.Quiet = true
	return env
}

// V0 = 5; I = glyph for V0; draw at V0,V0; loop
var glyphROM = []byte{0x60, 0x05, 0xf0, 0x29, 0xd0, 0x05, 0x12, 0x06}

func TestRunHeadless(t *testing.T) {
	snap, err := runHeadless(3,
		engine.WithEnvironment(newEnvironment(t)),
		engine.WithROM(writeROM(t, glyphROM...)),
		engine.WithClock(limiter.Unlimited{}),
	)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, snap.Frame, 3)
	test.ExpectSuccess(t, snap.Err)
	test.ExpectEquality(t, snap.CPU.PC, 0x206)

	// top row of the glyph for five is four pixels wide
	for x := 5; x < 9; x++ {
		test.ExpectEquality(t, snap.Display.Pixel(x, 5), true)
	}
}

func TestRunHeadlessFault(t *testing.T) {
	snap, err := runHeadless(10,
		engine.WithEnvironment(newEnvironment(t)),
		engine.WithROM(writeROM(t, 0x00, 0xee)),
		engine.WithClock(limiter.Unlimited{}),
	)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, faults.Is(snap.Err, faults.InvalidReturn), true)
	test.ExpectEquality(t, snap.Frame < 10, true)
}

func TestRunHeadlessWaitForKey(t *testing.T) {
	snap, err := runHeadless(10,
		engine.WithEnvironment(newEnvironment(t)),
		engine.WithROM(writeROM(t, 0xf0, 0x0a)),
		engine.WithClock(limiter.Unlimited{}),
	)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, snap.WaitingForKey, true)
	test.ExpectSuccess(t, snap.Err)
}

func TestHeadlessMode(t *testing.T) {
	rom := writeROM(t, glyphROM...)

	tw := &test.CompareWriter{}
	md := &modalflag.Modes{Output: tw}
	md.NewArgs([]string{"headless", "-frames", "2", "-display=false", rom})
	md.AddSubModes("PLAY", "TERM", "HEADLESS")
	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.DemandEquality(t, md.Mode(), "HEADLESS")

	test.ExpectSuccess(t, headless(md, tw))
	test.ExpectEquality(t, strings.Contains(tw.String(), "rom: test.ch8 (8 bytes)\n"), true)
	test.ExpectEquality(t, strings.Contains(tw.String(), "frames: 2\n"), true)
	test.ExpectEquality(t, strings.Contains(tw.String(), "#"), false)
}

func TestHeadlessModeNoROM(t *testing.T) {
	md := &modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"headless"})
	md.AddSubModes("PLAY", "TERM", "HEADLESS")
	_, err := md.Parse()
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, headless(md, &test.CompareWriter{}))
}

func TestHeadlessModeFault(t *testing.T) {
	rom := writeROM(t, 0x00, 0xee)

	tw := &test.CompareWriter{}
	md := &modalflag.Modes{Output: tw}
	md.NewArgs([]string{"headless", "-display=false", rom})
	md.AddSubModes("PLAY", "TERM", "HEADLESS")
	_, err := md.Parse()
	test.DemandSuccess(t, err)

	err = headless(md, tw)
	test.ExpectEquality(t, faults.Is(err, faults.InvalidReturn), true)

	// the end of the log is shown after the error
	test.ExpectEquality(t, strings.Contains(tw.String(), "* recent log entries:\n"), true)
	test.ExpectEquality(t, strings.Contains(tw.String(), "hardware: invalid return at 0x0200\n"), true)
}

func TestHeadlessModeLog(t *testing.T) {
	rom := writeROM(t, glyphROM...)

	tw := &test.CompareWriter{}
	md := &modalflag.Modes{Output: tw}
	md.NewArgs([]string{"headless", "-frames", "1", "-display=false", "-log", rom})
	md.AddSubModes("PLAY", "TERM", "HEADLESS")
	_, err := md.Parse()
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, headless(md, tw))
	test.ExpectEquality(t, strings.Contains(tw.String(), "gopher8: HEADLESS: -log\n"), true)
	test.ExpectEquality(t, strings.Contains(tw.String(), "* recent log entries"), false)
}

func TestPlayModeHelp(t *testing.T) {
	tw := &test.CompareWriter{}
	md := &modalflag.Modes{Output: tw}
	md.NewArgs([]string{"play", "-help"})
	md.AddSubModes("PLAY", "TERM", "HEADLESS")
	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, md.Mode(), "PLAY")

	// help is printed before any window is created
	test.ExpectSuccess(t, play(md, nil))
	test.ExpectEquality(t, strings.Contains(tw.String(), userinput.Help), true)
}
