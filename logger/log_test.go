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

package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/test"
)

// test central logger and the use of the Tail() function
func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Logf(logger.Allow, "cpu", "opcode %04x", 0x6005)
	log.Logf(logger.Allow, "cpu", "opcode %04x", 0x6005)
	log.Logf(logger.Allow, "cpu", "opcode %04x", 0x6005)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "cpu: opcode 6005 (repeat x3)\n")
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

func TestEchoRecent(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	// entries made before echoing began are written when echo is set
	log.Log(logger.Allow, "a", "1")
	log.SetEcho(w, true)
	test.ExpectEquality(t, w.String(), "a: 1\n")

	w.Reset()
	log.Log(logger.Allow, "b", "2")
	test.ExpectEquality(t, w.String(), "b: 2\n")

	// echo off
	w.Reset()
	log.SetEcho(nil, false)
	log.Log(logger.Allow, "c", "3")
	test.ExpectEquality(t, w.String(), "")
}

type prohibitLogging struct{}

func (prohibitLogging) AllowLogging() bool {
	return false
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(prohibitLogging{}, "test", "not allowed")
	test.ExpectFailure(t, log.Write(w))

	log.Log(logger.Allow, "test", "allowed")
	test.ExpectSuccess(t, log.Write(w))
	test.ExpectEquality(t, w.String(), "test: allowed\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	tw := &test.CompareWriter{}

	log.SetEcho(tw, false)
	log.Log(logger.Allow, "echo", "hello")
	test.ExpectSuccess(t, tw.Compare("echo: hello\n"))

	log.SetEcho(nil, false)
	log.Log(logger.Allow, "echo", "goodbye")
	test.ExpectSuccess(t, tw.Compare("echo: hello\n"))
}
