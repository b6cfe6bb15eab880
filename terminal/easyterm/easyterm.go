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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It provides
// some features not present in the third-party package, such as terminal
// geometry, and wraps termios methods in functions with friendlier names.
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/jetsetilly/gopher8/curated"
)

// sentinal error patterns.
const (
	EasyTermError = "easyterm: %v"
	NotATerminal  = "easyterm: not a terminal (%s)"
)

// TermGeometry contains the dimensions of a terminal in characters.
type TermGeometry struct {
	Rows int
	Cols int
}

// Terminal is the main container for posix terminals. usually embedded in
// other struct types.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr unix.Termios
	rawAttr unix.Termios

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// geometry is updated from the signal handler
	mu       sync.Mutex
	geometry TermGeometry
}

// Initialise the fields in the Terminal struct.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return curated.Errorf(EasyTermError, "requires an input file")
	}
	if outputFile == nil {
		return curated.Errorf(EasyTermError, "requires an output file")
	}

	if !term.IsTerminal(int(inputFile.Fd())) {
		return curated.Errorf(NotATerminal, inputFile.Name())
	}
	if !term.IsTerminal(int(outputFile.Fd())) {
		return curated.Errorf(NotATerminal, outputFile.Name())
	}

	pt.input = inputFile
	pt.output = outputFile

	// prepare the attributes for the different terminal modes we'll be using.
	// the raw attributes start from a copy of the canonical attributes
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return curated.Errorf(EasyTermError, err)
	}
	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)

	if err := pt.updateGeometry(); err != nil {
		return err
	}

	pt.terminateHandlerSig = make(chan bool)
	pt.terminateHandlerAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			pt.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = pt.updateGeometry()
			case <-pt.terminateHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp closes resources created in the Initialise() function and returns
// the terminal to canonical mode.
func (pt *Terminal) CleanUp() {
	pt.terminateHandlerSig <- true
	<-pt.terminateHandlerAck
	_ = pt.canonicalMode()
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...any) {
	pt.output.WriteString(fmt.Sprintf(s, a...))
}

// Geometry returns the most recent dimensions of the output terminal.
func (pt *Terminal) Geometry() TermGeometry {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.geometry
}

// get the current dimensions of the output terminal.
func (pt *Terminal) updateGeometry() error {
	cols, rows, err := term.GetSize(int(pt.output.Fd()))
	if err != nil {
		return curated.Errorf(EasyTermError, err)
	}

	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.geometry.Cols = cols
	pt.geometry.Rows = rows

	return nil
}

// put terminal into normal, everyday canonical mode.
func (pt *Terminal) canonicalMode() error {
	return pt.setAttr(&pt.canAttr)
}

// RawMode puts terminal into raw mode.
func (pt *Terminal) RawMode() error {
	return pt.setAttr(&pt.rawAttr)
}

func (pt *Terminal) setAttr(attr *unix.Termios) error {
	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, attr); err != nil {
		return curated.Errorf(EasyTermError, err)
	}
	return nil
}

// Flush makes sure the terminal's input/output buffers are empty.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return curated.Errorf(EasyTermError, err)
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return curated.Errorf(EasyTermError, err)
	}
	return nil
}
