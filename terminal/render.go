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

package terminal

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/terminal/easyterm"
)

// characters used to draw two rows of pixels in a single cell.
const (
	blockNone   = ' '
	blockUpper  = '▀'
	blockLower  = '▄'
	blockFull   = '█'
	newline     = "\r\n"
	statusSplit = " | "
)

// RenderDisplay draws the display with half-block characters. Lines are
// terminated with a carriage return and new line because the terminal is in
// raw mode.
func RenderDisplay(dsp *display.Display) string {
	s := strings.Builder{}
	s.Grow((dsp.Width() + len(newline)) * (dsp.Height() + 1) / 2 * 3)

	for y := 0; y < dsp.Height(); y += 2 {
		for x := 0; x < dsp.Width(); x++ {
			upper := dsp.Pixel(x, y)
			lower := y+1 < dsp.Height() && dsp.Pixel(x, y+1)
			switch {
			case upper && lower:
				s.WriteRune(blockFull)
			case upper:
				s.WriteRune(blockUpper)
			case lower:
				s.WriteRune(blockLower)
			default:
				s.WriteRune(blockNone)
			}
		}
		s.WriteString(newline)
	}

	return s.String()
}

// RenderStatus returns the status line for the snapshot.
func RenderStatus(snap *hardware.Snapshot) string {
	s := strings.Builder{}

	if snap.ROM != nil {
		s.WriteString(snap.ROM.Name)
	} else {
		s.WriteString("no rom")
	}

	s.WriteString(statusSplit)
	s.WriteString(fmt.Sprintf("frame %d", snap.Frame))
	s.WriteString(statusSplit)
	s.WriteString(fmt.Sprintf("opf %d", snap.OpcodesPerFrame))

	if snap.FPS > 0 {
		s.WriteString(statusSplit)
		s.WriteString(fmt.Sprintf("%.1f fps", snap.FPS))
		if snap.MeasuredFPS > 0 {
			s.WriteString(fmt.Sprintf(" (%.1f measured)", snap.MeasuredFPS))
		}
	}

	s.WriteString(statusSplit)
	s.WriteString(snap.State.String())
	if snap.WaitingForKey {
		s.WriteString(" (waiting for key)")
	}

	if snap.Err != nil {
		s.WriteString(statusSplit)
		s.WriteString(snap.Err.Error())
	}

	return s.String()
}

// render the complete frame. the frame is drawn from the top left corner of
// the terminal so there is no need to clear the screen between frames.
func render(snap *hardware.Snapshot, geom easyterm.TermGeometry) string {
	s := strings.Builder{}
	s.WriteString(easyterm.CursorHome)

	rows := (snap.Display.Height() + 1) / 2
	if geom.Cols < snap.Display.Width() || geom.Rows < rows+1 {
		s.WriteString(easyterm.ClearScreen)
		s.WriteString(easyterm.CursorHome)
		s.WriteString(fmt.Sprintf("terminal too small: %dx%d needed", snap.Display.Width(), rows+1))
		s.WriteString(easyterm.ClearLine)
		return s.String()
	}

	s.WriteString(RenderDisplay(snap.Display))

	pen := easyterm.InversePen
	if snap.Err != nil {
		pen = easyterm.RedPen
	}
	status := RenderStatus(snap)
	if len(status) > geom.Cols {
		status = status[:geom.Cols]
	}
	s.WriteString(pen)
	s.WriteString(status)
	s.WriteString(easyterm.NormalPen)
	s.WriteString(easyterm.ClearLine)

	return s.String()
}
