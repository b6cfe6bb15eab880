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

// Package sdlplay is a frontend that shows the emulation in an SDL window.
//
// SDL requires that window creation and event handling happen on the main
// thread. NewSdlPlay() and Service() must therefore only be called from the
// main thread. The engine is attached from any other goroutine with Attach()
// and is handed back through the Ended() channel when the user quits.
package sdlplay

import (
	"fmt"
	"io"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/engine"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/version"
)

// sentinal error pattern.
const SDLPlayError = "sdlplay: %v"

const windowTitle = version.ApplicationName

// the default number of window pixels per display pixel.
const DefaultScale = 10

// colours of pixels that are on and off.
var (
	penOn  = sdl.Color{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	penOff = sdl.Color{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	penErr = sdl.Color{R: 0x40, G: 0x08, B: 0x08, A: 0xff}
)

// SdlPlay is a simple SDL window showing the display of the machine.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	scale int32

	// size of the display in the most recently rendered snapshot
	width  int32
	height int32

	// the rectangles for the pixels that are on. reused every frame
	rects []sdl.Rect

	title string

	// engine is attached through the attach channel. the eng field must only
	// be accessed from the main thread
	attach chan *engine.Engine
	eng    *engine.Engine
	ctrl   *userinput.Controllers

	// the engine is sent on the ended channel when the user quits
	ended chan *engine.Engine
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
// Must be called from the main thread.
func NewSdlPlay(scale int) (*SdlPlay, error) {
	if scale <= 0 {
		scale = DefaultScale
	}

	scr := &SdlPlay{
		scale:  int32(scale),
		attach: make(chan *engine.Engine, 1),
		ended:  make(chan *engine.Engine, 1),
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf(SDLPlayError, err)
	}

	setupService()

	// window size is set when the first snapshot is rendered
	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		64*scr.scale, 32*scr.scale,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLPlayError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf(SDLPlayError, err)
	}

	return scr, nil
}

// Attach the engine to the window. Safe to call from any goroutine.
func (scr *SdlPlay) Attach(eng *engine.Engine) {
	scr.attach <- eng
}

// Ended returns the channel on which the engine is sent when the user quits.
// The engine may not be the engine that was attached if the user has reset
// the machine.
func (scr *SdlPlay) Ended() <-chan *engine.Engine {
	return scr.ended
}

// Destroy implements the GuiCreator interface.
func (scr *SdlPlay) Destroy(output io.Writer) {
	if err := scr.renderer.Destroy(); err != nil {
		fmt.Fprintln(output, curated.Errorf(SDLPlayError, err))
	}
	if err := scr.window.Destroy(); err != nil {
		fmt.Fprintln(output, curated.Errorf(SDLPlayError, err))
	}
	sdl.Quit()
}

func (scr *SdlPlay) resize(width int32, height int32) {
	scr.width = width
	scr.height = height
	scr.window.SetSize(width*scr.scale, height*scr.scale)
	scr.rects = make([]sdl.Rect, 0, width*height)
}

func (scr *SdlPlay) setTitle(snap *hardware.Snapshot) {
	title := windowTitle
	if snap.ROM != nil {
		title = fmt.Sprintf("%s - %s", windowTitle, snap.ROM.Name)
	}
	if snap.Err != nil {
		title = fmt.Sprintf("%s [%v]", title, snap.Err)
	} else if !snap.Running {
		title = fmt.Sprintf("%s [paused, opf %d]", title, snap.OpcodesPerFrame)
	} else {
		title = fmt.Sprintf("%s [opf %d, %.1f fps]", title, snap.OpcodesPerFrame, snap.MeasuredFPS)
	}

	if title != scr.title {
		scr.title = title
		scr.window.SetTitle(title)
	}
}

func (scr *SdlPlay) render(snap *hardware.Snapshot) error {
	scr.setTitle(snap)

	w := int32(snap.Display.Width())
	h := int32(snap.Display.Height())
	if w != scr.width || h != scr.height {
		scr.resize(w, h)
	}

	paper := penOff
	if snap.Err != nil {
		paper = penErr
	}

	if err := scr.renderer.SetDrawColor(paper.R, paper.G, paper.B, paper.A); err != nil {
		return curated.Errorf(SDLPlayError, err)
	}
	if err := scr.renderer.Clear(); err != nil {
		return curated.Errorf(SDLPlayError, err)
	}

	scr.rects = scr.rects[:0]
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			if snap.Display.Pixel(int(x), int(y)) {
				scr.rects = append(scr.rects, sdl.Rect{
					X: x * scr.scale,
					Y: y * scr.scale,
					W: scr.scale,
					H: scr.scale,
				})
			}
		}
	}

	if len(scr.rects) > 0 {
		if err := scr.renderer.SetDrawColor(penOn.R, penOn.G, penOn.B, penOn.A); err != nil {
			return curated.Errorf(SDLPlayError, err)
		}
		if err := scr.renderer.FillRects(scr.rects); err != nil {
			return curated.Errorf(SDLPlayError, err)
		}
	}

	scr.renderer.Present()

	return nil
}
