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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher8/engine"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly and are of no
	// use to us
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service implements the GuiCreator interface. Must only be called from the
// main thread.
func (scr *SdlPlay) Service() {
	select {
	case eng := <-scr.attach:
		scr.eng = eng
		scr.ctrl = userinput.NewControllers(userinput.NewKeymap(), eng.State())
	default:
	}

	// wait a short time for the first event so that the main loop does not
	// spin. the remaining events are polled
	for ev := sdl.WaitEventTimeout(1); ev != nil; ev = sdl.PollEvent() {
		scr.handleEvent(ev)
	}

	if scr.eng == nil {
		return
	}

	if scr.ctrl.Reset {
		scr.reset()
	}

	if scr.ctrl.Quit {
		scr.end()
		return
	}

	select {
	case <-scr.eng.State().Updated():
		if err := scr.render(scr.eng.State().Latest()); err != nil {
			logger.Log(logger.Allow, "sdlplay", err)
		}
	case <-scr.eng.Done():
		scr.end()
	default:
	}
}

func (scr *SdlPlay) handleEvent(ev sdl.Event) {
	if scr.ctrl == nil {
		return
	}

	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		scr.ctrl.HandleUserInput(userinput.EventQuit{}, scr.eng.Commands())

	case *sdl.KeyboardEvent:
		mod := userinput.KeyModNone

		if sdl.GetModState()&sdl.KMOD_LALT == sdl.KMOD_LALT ||
			sdl.GetModState()&sdl.KMOD_RALT == sdl.KMOD_RALT {
			mod = userinput.KeyModAlt
		} else if sdl.GetModState()&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT ||
			sdl.GetModState()&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
			mod = userinput.KeyModShift
		} else if sdl.GetModState()&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
			sdl.GetModState()&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
			mod = userinput.KeyModCtrl
		}

		scr.ctrl.HandleUserInput(userinput.EventKeyboard{
			Key:    sdl.GetKeyName(ev.Keysym.Sym),
			Down:   ev.Type == sdl.KEYDOWN,
			Repeat: ev.Repeat != 0,
			Mod:    mod,
		}, scr.eng.Commands())
	}
}

func (scr *SdlPlay) reset() {
	scr.ctrl.Reset = false

	eng, err := engine.Replace(scr.eng, true)
	if err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
		scr.end()
		return
	}

	scr.eng = eng
	scr.ctrl.SetReader(eng.State())
	scr.ctrl.ReleaseAll(eng.Commands())

	logger.Log(logger.Allow, "sdlplay", "machine reset")
}

// hand the engine back to the goroutine that attached it. the engine is
// detached from the window.
func (scr *SdlPlay) end() {
	eng := scr.eng
	scr.eng = nil
	scr.ctrl = nil
	scr.ended <- eng
}
