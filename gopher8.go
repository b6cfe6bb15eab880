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
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/audio"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/emulation"
	"github.com/jetsetilly/gopher8/engine"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/gui/sdlaudio"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/terminal"
	"github.com/jetsetilly/gopher8/terminal/easyterm"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/version"
	"github.com/jetsetilly/gopher8/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode handles ctrl-c
	// itself. the terminal frontend sees ctrl-c as a key press for example.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window event handling (including creation)
// to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// default ctrl-c handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// creator() returns a nil pointer wrapped in a non-nil
				// interface on error
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("PLAY", "TERM", "HEADLESS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, sync)

	case "TERM":
		err = term(md, sync)

	case "HEADLESS":
		err = headless(md, os.Stdout)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// options common to all modes.
type commonOptions struct {
	opf       *uint
	prefs     *string
	wav       *string
	echo      *bool
	statsview *bool
}

func addCommonOptions(md *modalflag.Modes) commonOptions {
	opt := commonOptions{
		opf:   md.AddUint("opf", 0, "opcodes per frame (0 to use the saved preference)"),
		prefs: md.AddString("prefs", "", "preferences to apply for this run only (key::value; key::value)"),
		wav:   md.AddString("wav", "", "record audio to wav file"),
		echo:  md.AddBool("echo", false, "echo log to stdout"),
	}
	if statsview.Available() {
		opt.statsview = md.AddBool("statsview", false, "run stats server")
	}
	return opt
}

// the ROM and the engine options that follow from the common options. the
// beeper is returned so that mixers can be added. the beeper's End() must be
// called when the engine has ended.
func prepare(md *modalflag.Modes, opt commonOptions) (*audio.Beeper, []engine.Option, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, nil, curated.Errorf("rom required for %s mode", md)
	case 1:
	default:
		return nil, nil, curated.Errorf("too many arguments for %s mode", md)
	}

	if *opt.echo {
		logger.SetEcho(os.Stdout, true)
	}

	md.Visit(func(flag string) {
		logger.Logf(logger.Allow, "gopher8", "%s: -%s", md, flag)
	})

	if opt.statsview != nil && *opt.statsview {
		statsview.Launch(os.Stdout)
	}

	// preferences given on the command line are used in place of the saved
	// preferences while the environment is created
	prefs.PushCommandLineStack(*opt.prefs)
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	unused := prefs.PopCommandLineStack()
	if err != nil {
		return nil, nil, err
	}
	if unused != "" {
		logger.Logf(logger.Allow, "gopher8", "unused preferences: %s", unused)
	}

	bpr := audio.NewBeeper(env.Prefs.Audio)

	if *opt.wav != "" {
		aw, err := wavwriter.New(*opt.wav)
		if err != nil {
			return nil, nil, err
		}
		bpr.AddMixer(aw)
	}

	opts := []engine.Option{
		engine.WithEnvironment(env),
		engine.WithROM(md.GetArg(0)),
		engine.WithRunning(true),
		engine.WithOpcodesPerFrame(uint32(*opt.opf)),
		engine.WithAudio(bpr),
	}

	return bpr, opts, nil
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	opt := addCommonOptions(md)
	scale := md.AddInt("scale", sdlplay.DefaultScale, "window pixels per display pixel")
	md.AdditionalHelp(userinput.Help)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	bpr, opts, err := prepare(md, opt)
	if err != nil {
		return err
	}

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		return sdlplay.NewSdlPlay(*scale)
	}

	// wait for creator result
	var scr *sdlplay.SdlPlay
	select {
	case g := <-sync.creation:
		scr = g.(*sdlplay.SdlPlay)
	case err := <-sync.creationError:
		return err
	}

	// audio device is opened after the gui has initialised SDL
	aud, err := sdlaudio.NewAudio()
	if err != nil {
		logger.Log(logger.Allow, "gopher8", err)
	} else {
		bpr.AddMixer(aud)
	}

	eng, err := engine.New(opts...)
	if err != nil {
		return err
	}

	scr.Attach(eng)

	// the engine may have been replaced by the gui
	eng = <-scr.Ended()
	eng.Commands().Push(emulation.Exit{})
	eng.Wait()

	return summariseLog(os.Stdout, opt, endMixing(bpr, eng))
}

func term(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	opt := addCommonOptions(md)
	md.AdditionalHelp(userinput.Help)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	bpr, opts, err := prepare(md, opt)
	if err != nil {
		return err
	}

	eng, err := engine.New(opts...)
	if err != nil {
		return err
	}

	// ctrl-c is handled by the terminal frontend
	sync.state <- stateRequest{req: reqNoIntSig}

	trm, err := terminal.NewTerminal(eng)
	if err != nil {
		eng.Commands().Push(emulation.Exit{})
		eng.Wait()
		if curated.Has(err, easyterm.NotATerminal) {
			return curated.Errorf("%v: try PLAY or HEADLESS mode", err)
		}
		return err
	}

	err = trm.Run()
	trm.CleanUp()

	eng = trm.Engine()
	eng.Commands().Push(emulation.Exit{})
	eng.Wait()

	if err != nil {
		return err
	}

	return summariseLog(os.Stdout, opt, endMixing(bpr, eng))
}

// end audio mixing and report any machine fault.
func endMixing(bpr *audio.Beeper, eng *engine.Engine) error {
	if err := bpr.End(); err != nil {
		return err
	}

	if snap := eng.State().Latest(); snap.Err != nil {
		return snap.Err
	}

	return nil
}

// the number of log entries shown after an error.
const summaryLength = 10

// write the most recent log entries if the mode ended with an error. the
// summary is not required if the log was echoed as it happened.
func summariseLog(output io.Writer, opt commonOptions, err error) error {
	if err != nil && !*opt.echo {
		fmt.Fprintln(output, "* recent log entries:")
		logger.Tail(output, summaryLength)
	}
	return err
}
