// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

// Package playmode is the shipped interactive mode of the emulator. The
// machine boots into BASIC on a terminal screen drawn with tcell, the
// keyboard feeds the KERNAL buffer and a host directory can be served as
// disk drive 8.
package playmode

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/hardware/iec/drive"
	"github.com/jetsetilly/gopher64/hardware/iec/httpdev"
	"github.com/jetsetilly/gopher64/hardware/keyboard"
	"github.com/jetsetilly/gopher64/hardware/vic"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/prg"
)

// sentinal errors returned by the Play function.
const (
	PlayError = "playmode: %v"
)

// device numbers answered on the IEC bus. eight is where every disk drive
// has always lived; the http gateway takes a number no physical hardware
// ever claimed
const (
	driveDevice = 8
	httpDevice  = 23
)

// the PAL machine runs at fifty frames per second.
const (
	framePeriod    = 20 * time.Millisecond
	cyclesPerFrame = vic.ClockPAL / 50
)

// number of frames to let the KERNAL and BASIC settle before a program
// from the command line is loaded into memory
const bootFrames = 100

// Options summarises the command line choices given to Play().
type Options struct {
	// program to load once the machine has booted. empty means boot to
	// the BASIC prompt and nothing more
	PRGFile string

	// host directory served as disk drive 8. empty means no drive
	DiskPath string

	// reload PRGFile whenever it changes on disk
	Dev bool
}

type playmode struct {
	c64    *hardware.C64
	scr    *screen
	opts   Options
	events chan tcell.Event

	// countdown to the initial program load. zero means the load has
	// happened
	bootWait int

	// receives the modified program in dev mode
	reload chan *prg.PRG
}

// Play sets the emulation running. The function does not return until the
// user quits with the ESC key or an emulation error occurs.
func Play(opts Options) error {
	c64, err := hardware.NewC64()
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	if opts.DiskPath != "" {
		drv, err := drive.NewDrive(opts.DiskPath)
		if err != nil {
			return curated.Errorf(PlayError, err)
		}
		if err := c64.Bus.Attach(driveDevice, drv); err != nil {
			return curated.Errorf(PlayError, err)
		}
	}

	if err := c64.Bus.Attach(httpDevice, httpdev.NewDevice()); err != nil {
		return curated.Errorf(PlayError, err)
	}

	if err := mapROMs(c64); err != nil {
		return err
	}

	if err := c64.Reset(true); err != nil {
		return curated.Errorf(PlayError, err)
	}

	scr, err := newScreen()
	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	defer scr.close()

	pl := &playmode{
		c64:    c64,
		scr:    scr,
		opts:   opts,
		events: make(chan tcell.Event, 64),
	}

	if opts.PRGFile != "" {
		pl.bootWait = bootFrames
	}

	if opts.Dev {
		if opts.PRGFile == "" {
			return curated.Errorf(PlayError, "-dev requires a program file")
		}
		pl.reload = make(chan *prg.PRG, 1)
		stop, err := watchPRG(opts.PRGFile, pl.reload)
		if err != nil {
			return curated.Errorf(PlayError, err)
		}
		defer stop()
	}

	// tcell event polling happens on its own goroutine. the channel is
	// drained in the frame loop
	go func() {
		for {
			ev := scr.tcl.PollEvent()
			if ev == nil {
				return
			}
			pl.events <- ev
		}
	}()

	return pl.loop()
}

// loop runs frames until the user quits.
func (pl *playmode) loop() error {
	tick := time.NewTicker(framePeriod)
	defer tick.Stop()

	for {
		select {
		case <-tick.C:
		case ev := <-pl.events:
			if quit := pl.handleEvent(ev); quit {
				return nil
			}
			continue

		case p := <-pl.reload:
			pl.attachProgram(p)
			continue
		}

		// the jiffy interrupt. the KERNAL's handler updates the clock and
		// collects keystrokes
		pl.c64.RaiseIRQ()

		remaining := cyclesPerFrame
		for remaining > 0 {
			cycles, _, err := pl.c64.RunBurst(remaining)
			if err != nil {
				return curated.Errorf(PlayError, err)
			}
			remaining -= cycles

			// interrupt stops resume on the next burst; there is nothing
			// else a frame needs to react to
		}

		if pl.bootWait > 0 {
			pl.bootWait--
			if pl.bootWait == 0 {
				p, err := prg.Load(pl.opts.PRGFile)
				if err != nil {
					return curated.Errorf(PlayError, err)
				}
				pl.attachProgram(p)
			}
		}

		pl.scr.render(pl.c64.VIC, pl.c64.Mem)
	}
}

// attachProgram loads a program into memory and, for a BASIC program, types
// RUN on the user's behalf.
func (pl *playmode) attachProgram(p *prg.PRG) {
	if err := pl.c64.LoadPRG(p); err != nil {
		logger.Logf("playmode", "program load failed: %v", err)
		return
	}

	logger.Logf("playmode", "program loaded at %#04x to %#04x", p.Origin, p.Memtop())

	if p.IsBasic() {
		pl.c64.Keyboard.Inject('R', 'U', 'N', keyboard.Return)
	}
}
