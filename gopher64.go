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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/gopher64/disassembly"
	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/hardware/iec/drive"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/modalflag"
	"github.com/jetsetilly/gopher64/monitor"
	"github.com/jetsetilly/gopher64/monitor/terminal"
	"github.com/jetsetilly/gopher64/monitor/terminal/colorterm"
	"github.com/jetsetilly/gopher64/monitor/terminal/plainterm"
	"github.com/jetsetilly/gopher64/performance"
	"github.com/jetsetilly/gopher64/playmode"
	"github.com/jetsetilly/gopher64/prg"
	"github.com/jetsetilly/gopher64/version"
)

const (
	driveDevice = 8
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "MONITOR", "DISASM", "PERFORMANCE", "VERSION")
	md.AddDefaultSubMode("RUN")

	log := md.AddBool("log", false, "echo log entries to stderr")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* %v\n", err)
		return 10
	}

	if *log {
		logger.SetEcho(os.Stderr, true)
	}

	switch md.Mode() {
	case "RUN":
		err = play(md)
	case "MONITOR":
		err = monitorMode(md)
	case "DISASM":
		err = disasm(md, output)
	case "PERFORMANCE":
		err = perform(md, output)
	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md.String(), err)
		return 20
	}

	return 0
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	disk := md.AddString("disk", "", "host directory to serve as disk drive 8")
	dev := md.AddBool("dev", false, "reload the program whenever it changes on disk")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	opts := playmode.Options{
		DiskPath: *disk,
		Dev:      *dev,
	}

	switch len(md.RemainingArgs()) {
	case 0:
		// boot to the BASIC prompt
	case 1:
		opts.PRGFile = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return playmode.Play(opts)
}

func monitorMode(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in monitor mode: COLOR, PLAIN")
	disk := md.AddString("disk", "", "host directory to serve as disk drive 8")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	c64, err := hardware.NewC64()
	if err != nil {
		return err
	}

	err = c64.Reset(true)
	if err != nil {
		return err
	}

	if *disk != "" {
		drv, err := drive.NewDrive(*disk)
		if err != nil {
			return err
		}
		err = c64.Bus.Attach(driveDevice, drv)
		if err != nil {
			return err
		}
	}

	switch len(md.RemainingArgs()) {
	case 0:
		// bare machine
	case 1:
		prog, err := prg.Load(md.GetArg(0))
		if err != nil {
			return err
		}
		err = c64.LoadPRG(prog)
		if err != nil {
			return err
		}
		err = c64.CPU.LoadPC(prog.Origin)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	var term terminal.Terminal

	switch *termType {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	default:
		return fmt.Errorf("unknown terminal type (%s)", *termType)
	}

	mon, err := monitor.NewMonitor(c64, term)
	if err != nil {
		return err
	}

	return mon.Run()
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("PRG file required for %s mode", md)
	case 1:
		prog, err := prg.Load(md.GetArg(0))
		if err != nil {
			return err
		}

		dsm, err := disassembly.FromPRG(prog)
		if err != nil {
			return err
		}

		return dsm.Write(output)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddBool("profile", false, "perform cpu and memory profiling")
	stats := md.AddBool("statsview", false, "open web view of performance stats (requires statsview build tag)")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	prgFile := ""

	switch len(md.RemainingArgs()) {
	case 0:
		// run the busy loop
	case 1:
		prgFile = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return performance.Check(output, *profile, *duration, prgFile, *stats)
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, ver, rev)

	return nil
}
