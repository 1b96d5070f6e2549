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

// Package performance measures the speed of the emulation. Check() runs the
// machine headless for a fixed wall-clock duration and reports the achieved
// cycle rate against the rate of the real crystal. It will optionally
// generate profiling information.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/hardware/vic"
	"github.com/jetsetilly/gopher64/prg"
	"github.com/jetsetilly/gopher64/statsview"
)

// sentinal error returned by the Check function.
const PerformanceError = "performance: %v"

// Check runs the emulation for the wall-clock duration given in runTime and
// writes a speed report to output.
//
// A program file, when given, is loaded and the program counter pointed at
// it. Without one the machine spins on a jump-to-self, which exercises the
// fetch and execute path and nothing else.
func Check(output io.Writer, profile bool, runTime string, prgFile string, stats bool) error {
	duration, err := time.ParseDuration(runTime)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	if stats {
		if !statsview.Available() {
			return curated.Errorf(PerformanceError, "no statsview in this build (build with the statsview tag)")
		}
		statsview.Launch(output)
	}

	c64, err := hardware.NewC64()
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}
	if err := c64.Reset(true); err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	if prgFile != "" {
		p, err := prg.Load(prgFile)
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		if err := c64.LoadPRG(p); err != nil {
			return curated.Errorf(PerformanceError, err)
		}
		if err := c64.CPU.LoadPC(p.Origin); err != nil {
			return curated.Errorf(PerformanceError, err)
		}
	} else {
		// JMP $1000 at $1000
		for i, b := range []uint8{0x4c, 0x00, 0x10} {
			if err := c64.Mem.Poke(0x1000+uint16(i), b); err != nil {
				return curated.Errorf(PerformanceError, err)
			}
		}
		if err := c64.CPU.LoadPC(0x1000); err != nil {
			return curated.Errorf(PerformanceError, err)
		}
	}

	startCycles := c64.Cycles

	err = cpuProfile(profile, "cpu.profile", func() error {
		timesUp := make(chan bool)
		time.AfterFunc(duration, func() {
			close(timesUp)
		})

		return c64.Run(func(_ hardware.StopReason) (bool, error) {
			select {
			case <-timesUp:
				return false, nil
			default:
			}
			return true, nil
		})
	})
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	cycles := c64.Cycles - startCycles
	rate := float64(cycles) / duration.Seconds()
	accuracy := 100 * rate / vic.ClockPAL
	fmt.Fprintf(output, "%.0f cycles/sec (%d cycles in %.2f seconds) %.1f%%\n",
		rate, cycles, duration.Seconds(), accuracy)

	return memProfile(profile, "mem.profile")
}
