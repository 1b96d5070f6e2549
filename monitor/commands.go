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

package monitor

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopher64/disassembly"
	"github.com/jetsetilly/gopher64/hardware"
	"github.com/jetsetilly/gopher64/monitor/terminal"
	"github.com/jetsetilly/gopher64/prg"
)

// monitor keywords. not a useful data structure but we can use these to form
// the more useful help structure below.
const (
	KeywordHelp        = "HELP"
	KeywordCPU         = "CPU"
	KeywordReg         = "REG"
	KeywordPeek        = "PEEK"
	KeywordPoke        = "POKE"
	KeywordMem         = "MEM"
	KeywordDisassemble = "DISASSEMBLE"
	KeywordStep        = "STEP"
	KeywordRun         = "RUN"
	KeywordBreak       = "BREAK"
	KeywordDrop        = "DROP"
	KeywordList        = "LIST"
	KeywordLoad        = "LOAD"
	KeywordSave        = "SAVE"
	KeywordReset       = "RESET"
	KeywordIRQ         = "IRQ"
	KeywordNMI         = "NMI"
	KeywordViz         = "VIZ"
	KeywordQuit        = "QUIT"
)

// Help contains the help text for the monitor's top level commands.
var Help = map[string]string{
	KeywordHelp:        "Lists commands and provides help for individual monitor commands",
	KeywordCPU:         "Display the current state of the CPU",
	KeywordReg:         "Set a CPU register. eg. REG PC c000",
	KeywordPeek:        "Inspect an individual memory address",
	KeywordPoke:        "Modify an individual memory address",
	KeywordMem:         "Display the contents of a memory range",
	KeywordDisassemble: "Disassemble a memory range (default: from the program counter)",
	KeywordStep:        "Step forward one instruction (empty input also steps)",
	KeywordRun:         "Run until a breakpoint, an illegal opcode or ctrl-c",
	KeywordBreak:       "Set a breakpoint at an address",
	KeywordDrop:        "Drop the breakpoint at an address",
	KeywordList:        "List current breakpoints",
	KeywordLoad:        "Load a PRG file into memory",
	KeywordSave:        "Save a memory range to a PRG file. eg. SAVE out.prg 0801 0900",
	KeywordReset:       "Reset the machine (warm)",
	KeywordIRQ:         "Raise the IRQ line",
	KeywordNMI:         "Raise the NMI line",
	KeywordViz:         "Write a graphviz visualisation of the machine to a file",
	KeywordQuit:        "Exits the monitor",
}

// number of bytes to disassemble when no end address is given.
const disassembleSpan = 0x20

// parseNumber converts a monitor number argument. numbers are hexadecimal by
// default. a + prefix forces decimal.
func parseNumber(s string) (uint16, error) {
	base := 16
	if strings.HasPrefix(s, "+") {
		s = s[1:]
		base = 10
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, "0x")

	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, fmt.Errorf("cannot interpret number (%s)", s)
	}
	return uint16(v), nil
}

// parseCommand scans user input for a valid command and acts upon it. the
// empty string is the same as the STEP command.
func (mon *Monitor) parseCommand(userInput string) error {
	tokens := strings.Fields(userInput)

	if len(tokens) == 0 {
		return mon.step()
	}

	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch command {
	default:
		return fmt.Errorf("%s is not a monitor command (try HELP)", command)

	case KeywordHelp:
		if len(args) > 0 {
			s := strings.ToUpper(args[0])
			txt, prs := Help[s]
			if !prs {
				mon.print(terminal.StyleHelp, "no help for %s", s)
			} else {
				mon.print(terminal.StyleHelp, "%s", txt)
			}
		} else {
			keywords := make([]string, 0, len(Help))
			for k := range Help {
				keywords = append(keywords, k)
			}
			sort.Strings(keywords)
			for _, k := range keywords {
				mon.print(terminal.StyleHelp, k)
			}
		}

	case KeywordCPU:
		mon.print(terminal.StyleMachineInfo, "%s", mon.c64.CPU.String())

	case KeywordReg:
		if len(args) != 2 {
			return fmt.Errorf("REG requires a register name and a value")
		}
		return mon.setRegister(strings.ToUpper(args[0]), args[1])

	case KeywordPeek:
		if len(args) < 1 {
			return fmt.Errorf("PEEK requires an address")
		}
		for _, a := range args {
			address, err := parseNumber(a)
			if err != nil {
				return err
			}
			v, err := mon.c64.Mem.Peek(address)
			if err != nil {
				return err
			}
			mon.print(terminal.StyleMachineInfo, "$%04x = $%02x", address, v)
		}

	case KeywordPoke:
		if len(args) < 2 {
			return fmt.Errorf("POKE requires an address and at least one value")
		}
		address, err := parseNumber(args[0])
		if err != nil {
			return err
		}
		for _, a := range args[1:] {
			v, err := parseNumber(a)
			if err != nil {
				return err
			}
			if v > 0xff {
				return fmt.Errorf("poke value does not fit in a byte ($%x)", v)
			}
			if err := mon.c64.Mem.Poke(address, uint8(v)); err != nil {
				return err
			}
			address++
		}

	case KeywordMem:
		if len(args) < 1 {
			return fmt.Errorf("MEM requires an address")
		}
		origin, err := parseNumber(args[0])
		if err != nil {
			return err
		}
		memtop := origin + 0x3f
		if len(args) > 1 {
			memtop, err = parseNumber(args[1])
			if err != nil {
				return err
			}
		}
		if memtop < origin {
			return fmt.Errorf("memory range is backwards")
		}
		mon.print(terminal.StyleMachineInfo, "%s", strings.TrimRight(mon.c64.Mem.Dump(origin, memtop), "\n"))

	case KeywordDisassemble:
		origin := mon.c64.CPU.PC.Address()
		var err error
		if len(args) > 0 {
			origin, err = parseNumber(args[0])
			if err != nil {
				return err
			}
		}
		memtop := origin + disassembleSpan - 1
		if len(args) > 1 {
			memtop, err = parseNumber(args[1])
			if err != nil {
				return err
			}
		}
		if memtop < origin {
			return fmt.Errorf("memory range is backwards")
		}
		dsm, err := disassembly.FromMemory(mon.c64.Mem, origin, memtop)
		if err != nil {
			return err
		}
		for _, e := range dsm.Entries {
			mon.print(terminal.StyleCPUStep, "%s", e.String())
		}

	case KeywordStep:
		return mon.step()

	case KeywordRun:
		return mon.run()

	case KeywordBreak:
		if len(args) < 1 {
			return fmt.Errorf("BREAK requires an address")
		}
		for _, a := range args {
			address, err := parseNumber(a)
			if err != nil {
				return err
			}
			mon.c64.SetBreakpoint(address)
		}

	case KeywordDrop:
		if len(args) < 1 {
			return fmt.Errorf("DROP requires an address")
		}
		for _, a := range args {
			address, err := parseNumber(a)
			if err != nil {
				return err
			}
			mon.c64.ClearBreakpoint(address)
		}

	case KeywordList:
		breakpoints := mon.c64.Breakpoints()
		if len(breakpoints) == 0 {
			mon.print(terminal.StyleFeedback, "no breakpoints")
		}
		for _, address := range breakpoints {
			mon.print(terminal.StyleFeedback, "break at $%04x", address)
		}

	case KeywordLoad:
		if len(args) != 1 {
			return fmt.Errorf("LOAD requires a filename")
		}
		p, err := prg.Load(args[0])
		if err != nil {
			return err
		}
		if err := mon.c64.LoadPRG(p); err != nil {
			return err
		}
		mon.print(terminal.StyleFeedback, "loaded %s to $%04x-$%04x", args[0], p.Origin, p.Memtop())

	case KeywordSave:
		if len(args) != 3 {
			return fmt.Errorf("SAVE requires a filename and a memory range")
		}
		origin, err := parseNumber(args[1])
		if err != nil {
			return err
		}
		memtop, err := parseNumber(args[2])
		if err != nil {
			return err
		}
		if memtop < origin {
			return fmt.Errorf("memory range is backwards")
		}
		p := &prg.PRG{Origin: origin}
		for a := int(origin); a <= int(memtop); a++ {
			v, err := mon.c64.Mem.Peek(uint16(a))
			if err != nil {
				return err
			}
			p.Data = append(p.Data, v)
		}
		if err := p.Save(args[0]); err != nil {
			return err
		}
		mon.print(terminal.StyleFeedback, "saved $%04x-$%04x to %s", origin, memtop, args[0])

	case KeywordReset:
		if err := mon.c64.Reset(false); err != nil {
			return err
		}
		mon.print(terminal.StyleFeedback, "machine reset")

	case KeywordIRQ:
		mon.c64.RaiseIRQ()
		mon.print(terminal.StyleFeedback, "IRQ line raised")

	case KeywordNMI:
		mon.c64.RaiseNMI()
		mon.print(terminal.StyleFeedback, "NMI line raised")

	case KeywordViz:
		filename := "gopher64.dot"
		if len(args) > 0 {
			filename = args[0]
		}
		f, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, mon.c64)
		mon.print(terminal.StyleFeedback, "machine visualisation written to %s", filename)

	case KeywordQuit:
		mon.running = false
	}

	return nil
}

// setRegister alters a named CPU register.
func (mon *Monitor) setRegister(name string, arg string) error {
	v, err := parseNumber(arg)
	if err != nil {
		return err
	}

	if name != "PC" && v > 0xff {
		return fmt.Errorf("value does not fit in %s ($%x)", name, v)
	}

	switch name {
	case "PC":
		mon.c64.CPU.PC.Load(v)
	case "A":
		mon.c64.CPU.A.Load(uint8(v))
	case "X":
		mon.c64.CPU.X.Load(uint8(v))
	case "Y":
		mon.c64.CPU.Y.Load(uint8(v))
	case "SP":
		mon.c64.CPU.SP.Load(uint8(v))
	case "SR":
		mon.c64.CPU.Status.Load(uint8(v))
	default:
		return fmt.Errorf("no register called %s", name)
	}

	mon.print(terminal.StyleMachineInfo, "%s", mon.c64.CPU.String())

	return nil
}

// step the emulation forward one instruction and report the result.
func (mon *Monitor) step() error {
	if err := mon.c64.Step(); err != nil {
		mon.print(terminal.StyleError, "%v", err)
	}
	mon.printLastStep()
	return nil
}

// run the emulation until something interesting happens. ctrl-c suspends the
// run and returns to the monitor prompt.
func (mon *Monitor) run() error {
	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)
	defer signal.Stop(sigint)

	var last hardware.StopReason

	err := mon.c64.Run(func(reason hardware.StopReason) (bool, error) {
		last = reason

		select {
		case <-sigint:
			return false, nil
		default:
		}

		switch reason {
		case hardware.StopBudget, hardware.StopInterrupt:
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		// the illegal opcode error has already stopped the run. report it
		// and return to the prompt
		mon.print(terminal.StyleError, "%v", err)
	} else {
		mon.print(terminal.StyleFeedback, "stopped (%s)", last.String())
	}
	mon.printLastStep()

	return nil
}
