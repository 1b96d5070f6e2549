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

// Package kernal intercepts the KERNAL's file API and redirects it to the
// devices on the IEC bus.
//
// The interception point is the program counter. The driver asks the trap
// table before every fetch; when the program counter sits on one of the
// API vectors the trap handler runs instead of the ROM routine and the
// flow resumes as if the routine had returned. A handler that declines,
// because the call targets a device the bus doesn't serve, lets the fetch
// go ahead and the ROM deal with the call.
//
// Traps run between instructions only. A handler reads the same zero page
// state the ROM routine would and leaves behind the same state, so a
// program cannot tell a trapped call from a real one short of counting
// cycles.
package kernal

import (
	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/hardware/cpu"
	"github.com/jetsetilly/gopher64/hardware/iec"
	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/prg"
)

// the KERNAL API vectors that are trapped. each is a three byte JMP in the
// ROM; trapping fires before the JMP is fetched.
const (
	SETLFS = uint16(0xffba)
	SETNAM = uint16(0xffbd)
	OPEN   = uint16(0xffc0)
	CLOSE  = uint16(0xffc3)
	CHKIN  = uint16(0xffc6)
	CLRCHN = uint16(0xffcc)
	CHRIN  = uint16(0xffcf)
	LOAD   = uint16(0xffd5)
	SAVE   = uint16(0xffd8)
)

// zero page and workspace locations the file API communicates through.
// names are as the KERNAL source uses them.
const (
	zpSTATUS = uint16(0x90) // device status (ST)
	zpDFLTN  = uint16(0x99) // current input device
	zpEAL    = uint16(0xae) // end of load/save (word)
	zpFNLEN  = uint16(0xb7) // filename length
	zpLA     = uint16(0xb8) // logical file number
	zpSA     = uint16(0xb9) // secondary address
	zpFA     = uint16(0xba) // device number
	zpFNADR  = uint16(0xbb) // filename address (word)
)

// status byte values. bit 6 is end-of-file, bit 7 is device not present.
const (
	statusOK               = uint8(0x00)
	statusEOF              = uint8(0x40)
	statusDeviceNotPresent = uint8(0x80)
)

// the accumulator carries a KERNAL error code when a routine returns with
// the carry flag set.
const (
	errFileNotOpen      = uint8(0x03)
	errDeviceNotPresent = uint8(0x05)
)

// ROM continuation addresses used by the LOAD trap. on failure the flow
// resumes inside the ROM's error reporting rather than at the caller, which
// is how the familiar messages reach the screen.
const (
	ROMLoadComplete     = uint16(0xf5a9)
	ROMFileNotFound     = uint16(0xf704)
	ROMDeviceNotPresent = uint16(0xf707)
	ROMMissingFilename  = uint16(0xf710)
)

// device numbers zero to three are the keyboard, tape, RS-232 and screen.
// the ROM owns those; the bus serves everything above.
const firstBusDevice = 4

// Kernal is the trap table and the state it keeps between calls.
type Kernal struct {
	mem *memory.Memory
	cpu *cpu.CPU
	bus *iec.Bus

	traps map[uint16]func() (bool, error)

	// logical file number of the current input channel when it is served
	// by the bus. zero means the ROM's own channel handling is in charge
	input uint8
}

// NewKernal is the preferred method of initialisation for the Kernal type.
func NewKernal(mem *memory.Memory, mc *cpu.CPU, bus *iec.Bus) *Kernal {
	krn := &Kernal{
		mem: mem,
		cpu: mc,
		bus: bus,
	}

	krn.traps = map[uint16]func() (bool, error){
		SETLFS: krn.setlfs,
		SETNAM: krn.setnam,
		OPEN:   krn.open,
		CLOSE:  krn.close,
		CHKIN:  krn.chkin,
		CLRCHN: krn.clrchn,
		CHRIN:  krn.chrin,
		LOAD:   krn.load,
		SAVE:   krn.save,
	}

	logger.Logf("kernal", "%d file API vectors trapped", len(krn.traps))

	return krn
}

// Reset forgets the current input channel. Call on machine reset, after
// the bus has abandoned its channels.
func (krn *Kernal) Reset() {
	krn.input = 0
}

// IsTrap returns true if the address has a trap handler.
func (krn *Kernal) IsTrap(pc uint16) bool {
	_, ok := krn.traps[pc]
	return ok
}

// Service runs the trap handler for the address, if there is one. The
// boolean return is true when a handler ran and completed the call; false
// means the fetch should go ahead and the ROM handle it.
func (krn *Kernal) Service(pc uint16) (bool, error) {
	h, ok := krn.traps[pc]
	if !ok {
		return false, nil
	}
	return h()
}

// rts emulates the return the trapped routine would have performed.
func (krn *Kernal) rts() error {
	krn.cpu.SP.Add(1, false)
	lo, err := krn.mem.Read(krn.cpu.SP.Address())
	if err != nil {
		return err
	}

	krn.cpu.SP.Add(1, false)
	hi, err := krn.mem.Read(krn.cpu.SP.Address())
	if err != nil {
		return err
	}

	krn.cpu.PC.Load((uint16(hi)<<8 | uint16(lo)) + 1)

	return nil
}

// succeed ends a trapped call: status byte stored, carry clear, return to
// the caller.
func (krn *Kernal) succeed(status uint8) (bool, error) {
	if err := krn.mem.Write(zpSTATUS, status); err != nil {
		return true, err
	}
	krn.cpu.Status.Carry = false
	return true, krn.rts()
}

// fail ends a trapped call on the KERNAL error path: status byte stored,
// error code in the accumulator, carry set, return to the caller.
func (krn *Kernal) fail(status uint8, code uint8) (bool, error) {
	if err := krn.mem.Write(zpSTATUS, status); err != nil {
		return true, err
	}
	krn.cpu.A.Load(code)
	krn.cpu.Status.Carry = true
	return true, krn.rts()
}

// resume abandons the trapped call and continues inside the ROM.
func (krn *Kernal) resume(address uint16) (bool, error) {
	krn.cpu.PC.Load(address)
	return true, nil
}

func (krn *Kernal) peek(address uint16) uint8 {
	b, _ := krn.mem.Peek(address)
	return b
}

func (krn *Kernal) peekWord(address uint16) uint16 {
	return uint16(krn.peek(address)) | uint16(krn.peek(address+1))<<8
}

// filename reads the name recorded by the last SETNAM call.
func (krn *Kernal) filename() string {
	length := int(krn.peek(zpFNLEN))
	address := krn.peekWord(zpFNADR)

	name := make([]uint8, length)
	for i := 0; i < length; i++ {
		name[i] = krn.peek(address + uint16(i))
	}

	return string(name)
}

// SETLFS records the logical file number, device number and secondary
// address from the A, X and Y registers. The semantics are identical to
// the ROM routine so the trap always claims the call.
func (krn *Kernal) setlfs() (bool, error) {
	if err := krn.mem.Write(zpLA, krn.cpu.A.Value()); err != nil {
		return true, err
	}
	if err := krn.mem.Write(zpFA, krn.cpu.X.Value()); err != nil {
		return true, err
	}
	if err := krn.mem.Write(zpSA, krn.cpu.Y.Value()); err != nil {
		return true, err
	}
	return true, krn.rts()
}

// SETNAM records the filename length and pointer from the A, X and Y
// registers.
func (krn *Kernal) setnam() (bool, error) {
	if err := krn.mem.Write(zpFNLEN, krn.cpu.A.Value()); err != nil {
		return true, err
	}
	if err := krn.mem.Write(zpFNADR, krn.cpu.X.Value()); err != nil {
		return true, err
	}
	if err := krn.mem.Write(zpFNADR+1, krn.cpu.Y.Value()); err != nil {
		return true, err
	}
	return true, krn.rts()
}

// OPEN opens the channel recorded by SETLFS/SETNAM on the bus. Calls for
// the ROM's own devices fall through.
func (krn *Kernal) open() (bool, error) {
	device := krn.peek(zpFA)
	if device < firstBusDevice {
		return false, nil
	}

	logical := krn.peek(zpLA)
	secondary := krn.peek(zpSA) & 0x0f

	err := krn.bus.Open(logical, device, secondary, krn.filename())
	if err != nil {
		if curated.Has(err, iec.DeviceNotFound) {
			return krn.fail(statusDeviceNotPresent, errDeviceNotPresent)
		}
		logger.Logf("kernal", "open: %v", err)
		return krn.fail(statusDeviceNotPresent, errDeviceNotPresent)
	}

	return krn.succeed(statusOK)
}

// CLOSE closes the channel named in the accumulator if it is served by the
// bus.
func (krn *Kernal) close() (bool, error) {
	logical := krn.cpu.A.Value()
	if !krn.bus.IsOpen(logical) {
		return false, nil
	}

	if logical == krn.input {
		krn.input = 0
	}

	if err := krn.bus.Close(logical); err != nil {
		logger.Logf("kernal", "close: %v", err)
	}

	return krn.succeed(statusOK)
}

// CHKIN selects the channel named in the X register as the current input
// channel.
func (krn *Kernal) chkin() (bool, error) {
	logical := krn.cpu.X.Value()
	if !krn.bus.IsOpen(logical) {
		return false, nil
	}

	krn.input = logical
	if err := krn.mem.Write(zpDFLTN, krn.peek(zpFA)); err != nil {
		return true, err
	}

	return krn.succeed(statusOK)
}

// CLRCHN restores the default channels. The trap never claims the call;
// the ROM routine must still run to restore its own idea of the channels.
func (krn *Kernal) clrchn() (bool, error) {
	krn.input = 0
	return false, nil
}

// CHRIN returns the next payload byte in the accumulator when the current
// input channel is served by the bus. Calls with the keyboard or another
// ROM device as input fall through.
func (krn *Kernal) chrin() (bool, error) {
	if krn.input == 0 || !krn.bus.IsOpen(krn.input) {
		return false, nil
	}

	b, more, err := krn.bus.Read(krn.input)
	if err != nil {
		return true, err
	}

	krn.cpu.A.Load(b)

	status := statusOK
	if !more {
		status = statusEOF
	}

	return krn.succeed(status)
}

// LOAD fetches a whole program from the bus and writes it through memory.
// On success the flow resumes at the ROM's load-complete entry; on failure
// at the matching error report.
func (krn *Kernal) load() (bool, error) {
	device := krn.peek(zpFA)
	if device < firstBusDevice {
		return false, nil
	}

	if !krn.bus.HasDevice(device) {
		_ = krn.mem.Write(zpSTATUS, statusDeviceNotPresent)
		return krn.resume(ROMDeviceNotPresent)
	}

	if krn.peek(zpFNLEN) == 0 {
		return krn.resume(ROMMissingFilename)
	}

	// the X and Y registers hold the caller's alternative load address.
	// record it before anything disturbs them
	alternative := uint16(krn.cpu.X.Value()) | uint16(krn.cpu.Y.Value())<<8

	logical := krn.peek(zpLA)
	secondary := krn.peek(zpSA)
	name := krn.filename()

	// the secondary address recorded by SETLFS steers relocation below; on
	// the bus a load is always a read channel
	if err := krn.bus.Open(logical, device, 0, name); err != nil {
		logger.Logf("kernal", "load: %v", err)
		return krn.resume(ROMFileNotFound)
	}
	defer func() {
		_ = krn.bus.Close(logical)
	}()

	payload, err := krn.bus.Payload(logical)
	if err != nil {
		return true, err
	}

	p, err := prg.Decode(payload)
	if err != nil {
		logger.Logf("kernal", "load: %v", err)
		return krn.resume(ROMFileNotFound)
	}

	// secondary address zero relocates the program to the caller's address
	origin := p.Origin
	if secondary == 0 {
		origin = alternative
	}

	// an honest write. the screen fills with program bytes if that's where
	// the program loads, exactly as on the real machine
	for i, b := range p.Data {
		if err := krn.mem.Write(origin+uint16(i), b); err != nil {
			return true, err
		}
	}

	end := origin + uint16(len(p.Data))
	if err := krn.mem.Write(zpEAL, uint8(end)); err != nil {
		return true, err
	}
	if err := krn.mem.Write(zpEAL+1, uint8(end>>8)); err != nil {
		return true, err
	}
	krn.cpu.X.Load(uint8(end))
	krn.cpu.Y.Load(uint8(end >> 8))

	if err := krn.mem.Write(zpSTATUS, statusEOF); err != nil {
		return true, err
	}

	logger.Logf("kernal", "load: %s from device %d to %#04x-%#04x", name, device, origin, end-1)

	return krn.resume(ROMLoadComplete)
}

// SAVE sends the memory span between the zero page pointer indexed by the
// accumulator and the address in X/Y to the bus as a program.
func (krn *Kernal) save() (bool, error) {
	device := krn.peek(zpFA)
	if device < firstBusDevice {
		return false, nil
	}

	if !krn.bus.HasDevice(device) {
		return krn.fail(statusDeviceNotPresent, errDeviceNotPresent)
	}

	if krn.peek(zpFNLEN) == 0 {
		return krn.resume(ROMMissingFilename)
	}

	start := krn.peekWord(uint16(krn.cpu.A.Value()))
	end := uint16(krn.cpu.X.Value()) | uint16(krn.cpu.Y.Value())<<8
	name := krn.filename()

	p := &prg.PRG{Origin: start}
	for a := start; a != end; a++ {
		p.Data = append(p.Data, krn.peek(a))
	}

	// a save moves through a write channel: open, write, close. the
	// backend sees the program when the channel closes
	logical := krn.peek(zpLA)
	if logical == 0 {
		logical = 1
	}

	if err := krn.bus.Open(logical, device, 1, name); err != nil {
		logger.Logf("kernal", "save: %v", err)
		return krn.fail(statusDeviceNotPresent, errDeviceNotPresent)
	}

	for _, b := range p.Encode() {
		if err := krn.bus.Write(logical, b); err != nil {
			return true, err
		}
	}

	if err := krn.bus.Close(logical); err != nil {
		logger.Logf("kernal", "save: %v", err)
		return krn.fail(statusDeviceNotPresent, errDeviceNotPresent)
	}

	logger.Logf("kernal", "save: %s to device %d (%#04x-%#04x)", name, device, start, end-1)

	return krn.succeed(statusOK)
}
