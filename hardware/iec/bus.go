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

package iec

import (
	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/logger"
)

// sentinal errors returned by the Bus.
const (
	// returned by Open when no attached device answers to the number
	DeviceNotFound = "iec: no device on the bus answers to number %d"

	// returned by Open and Close when the backend rejects the name it was
	// given. the wrapped error says why
	NameResolutionError = "iec: device %d: %v"

	// returned by Read and Write when the logical file has no channel
	NotOpen = "iec: logical file %d is not open"

	// returned by Attach for device numbers the serial bus cannot address
	InvalidDevice = "iec: device number %d is not addressable"
)

// Device is a backend serving a device number on the bus.
type Device interface {
	// ID identifies the device in logs.
	ID() string

	// Open resolves a name and returns the complete channel payload. A
	// backend that must block to gather the payload does so here; nothing
	// on the per-byte read path is allowed to block. A backend opening a
	// write channel returns an empty payload.
	Open(secondary uint8, name string) ([]uint8, error)

	// Flush receives the bytes accumulated on a channel when the channel
	// closes. Devices with no use for them return nil.
	Flush(secondary uint8, name string, data []uint8) error
}

// channel is one open logical file. The payload is complete from the
// moment the channel opens.
type channel struct {
	device    uint8
	secondary uint8
	name      string

	payload []uint8
	cursor  int

	written []uint8
}

// Bus dispatches logical file operations to the devices attached to it.
// It stands in for the serial bus and the KERNAL's file tables at once:
// channels are keyed by logical file number, exactly one per number.
type Bus struct {
	devices  map[uint8]Device
	channels map[uint8]*channel
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus() *Bus {
	return &Bus{
		devices:  make(map[uint8]Device),
		channels: make(map[uint8]*channel),
	}
}

// Attach puts a device on the bus. Device numbers follow the serial bus
// convention, 1 to 30; numbers 0 to 3 belong to the machine itself
// (keyboard, tape, RS-232, screen) and those calls never reach the bus.
// Attaching to an occupied number replaces the previous device.
func (bus *Bus) Attach(device uint8, dev Device) error {
	if device < 1 || device > 30 {
		return curated.Errorf(InvalidDevice, device)
	}

	bus.devices[device] = dev
	logger.Logf("iec", "device %d attached (%s)", device, dev.ID())

	return nil
}

// Open a channel on a logical file number. The name is resolved by the
// backend attached at the device number and the complete response payload
// is buffered before Open returns.
//
// At most one channel exists per logical file number. Opening a second
// with the same number closes and replaces the first.
func (bus *Bus) Open(logical uint8, device uint8, secondary uint8, name string) error {
	dev, ok := bus.devices[device]
	if !ok {
		return curated.Errorf(DeviceNotFound, device)
	}

	payload, err := dev.Open(secondary, name)
	if err != nil {
		return curated.Errorf(NameResolutionError, device, err)
	}

	if _, ok := bus.channels[logical]; ok {
		if err := bus.Close(logical); err != nil {
			logger.Logf("iec", "closing replaced channel: %v", err)
		}
	}

	bus.channels[logical] = &channel{
		device:    device,
		secondary: secondary,
		name:      name,
		payload:   payload,
	}

	logger.Logf("iec", "open %d,%d,%d (%s) %d bytes buffered", logical, device, secondary, name, len(payload))

	return nil
}

// HasDevice reports whether a backend is attached at the device number.
func (bus *Bus) HasDevice(device uint8) bool {
	_, ok := bus.devices[device]
	return ok
}

// Payload returns everything left on the channel in one piece, leaving the
// channel exhausted. The KERNAL load path moves whole programs this way;
// character input sticks to Read().
func (bus *Bus) Payload(logical uint8) ([]uint8, error) {
	ch, ok := bus.channels[logical]
	if !ok {
		return nil, curated.Errorf(NotOpen, logical)
	}

	payload := make([]uint8, len(ch.payload)-ch.cursor)
	copy(payload, ch.payload[ch.cursor:])
	ch.cursor = len(ch.payload)

	return payload, nil
}

// IsOpen reports whether a channel exists on the logical file number.
func (bus *Bus) IsOpen(logical uint8) bool {
	_, ok := bus.channels[logical]
	return ok
}

// Read pulls the next payload byte from the channel on the logical file
// number. The boolean return is false when the byte being returned is the
// last; line oriented payloads end on their carriage return sentinel.
// Reading an exhausted channel returns a zero byte.
func (bus *Bus) Read(logical uint8) (uint8, bool, error) {
	ch, ok := bus.channels[logical]
	if !ok {
		return 0, false, curated.Errorf(NotOpen, logical)
	}

	if ch.cursor >= len(ch.payload) {
		return 0, false, nil
	}

	b := ch.payload[ch.cursor]
	ch.cursor++

	return b, ch.cursor < len(ch.payload), nil
}

// Write accumulates a byte on the channel. The backend sees the
// accumulated bytes when the channel closes, never before.
func (bus *Bus) Write(logical uint8, data uint8) error {
	ch, ok := bus.channels[logical]
	if !ok {
		return curated.Errorf(NotOpen, logical)
	}

	ch.written = append(ch.written, data)

	return nil
}

// Close releases the channel on the logical file number, handing any
// accumulated writes to the backend. Closing a number with no channel is
// not an error, which makes Close idempotent.
func (bus *Bus) Close(logical uint8) error {
	ch, ok := bus.channels[logical]
	if !ok {
		return nil
	}

	delete(bus.channels, logical)

	if len(ch.written) > 0 {
		if dev, ok := bus.devices[ch.device]; ok {
			if err := dev.Flush(ch.secondary, ch.name, ch.written); err != nil {
				return curated.Errorf(NameResolutionError, ch.device, err)
			}
		}
	}

	return nil
}

// Reset abandons every open channel. Accumulated writes are discarded,
// which is what a hardware reset does to the real bus.
func (bus *Bus) Reset() {
	for logical := range bus.channels {
		delete(bus.channels, logical)
	}
}
