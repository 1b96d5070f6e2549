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

// Package httpdev puts the web on the IEC bus. The filename given to the
// open call is a URL; the response body becomes the channel payload.
//
// The fetch happens entirely inside Open(). By the time the program reads
// its first byte the whole response is buffered, so the per-byte read path
// never touches the network. A slow host costs time at open, exactly where
// the bus contract says it must.
package httpdev

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jetsetilly/gopher64/curated"
)

// sentinal errors returned by the Device.
const (
	NotFetchable = "httpdev: %v"
	HostRefused  = "httpdev: %s: unexpected response [%d]"
)

// responses are capped. a program reading a channel one byte at a time has
// no business with anything larger
const maxPayload = 1024 * 1024

// Device is an iec.Device that fetches URLs.
type Device struct {
	client *http.Client
}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice() *Device {
	return &Device{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ID implements the iec.Device interface.
func (dev *Device) ID() string {
	return "http device"
}

// Open implements the iec.Device interface. The URL is fetched eagerly and
// the response body returned as the payload. Line endings are converted to
// the carriage return the KERNAL read path uses as its line sentinel, and
// a final carriage return is guaranteed.
func (dev *Device) Open(secondary uint8, name string) ([]uint8, error) {
	url := name
	if !strings.Contains(url, "://") {
		url = "http://" + url
	}

	resp, err := dev.client.Get(url)
	if err != nil {
		return nil, curated.Errorf(NotFetchable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, curated.Errorf(HostRefused, url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayload))
	if err != nil {
		return nil, curated.Errorf(NotFetchable, err)
	}

	return toPayload(body), nil
}

// Flush implements the iec.Device interface. Bytes written to an open
// channel are posted back to the URL when the channel closes.
func (dev *Device) Flush(secondary uint8, name string, data []uint8) error {
	url := name
	if !strings.Contains(url, "://") {
		url = "http://" + url
	}

	resp, err := dev.client.Post(url, "application/octet-stream", bytes.NewReader(data))
	if err != nil {
		return curated.Errorf(NotFetchable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 && resp.StatusCode != 201 && resp.StatusCode != 204 {
		err = fmt.Errorf("post: unexpected response [%d]", resp.StatusCode)
		return curated.Errorf(NotFetchable, err)
	}

	return nil
}

// toPayload converts a response body to a channel payload: line feeds
// become carriage returns and the payload always ends on one.
func toPayload(body []uint8) []uint8 {
	payload := make([]uint8, 0, len(body)+1)
	for i := 0; i < len(body); i++ {
		b := body[i]
		switch b {
		case '\r':
			// swallow the line feed of a CRLF pair
			if i+1 < len(body) && body[i+1] == '\n' {
				i++
			}
			payload = append(payload, '\r')
		case '\n':
			payload = append(payload, '\r')
		default:
			payload = append(payload, b)
		}
	}

	if len(payload) == 0 || payload[len(payload)-1] != '\r' {
		payload = append(payload, '\r')
	}

	return payload
}
