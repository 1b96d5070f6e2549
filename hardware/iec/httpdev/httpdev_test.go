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

package httpdev_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jetsetilly/gopher64/hardware/iec/httpdev"
	"github.com/jetsetilly/gopher64/test"
)

func TestOpen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("HELLO\nWORLD"))
	}))
	defer srv.Close()

	dev := httpdev.NewDevice()
	payload, err := dev.Open(0, srv.URL)
	test.ExpectedSuccess(t, err)

	// line feeds become carriage returns and the payload ends on one
	test.Equate(t, bytes.Equal(payload, []uint8("HELLO\rWORLD\r")), true)
}

func TestOpenCRLF(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("A\r\nB\r\n"))
	}))
	defer srv.Close()

	dev := httpdev.NewDevice()
	payload, err := dev.Open(0, srv.URL)
	test.ExpectedSuccess(t, err)
	test.Equate(t, bytes.Equal(payload, []uint8("A\rB\r")), true)
}

func TestOpenUnreachableHost(t *testing.T) {
	// a server that has already gone away
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	dev := httpdev.NewDevice()
	_, err := dev.Open(0, url)
	test.ExpectedFailure(t, err)
}

func TestOpenErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dev := httpdev.NewDevice()
	_, err := dev.Open(0, srv.URL)
	test.ExpectedFailure(t, err)
}

func TestFlush(t *testing.T) {
	received := []byte{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b := make([]byte, 16)
		n, _ := r.Body.Read(b)
		received = append(received, b[:n]...)
	}))
	defer srv.Close()

	dev := httpdev.NewDevice()
	err := dev.Flush(1, srv.URL, []uint8("DATA"))
	test.ExpectedSuccess(t, err)
	test.Equate(t, string(received), "DATA")
}
