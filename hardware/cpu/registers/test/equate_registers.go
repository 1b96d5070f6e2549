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

// Package test contains the EquateRegisters() function, useful for testing
// register values against expected values. It is a sub-package of the
// registers package so that the main test package does not need to know
// about register types.
package test

import (
	"testing"

	"github.com/jetsetilly/gopher64/hardware/cpu/registers"
)

// EquateRegisters is used to test a register value against an expected
// value. The expected value can be an int, for convenience, or a value of
// the same type as the register.
func EquateRegisters(t *testing.T, value, expectedValue interface{}) {
	t.Helper()

	switch r := value.(type) {
	default:
		t.Fatalf("unhandled type for EquateRegisters() function (%T)", r)

	case registers.Register:
		switch ev := expectedValue.(type) {
		case int:
			if int(r.Value()) != ev {
				t.Errorf("register equation failed (%#02x  - wanted %#02x)", r.Value(), ev)
			}
		case uint8:
			if r.Value() != ev {
				t.Errorf("register equation failed (%#02x  - wanted %#02x)", r.Value(), ev)
			}
		default:
			t.Fatalf("unhandled expected value type for EquateRegisters() function (%T)", ev)
		}

	case registers.StackPointer:
		switch ev := expectedValue.(type) {
		case int:
			if int(r.Value()) != ev {
				t.Errorf("stack pointer equation failed (%#02x  - wanted %#02x)", r.Value(), ev)
			}
		default:
			t.Fatalf("unhandled expected value type for EquateRegisters() function (%T)", ev)
		}

	case registers.ProgramCounter:
		switch ev := expectedValue.(type) {
		case int:
			if int(r.Address()) != ev {
				t.Errorf("program counter equation failed (%#04x  - wanted %#04x)", r.Address(), ev)
			}
		case uint16:
			if r.Address() != ev {
				t.Errorf("program counter equation failed (%#04x  - wanted %#04x)", r.Address(), ev)
			}
		default:
			t.Fatalf("unhandled expected value type for EquateRegisters() function (%T)", ev)
		}

	case registers.StatusRegister:
		switch ev := expectedValue.(type) {
		case string:
			if r.String() != ev {
				t.Errorf("status register equation failed (%s  - wanted %s)", r.String(), ev)
			}
		case int:
			if int(r.Value()) != ev {
				t.Errorf("status register equation failed (%#02x  - wanted %#02x)", r.Value(), ev)
			}
		default:
			t.Fatalf("unhandled expected value type for EquateRegisters() function (%T)", ev)
		}
	}
}
