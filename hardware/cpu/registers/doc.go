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

// Package registers implements the register file found in the 6510. The
// accumulator and the two index registers are instances of the Register
// type. The program counter and the status register meanwhile, are
// implemented as their own types because of their special purposes. The
// stack pointer is a Register that knows it lives on page one of the
// address space.
//
// The Register type implements the arithmetic operations required by the
// instruction set, including the decimal mode variations of addition and
// subtraction. The decimal operations return flag information explicitly
// because the rules for how the flags are set differ from binary
// arithmetic in ways that only the operation itself can know.
package registers
