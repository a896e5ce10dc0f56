// This file is part of Stepper6502.
//
// Stepper6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Stepper6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Stepper6502.  If not, see <https://www.gnu.org/licenses/>.
package instructions

// AddressingMode describes how the operand of an instruction is found.
type AddressingMode int

// List of supported addressing modes.
const (
	// no operand bytes
	Implied AddressingMode = iota

	// one operand byte, which is the value to use
	Immediate

	// two operand bytes (little-endian), which is an address
	Absolute
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Immediate:
		return "Immediate"
	case Absolute:
		return "Absolute"
	}
	return "unknown addressing mode"
}

// OperandBytes returns the number of bytes following the opcode for the
// addressing mode.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case Immediate:
		return 1
	case Absolute:
		return 2
	}
	return 0
}
