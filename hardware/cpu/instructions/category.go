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

// Category of an instruction describes its effect.
type Category int

// List of instruction categories.
const (
	// the result of the instruction is a value read from the operand or
	// another register
	Read Category = iota

	// the result of the instruction is a register modified in place
	Modify

	// the instruction changes the flow of the program by way of the stack
	Subroutine

	// the instruction stops execution
	Halt
)

func (e Category) String() string {
	switch e {
	case Read:
		return "Read"
	case Modify:
		return "Modify"
	case Subroutine:
		return "Subroutine"
	case Halt:
		return "Halt"
	}
	return "unknown effect"
}

// HasResult returns true if instructions in the category produce a result
// value. The CPU updates the Zero and Sign flags for instructions that
// produce a result.
func (e Category) HasResult() bool {
	return e == Read || e == Modify
}
