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
package execution

import (
	"github.com/stepper6502/stepper6502/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the opcode byte found at Address. this is valid even if the opcode is
	// not supported, in which case Defn will be nil
	OpCode uint8

	// the instruction definition. nil if the opcode is not supported
	Defn *instructions.Definition

	// the number of bytes read from the program during decoding. should
	// equal Defn.Bytes once the instruction has completed
	ByteCount int

	// the operand of the instruction. for immediate mode instructions this is
	// the value; for absolute mode instructions it is the address
	InstructionData uint16

	// whether the instruction has completed
	Final bool

	// whether the instruction halted the CPU
	Halted bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}
