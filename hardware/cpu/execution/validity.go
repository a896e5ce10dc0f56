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
	"fmt"

	"github.com/stepper6502/stepper6502/hardware/cpu/instructions"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("execution: not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return fmt.Errorf("execution: no definition for opcode (%#02x)", r.OpCode)
	}

	if r.Defn.OpCode != r.OpCode {
		return fmt.Errorf("execution: opcode (%#02x) does not match definition (%#02x)", r.OpCode, r.Defn.OpCode)
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return fmt.Errorf("execution: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	if r.Halted != (r.Defn.Effect == instructions.Halt) {
		return fmt.Errorf("execution: halt state (%v) inconsistent with %s", r.Halted, r.Defn.Operator)
	}

	return nil
}
