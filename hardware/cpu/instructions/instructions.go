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

import "fmt"

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	AddressingMode AddressingMode
	Effect         Category
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes [mode=%s effect=%s]", defn.OpCode, defn.Operator, defn.Bytes, defn.AddressingMode, defn.Effect)
}

// definitions is the closed list of supported instructions.
var definitions = []Definition{
	{OpCode: 0xa9, Operator: Lda, Bytes: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xa2, Operator: Ldx, Bytes: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xa0, Operator: Ldy, Bytes: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xaa, Operator: Tax, Bytes: 1, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x8a, Operator: Txa, Bytes: 1, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xa8, Operator: Tay, Bytes: 1, AddressingMode: Implied, Effect: Read},
	{OpCode: 0x98, Operator: Tya, Bytes: 1, AddressingMode: Implied, Effect: Read},
	{OpCode: 0xe8, Operator: Inx, Bytes: 1, AddressingMode: Implied, Effect: Modify},
	{OpCode: 0xca, Operator: Dex, Bytes: 1, AddressingMode: Implied, Effect: Modify},
	{OpCode: 0xc8, Operator: Iny, Bytes: 1, AddressingMode: Implied, Effect: Modify},
	{OpCode: 0x88, Operator: Dey, Bytes: 1, AddressingMode: Implied, Effect: Modify},
	{OpCode: 0x20, Operator: Jsr, Bytes: 3, AddressingMode: Absolute, Effect: Subroutine},
	{OpCode: 0x60, Operator: Rts, Bytes: 1, AddressingMode: Implied, Effect: Subroutine},
	{OpCode: 0x00, Operator: Brk, Bytes: 1, AddressingMode: Implied, Effect: Halt},
}

// GetDefinitions returns the table of instruction definitions, indexed by
// opcode. Unsupported opcodes have a nil entry.
func GetDefinitions() []*Definition {
	table := make([]*Definition, 256)
	for i := range definitions {
		d := definitions[i]
		table[d.OpCode] = &d
	}
	return table
}
