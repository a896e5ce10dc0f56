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
package disassembly

import (
	"fmt"
	"strings"

	"github.com/stepper6502/stepper6502/hardware/cpu/execution"
	"github.com/stepper6502/stepper6502/hardware/cpu/instructions"
	"github.com/stepper6502/stepper6502/hardware/memory/cpubus"
)

// the operator string used for unsupported opcodes
const unknownOperator = "???"

// Entry is a disassembled instruction. It is a representation of
// execution.Result.
type Entry struct {
	// the decoded instruction. the Final field is always false because the
	// instruction has not been executed
	Result execution.Result

	// string representations of information in Result
	Bytecode string
	Address  string
	Operator string
	Operand  string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s  %-8s  %s", e.Address, e.Bytecode, e.Instruction())
}

// Instruction returns the operator and operand as a single string.
func (e Entry) Instruction() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", e.Operator, e.Operand))
}

// Size is the number of bytes the entry occupies in memory.
func (e Entry) Size() int {
	return e.Result.ByteCount
}

// IsUnknown returns true if the entry is not a supported instruction.
func (e Entry) IsUnknown() bool {
	return e.Result.Defn == nil
}

var definitions = instructions.GetDefinitions()

// Decode the instruction at address. Memory is read with the same wrapping
// rules as the CPU so an instruction at the top of memory takes its operand
// from the bottom of memory.
func Decode(mem cpubus.Memory, address uint16) *Entry {
	e := &Entry{
		Address: fmt.Sprintf("0x%04x", address),
	}

	e.Result.Address = address
	e.Result.OpCode = mem.Read(address)
	e.Result.Defn = definitions[e.Result.OpCode]
	e.Result.ByteCount = 1

	if e.Result.Defn == nil {
		e.Bytecode = fmt.Sprintf("%02x", e.Result.OpCode)
		e.Operator = unknownOperator
		e.Operand = fmt.Sprintf("($%02x)", e.Result.OpCode)
		return e
	}

	bytecode := []string{fmt.Sprintf("%02x", e.Result.OpCode)}
	for i := 1; i < e.Result.Defn.Bytes; i++ {
		b := mem.Read(address + uint16(i))
		bytecode = append(bytecode, fmt.Sprintf("%02x", b))
		e.Result.InstructionData |= uint16(b) << (8 * (i - 1))
		e.Result.ByteCount++
	}
	e.Result.Halted = e.Result.Defn.Effect == instructions.Halt

	e.Bytecode = strings.Join(bytecode, " ")
	e.Operator = e.Result.Defn.Operator.String()

	switch e.Result.Defn.AddressingMode {
	case instructions.Immediate:
		e.Operand = fmt.Sprintf("#$%02x", e.Result.InstructionData)
	case instructions.Absolute:
		e.Operand = fmt.Sprintf("$%04x", e.Result.InstructionData)
	}

	return e
}
