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
package cpu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stepper6502/stepper6502/hardware/cpu/execution"
	"github.com/stepper6502/stepper6502/hardware/cpu/instructions"
	"github.com/stepper6502/stepper6502/hardware/cpu/registers"
	"github.com/stepper6502/stepper6502/hardware/memory/cpubus"
	"github.com/stepper6502/stepper6502/logger"
)

// register values after a call to Reset()
const (
	resetSP     = uint8(0xfd)
	resetStatus = uint8(0x24)
)

// CPU implements the processor. Register logic is implemented by the types
// in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// the result of the most recent call to Step(). in the case of an
	// unsupported opcode the Address and OpCode fields are valid but the
	// result will not be Final
	LastResult execution.Result

	// the cpu has executed a BRK instruction. requires a Reset()
	Halted bool

	// whether the cpu should log a diagnostic entry for every instruction
	// that produces a result
	Diagnostics bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. Note
// that the CPU will not be in a defined state until Reset() is called.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(0),
		instructions: instructions.GetDefinitions(),
	}
}

// Snapshot creates a copy of the CPU in its current state. The copy refers to
// the same memory as the original.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

// AllowLogging implements the logger.Permission interface.
func (mc *CPU) AllowLogging() bool {
	return mc.Diagnostics
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the PC with the address stored
// at the reset vector. The reset vector must have been written to memory
// before calling this function.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Halted = false

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(resetSP)
	mc.Status.Load(resetStatus)

	mc.LoadPCIndirect(cpubus.Reset)
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) {
	lo := mc.mem.Read(indirectAddress)
	hi := mc.mem.Read(indirectAddress + 1)
	mc.PC.Load((uint16(hi) << 8) | uint16(lo))
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

// FetchByte returns the byte at the PC and then advances the PC by one. This
// is the only way the PC is advanced during the decoding of an instruction.
func (mc *CPU) FetchByte() uint8 {
	v := mc.mem.Read(mc.PC.Address())

	// ignoring if program counter cycling
	mc.PC.Add(1)

	// bump the number of bytes read during instruction decode
	mc.LastResult.ByteCount++

	return v
}

// FetchWord reads two bytes with FetchByte(). The first byte is the low byte
// of the returned value.
func (mc *CPU) FetchWord() uint16 {
	lo := mc.FetchByte()
	hi := mc.FetchByte()
	return (uint16(hi) << 8) | uint16(lo)
}

// UnknownOpcode is returned (wrapped) by Step() when the opcode at the PC is
// not supported. Use errors.Is() to test for it.
var UnknownOpcode = errors.New("cpu: unknown opcode")

// Step executes the instruction at the PC. The basic process when executing an
// instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//  4. update the Zero and Sign flags if the instruction produced a result
//
// Returns false if the instruction halted the CPU. Once halted, Step() will do
// nothing and return false until the CPU is reset.
//
// An error is returned if the opcode is not supported. The CPU is left
// unchanged in this case.
func (mc *CPU) Step() (bool, error) {
	if mc.Halted {
		return false, nil
	}

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// look up the definition before fetching so that an unsupported opcode
	// leaves the PC untouched
	opcode := mc.mem.Read(mc.PC.Address())
	mc.LastResult.OpCode = opcode

	defn := mc.instructions[opcode]
	if defn == nil {
		return false, fmt.Errorf("%w (%#02x) at (%#04x)", UnknownOpcode, opcode, mc.LastResult.Address)
	}
	mc.LastResult.Defn = defn

	// consume the opcode
	_ = mc.FetchByte()

	// operands are read through the PC in all supported addressing modes.
	// for immediate mode the operand is the value to use and for absolute
	// mode it is an address
	switch defn.AddressingMode {
	case instructions.Implied:
	case instructions.Immediate:
		mc.LastResult.InstructionData = uint16(mc.FetchByte())
	case instructions.Absolute:
		mc.LastResult.InstructionData = mc.FetchWord()
	}

	value := uint8(mc.LastResult.InstructionData)

	// the register holding the result of the instruction. remains nil for
	// instructions that do not produce a result
	var result *registers.Register

	switch defn.Operator {
	case instructions.Lda:
		mc.A.Load(value)
		result = &mc.A

	case instructions.Ldx:
		mc.X.Load(value)
		result = &mc.X

	case instructions.Ldy:
		mc.Y.Load(value)
		result = &mc.Y

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		result = &mc.X

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		result = &mc.A

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		result = &mc.Y

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		result = &mc.A

	case instructions.Inx:
		mc.X.Add(1, false)
		result = &mc.X

	case instructions.Dex:
		mc.X.Add(0xff, false)
		result = &mc.X

	case instructions.Iny:
		mc.Y.Add(1, false)
		result = &mc.Y

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		result = &mc.Y

	case instructions.Jsr:
		// the PC is now pointing at the instruction following the JSR. the
		// address pushed is of the last byte of the JSR instruction. RTS adds
		// one to the address it pulls from the stack to compensate
		mc.PushWord(mc.PC.Address() - 1)
		mc.PC.Load(mc.LastResult.InstructionData)

	case instructions.Rts:
		mc.PC.Load(mc.PopWord())
		mc.PC.Add(1)

	case instructions.Brk:
		mc.Halted = true
		mc.LastResult.Halted = true

	default:
		return false, fmt.Errorf("cpu: unimplemented operator (%s)", defn.Operator)
	}

	if result != nil {
		mc.Status.SetZN(result.Value())
		logger.Logf(mc, "CPU", "pc = 0x%04X and %s = %02X", mc.PC.Address(), strings.ToLower(result.Label()), result.Value())
	}

	mc.LastResult.Final = true

	return !mc.Halted, nil
}
