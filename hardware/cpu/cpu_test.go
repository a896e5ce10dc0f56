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
package cpu_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stepper6502/stepper6502/hardware/cpu"
	"github.com/stepper6502/stepper6502/hardware/memory"
	"github.com/stepper6502/stepper6502/hardware/memory/cpubus"
	"github.com/stepper6502/stepper6502/logger"
	"github.com/stepper6502/stepper6502/test"
)

func TestReset(t *testing.T) {
	mem := memory.NewMemory()
	mem.WriteWord(cpubus.Reset, 0x8000)

	mc := cpu.NewCPU(mem)

	// put the registers into an arbitrary state before reset
	mc.A.Load(0x11)
	mc.X.Load(0x22)
	mc.Y.Load(0x33)
	mc.SP.Load(0x44)
	mc.Status.Load(0xff)
	mc.PC.Load(0x1234)

	mc.Reset()
	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectEquality(t, mc.X.Value(), 0)
	test.ExpectEquality(t, mc.Y.Value(), 0)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.Value(), 0x24)
	test.ExpectEquality(t, mc.PC.Address(), 0x8000)
	test.ExpectEquality(t, mc.Halted, false)
	test.ExpectEquality(t, mc.String(), "PC=8000 A=00 X=00 Y=00 SP=fd SR=nv_bdIzc")
}

func TestFetch(t *testing.T) {
	mc, mem := newTestCPU(0x8000)
	putInstructions(mem, 0x8000, 0x20, 0x00, 0x90)

	test.ExpectEquality(t, mc.FetchByte(), 0x20)
	test.ExpectEquality(t, mc.PC.Address(), 0x8001)
	test.ExpectEquality(t, mc.FetchWord(), 0x9000)
	test.ExpectEquality(t, mc.PC.Address(), 0x8003)

	// fetching wraps around the top of memory
	mem.Write(0xffff, 0x34)
	mem.Write(0x0000, 0x12)
	mc.LoadPC(0xffff)
	test.ExpectEquality(t, mc.FetchWord(), 0x1234)
	test.ExpectEquality(t, mc.PC.Address(), 0x0001)
}

func TestLDAImmediate(t *testing.T) {
	mc, mem := newTestCPU(0x8000)
	putInstructions(mem, 0x8000, 0xa9, 0x10, 0x00)

	test.ExpectEquality(t, step(t, mc), true)
	test.ExpectEquality(t, mc.A.Value(), 0x10)
	test.ExpectEquality(t, mc.PC.Address(), 0x8002)
	test.ExpectEquality(t, mc.LastResult.InstructionData, 0x10)

	test.ExpectEquality(t, step(t, mc), false)
	test.ExpectEquality(t, mc.Halted, true)
	test.ExpectEquality(t, mc.LastResult.Halted, true)
	test.ExpectEquality(t, mc.Status.Zero, false)
	test.ExpectEquality(t, mc.Status.Sign, false)
}

func TestLoadFlags(t *testing.T) {
	mc, mem := newTestCPU(0x8000)

	putInstructions(mem, 0x8000, 0xa9, 0x00, 0x00)
	run(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.Zero, true)
	test.ExpectEquality(t, mc.Status.Sign, false)

	putInstructions(mem, 0x8000, 0xa9, 0x80, 0x00)
	mc.Reset()
	run(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	test.ExpectEquality(t, mc.Status.Zero, false)
	test.ExpectEquality(t, mc.Status.Sign, true)

	// LDX and LDY
	putInstructions(mem, 0x8000, 0xa2, 0x00, 0xa0, 0xff, 0x00)
	mc.Reset()
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.Zero, true)
	test.ExpectEquality(t, mc.Status.Sign, false)
	step(t, mc)
	test.ExpectEquality(t, mc.Y.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.Zero, false)
	test.ExpectEquality(t, mc.Status.Sign, true)
}

func TestTransfers(t *testing.T) {
	mc, mem := newTestCPU(0x8000)

	// LDA #$81; TAX; LDA #$00; TXA; TAY; LDA #$00; TYA; BRK
	putInstructions(mem, 0x8000, 0xa9, 0x81, 0xaa, 0xa9, 0x00, 0x8a, 0xa8, 0xa9, 0x00, 0x98, 0x00)

	step(t, mc) // LDA #$81
	step(t, mc) // TAX
	test.ExpectEquality(t, mc.X.Value(), 0x81)
	test.ExpectEquality(t, mc.Status.String(), "Nv_bdIzc")

	step(t, mc) // LDA #$00
	test.ExpectEquality(t, mc.Status.String(), "nv_bdIZc")

	step(t, mc) // TXA
	test.ExpectEquality(t, mc.A.Value(), 0x81)
	test.ExpectEquality(t, mc.Status.String(), "Nv_bdIzc")

	step(t, mc) // TAY
	test.ExpectEquality(t, mc.Y.Value(), 0x81)

	step(t, mc) // LDA #$00
	step(t, mc) // TYA
	test.ExpectEquality(t, mc.A.Value(), 0x81)
	test.ExpectEquality(t, mc.Status.String(), "Nv_bdIzc")

	test.ExpectEquality(t, step(t, mc), false)
}

func TestIncrementDecrement(t *testing.T) {
	type incdec struct {
		opcode   uint8
		initial  uint8
		expected uint8
	}

	mc, mem := newTestCPU(0x8000)

	for _, x := range []incdec{
		{opcode: 0xe8, initial: 0xff, expected: 0x00}, // INX
		{opcode: 0xe8, initial: 0x7f, expected: 0x80},
		{opcode: 0xe8, initial: 0xfe, expected: 0xff},
		{opcode: 0xca, initial: 0x00, expected: 0xff}, // DEX
		{opcode: 0xca, initial: 0x01, expected: 0x00},
		{opcode: 0xca, initial: 0x80, expected: 0x7f},
	} {
		putInstructions(mem, 0x8000, 0xa2, x.initial, x.opcode, 0x00)
		mc.Reset()
		run(t, mc)
		test.ExpectEquality(t, mc.X.Value(), x.expected, x.opcode, x.initial)
		test.ExpectEquality(t, mc.Status.Zero, x.expected == 0, x.opcode, x.initial)
		test.ExpectEquality(t, mc.Status.Sign, x.expected&0x80 == 0x80, x.opcode, x.initial)
	}

	for _, y := range []incdec{
		{opcode: 0xc8, initial: 0xff, expected: 0x00}, // INY
		{opcode: 0xc8, initial: 0x7f, expected: 0x80},
		{opcode: 0x88, initial: 0x00, expected: 0xff}, // DEY
		{opcode: 0x88, initial: 0x01, expected: 0x00},
	} {
		putInstructions(mem, 0x8000, 0xa0, y.initial, y.opcode, 0x00)
		mc.Reset()
		run(t, mc)
		test.ExpectEquality(t, mc.Y.Value(), y.expected, y.opcode, y.initial)
		test.ExpectEquality(t, mc.Status.Zero, y.expected == 0, y.opcode, y.initial)
		test.ExpectEquality(t, mc.Status.Sign, y.expected&0x80 == 0x80, y.opcode, y.initial)
	}
}

// every value of X and Y survives a full cycle of increments
func TestIncrementWrapsFully(t *testing.T) {
	mc, mem := newTestCPU(0x8000)

	origin := uint16(0x8000)
	for i := 0; i < 256; i++ {
		origin = putInstructions(mem, origin, 0xe8, 0xc8)
	}
	putInstructions(mem, origin, 0x00)

	run(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0)
	test.ExpectEquality(t, mc.Y.Value(), 0)
	test.ExpectEquality(t, mc.Status.Zero, true)
}

func TestSubroutine(t *testing.T) {
	mc, mem := newTestCPU(0x8000)

	// JSR $9000; LDA #$01; BRK
	putInstructions(mem, 0x8000, 0x20, 0x00, 0x90, 0xa9, 0x01, 0x00)

	// LDA #$10; RTS
	putInstructions(mem, 0x9000, 0xa9, 0x10, 0x60)

	step(t, mc) // JSR
	test.ExpectEquality(t, mc.PC.Address(), 0x9000)
	test.ExpectEquality(t, mc.SP.Value(), 0xfb)

	// return address is the last byte of the JSR instruction
	test.ExpectEquality(t, mem.Read(0x01fd), 0x80)
	test.ExpectEquality(t, mem.Read(0x01fc), 0x02)
	test.ExpectEquality(t, mc.PredictRTS(), 0x8003)

	step(t, mc) // LDA #$10
	test.ExpectEquality(t, mc.A.Value(), 0x10)

	step(t, mc) // RTS
	test.ExpectEquality(t, mc.PC.Address(), 0x8003)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)

	run(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x01)
}

// a JSR at any address returns to the instruction immediately following it
func TestSubroutineReturnAddress(t *testing.T) {
	mc, mem := newTestCPU(0x8000)

	// LDA #$10; RTS
	putInstructions(mem, 0x9000, 0xa9, 0x10, 0x60)

	for _, a := range []uint16{0x0000, 0x0200, 0x12ff, 0x80fe, 0x8000, 0xc0de, 0xfff0, 0xfffe} {
		putInstructions(mem, a, 0x20, 0x00, 0x90)
		mc.Reset()
		mc.LoadPC(a)

		step(t, mc) // JSR
		test.ExpectEquality(t, mc.PC.Address(), 0x9000, a)
		step(t, mc) // LDA
		step(t, mc) // RTS
		test.ExpectEquality(t, mc.PC.Address(), a+3, a)
		test.ExpectEquality(t, mc.SP.Value(), 0xfd, a)
	}
}

func TestNestedSubroutines(t *testing.T) {
	mc, mem := newTestCPU(0x8000)

	// JSR $9000; INY; BRK
	putInstructions(mem, 0x8000, 0x20, 0x00, 0x90, 0xc8, 0x00)

	// INX; JSR $a000; INX; RTS
	putInstructions(mem, 0x9000, 0xe8, 0x20, 0x00, 0xa0, 0xe8, 0x60)

	// INX; RTS
	putInstructions(mem, 0xa000, 0xe8, 0x60)

	run(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 3)
	test.ExpectEquality(t, mc.Y.Value(), 1)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.PC.Address(), 0x8005)
}

// instructions without a result leave the status register alone
func TestFlagsUnchanged(t *testing.T) {
	mc, mem := newTestCPU(0x8000)

	// JSR $9000; BRK
	putInstructions(mem, 0x8000, 0x20, 0x00, 0x90, 0x00)

	// RTS
	putInstructions(mem, 0x9000, 0x60)

	for _, status := range []uint8{0x00, 0x24, 0x82, 0xff} {
		mc.Reset()
		mc.Status.Load(status)
		run(t, mc)
		test.ExpectEquality(t, mc.Status.Value(), status)
	}
}

func TestUnknownOpcode(t *testing.T) {
	mc, mem := newTestCPU(0x8000)

	// LDX #$05; <unknown>
	putInstructions(mem, 0x8000, 0xa2, 0x05, 0xff)

	step(t, mc)
	before := mc.Snapshot()

	cont, err := mc.Step()
	test.ExpectEquality(t, cont, false)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, cpu.UnknownOpcode))
	test.ExpectEquality(t, err.Error(), "cpu: unknown opcode (0xff) at (0x8002)")

	// the fault is identified in the last result
	test.ExpectEquality(t, mc.LastResult.OpCode, 0xff)
	test.ExpectEquality(t, mc.LastResult.Address, 0x8002)
	test.ExpectEquality(t, mc.LastResult.Final, false)
	test.ExpectFailure(t, mc.LastResult.IsValid())

	// no registers have been changed
	test.ExpectEquality(t, mc.PC, before.PC)
	test.ExpectEquality(t, mc.A, before.A)
	test.ExpectEquality(t, mc.X, before.X)
	test.ExpectEquality(t, mc.Y, before.Y)
	test.ExpectEquality(t, mc.SP, before.SP)
	test.ExpectEquality(t, mc.Status, before.Status)

	// stepping again produces the same fault
	_, err = mc.Step()
	test.ExpectSuccess(t, errors.Is(err, cpu.UnknownOpcode))
	test.ExpectEquality(t, mc.PC.Address(), 0x8002)
}

func TestHalted(t *testing.T) {
	mc, mem := newTestCPU(0x8000)

	// BRK; INX
	putInstructions(mem, 0x8000, 0x00, 0xe8)

	test.ExpectEquality(t, step(t, mc), false)
	test.ExpectEquality(t, mc.PC.Address(), 0x8001)

	// further steps do nothing
	cont, err := mc.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cont, false)
	test.ExpectEquality(t, mc.PC.Address(), 0x8001)
	test.ExpectEquality(t, mc.X.Value(), 0)

	// reset clears the halted state
	mc.Reset()
	test.ExpectEquality(t, mc.Halted, false)
	test.ExpectEquality(t, step(t, mc), false)
}

func TestDiagnostics(t *testing.T) {
	mc, mem := newTestCPU(0x8000)

	// LDA #$10; TAX; INX; JSR $9000
	putInstructions(mem, 0x8000, 0xa9, 0x10, 0xaa, 0xe8, 0x20, 0x00, 0x90)

	// BRK
	putInstructions(mem, 0x9000, 0x00)

	// diagnostics are off by default
	logger.Clear()
	step(t, mc)
	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")

	mc.Diagnostics = true
	run(t, mc)

	w.Reset()
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "CPU: pc = 0x8003 and x = 10\nCPU: pc = 0x8004 and x = 11\n")
	logger.Clear()
}
