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
	"testing"

	"github.com/stepper6502/stepper6502/hardware/cpu"
	"github.com/stepper6502/stepper6502/hardware/memory"
	"github.com/stepper6502/stepper6502/hardware/memory/cpubus"
	"github.com/stepper6502/stepper6502/test"
)

// maximum number of instructions executed by run() before the test fails
const runLimit = 1000

// newTestCPU creates a CPU with its reset vector pointing to origin. The
// CPU is reset before returning.
func newTestCPU(origin uint16) (*cpu.CPU, *memory.Memory) {
	mem := memory.NewMemory()
	mem.WriteWord(cpubus.Reset, origin)
	mc := cpu.NewCPU(mem)
	mc.Reset()
	return mc, mem
}

// putInstructions writes bytes to memory at origin and returns the address
// following the last byte
func putInstructions(mem *memory.Memory, origin uint16, bytes ...uint8) uint16 {
	mem.Load(origin, bytes)
	return origin + uint16(len(bytes))
}

// step executes a single instruction and demands that it succeeds and that
// the result is valid. returns the continue value of cpu.Step()
func step(t *testing.T, mc *cpu.CPU) bool {
	t.Helper()
	cont, err := mc.Step()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mc.LastResult.IsValid())
	return cont
}

// run steps the CPU until it halts. the test fails if the CPU does not halt
// within runLimit instructions
func run(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	for i := 0; i < runLimit; i++ {
		if !step(t, mc) {
			return
		}
	}
	t.Fatalf("cpu did not halt after %d instructions", runLimit)
}
