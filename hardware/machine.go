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
package hardware

import (
	"github.com/stepper6502/stepper6502/hardware/cpu"
	"github.com/stepper6502/stepper6502/hardware/memory"
	"github.com/stepper6502/stepper6502/logger"
	"github.com/stepper6502/stepper6502/programs"
)

// Machine is the main container for the emulated components.
type Machine struct {
	CPU *cpu.CPU
	Mem *memory.Memory

	// the most recently attached program
	Program programs.Program

	// number of instructions executed since the last reset
	Instructions int
}

// NewMachine creates a new Machine with cleared memory. The CPU will not be
// in a defined state until a program is attached or Reset() is called.
func NewMachine() *Machine {
	m := &Machine{
		Mem: memory.NewMemory(),
	}
	m.CPU = cpu.NewCPU(m.Mem)
	return m
}

// AttachProgram loads the program into memory and resets the machine.
func (m *Machine) AttachProgram(p programs.Program) {
	m.Program = p
	p.Load(m.Mem)
	logger.Logf(logger.Allow, "machine", "attached %s", p)
	m.Reset()
}

// Reset the CPU. The PC is loaded from the reset vector. Memory is not
// changed.
func (m *Machine) Reset() {
	m.CPU.Reset()
	m.Instructions = 0
}

// Step the machine one CPU instruction. Returns false if the CPU has halted.
func (m *Machine) Step() (bool, error) {
	if m.CPU.Halted {
		return false, nil
	}
	cont, err := m.CPU.Step()
	if err == nil {
		m.Instructions++
	}
	return cont, err
}
