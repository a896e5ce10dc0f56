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
// Package cpu emulates an 8bit accumulator based processor following the
// conventions of the 6502. Only a subset of the 6502 instruction set is
// supported (see the instructions package for the list) and only the
// immediate and absolute addressing modes are implemented.
//
// The CPU is created with NewCPU() and is given an implementation of the
// cpubus.Memory interface. The memory must contain a reset vector at
// cpubus.Reset before calling Reset(), which loads the program counter from
// the vector:
//
//	mem := memory.NewMemory()
//	mem.Load(0x8000, []uint8{0xa9, 0x10, 0x00})
//	mem.WriteWord(cpubus.Reset, 0x8000)
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//
// The program is then run one instruction at a time with the Step() function:
//
//	for {
//		cont, err := mc.Step()
//		if err != nil {
//			return err
//		}
//		if !cont {
//			break
//		}
//	}
//
// Step() returns false when a BRK instruction has been executed. An opcode
// that is not supported causes Step() to return an error that wraps the
// UnknownOpcode sentinel error. In that case, no register of the CPU has been
// changed, including the program counter.
//
// Register arithmetic always wraps. Neither an overflowing register nor a
// stack pointer that moves beyond the stack page is an error.
//
// The Zero and Sign flags in the status register are updated after every
// instruction that produces a result (loads, transfers, increments and
// decrements). The other flags are never changed by an instruction.
package cpu
