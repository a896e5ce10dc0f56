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
// Package registers implements the three types of register found in the CPU:
// the 8bit Register used for the A, X and Y registers; the 16bit
// ProgramCounter; and the StackPointer. The StatusRegister is a special case
// and stores the processor flags.
//
// All arithmetic on register values wraps. Adding one to a Register with a
// value of 0xff results in 0x00. Likewise for the ProgramCounter at 0xffff.
// There is no failure condition.
//
// The status register flags are not updated automatically by the registers.
// The CPU must update the flags explicitly. For instance:
//
//	x.Add(1, false)
//	sr.SetZN(x.Value())
//
// In this case, if x was previously 0xff then the Zero flag will be set and
// the Sign flag will be cleared.
package registers
