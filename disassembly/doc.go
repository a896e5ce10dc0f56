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
// Package disassembly decodes machine code into a human readable form.
//
// Disassembly is linear. Every byte between the start and end addresses is
// assumed to be the start of an instruction or the operand of an instruction
// decoded earlier in the sequence. Bytes that are not a supported opcode are
// shown as unknown and the disassembly continues from the next byte.
//
// For quick disassemblies of a program the FromProgram() function can be used.
// The STEP mode of the command line tool uses Decode() to show the next
// instruction to be executed.
package disassembly
