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
// Package instructions defines the instruction set understood by the CPU. Each
// supported opcode has exactly one Definition. Opcodes without a Definition
// are not supported and will cause the CPU to fault.
//
// The table returned by GetDefinitions() is indexed by opcode so decoding an
// instruction is a single lookup:
//
//	defn := table[opcode]
//	if defn == nil {
//		// unsupported opcode
//	}
//
// Adding support for a new instruction means adding an Operator, an entry in
// the definitions table and a case in the CPU's execution switch.
package instructions
