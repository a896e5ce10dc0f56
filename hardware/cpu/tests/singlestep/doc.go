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
// Package singlestep contains single instruction tests for the CPU. Each
// test sets the registers and memory to an initial state, executes one
// instruction and compares the registers and memory with the expected final
// state.
//
// The tests are stored in the testdata directory with one JSON file per
// opcode. The format follows the format of the SingleStepTests project:
//
// https://github.com/SingleStepTests/65x02
//
// Bus cycle information is not used and is not present in the files.
package singlestep
