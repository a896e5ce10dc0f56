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
// Package assembler is a two pass assembler for the instructions supported
// by the CPU. The result of assembly is a programs.Program, ready to be
// attached to a machine.
//
// Source is line based. A semicolon begins a comment that runs to the end
// of the line. A line may start with any number of labels, each followed by
// a colon, and then contain one instruction or directive:
//
//	        .org $8000
//	        .equ COUNT 3
//	start:  ldx #COUNT
//	        jsr sub
//	        brk
//	sub:    lda #COUNT * 2
//	        rts
//	        .entry start
//
// The directives are:
//
//	.org expr            following code is placed at expr
//	.equ NAME expr       define a constant
//	.byte expr, ...      one byte per expression
//	.word expr, ...      two bytes (little-endian) per expression
//	.entry expr          the address written to the reset vector
//
// Code before the first .org directive is placed at 0x8000. If there is no
// .entry directive then the entry address is the address of the first byte
// of the program.
//
// Numbers prefixed with $ are hexadecimal. Operands and directive arguments
// are expressions evaluated by Starlark, with labels and constants available
// as predeclared names. The name PC is the address of the current line and
// the functions lo() and hi() return the low and high byte of a value. The
// 6502 operators < and > can be used as shorthand for lo() and hi() at the
// start of an immediate operand:
//
//	lda #<table
//	ldx #>table
//
// The first pass finds the address of every label. The size of every
// instruction is known from its mnemonic so labels can be used before they
// are defined in instruction operands and in the .byte, .word and .entry
// directives. The arguments to .org and .equ must only refer to labels and
// constants defined on earlier lines.
package assembler
