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
package instructions

// Operator identifies the operation performed by an instruction. More than one
// opcode may share an Operator if the instruction supports more than one
// addressing mode.
type Operator int

// List of supported operators.
const (
	Nop Operator = iota
	Lda
	Ldx
	Ldy
	Tax
	Txa
	Tay
	Tya
	Inx
	Dex
	Iny
	Dey
	Jsr
	Rts
	Brk
)

func (op Operator) String() string {
	switch op {
	case Nop:
		return "NOP"
	case Lda:
		return "LDA"
	case Ldx:
		return "LDX"
	case Ldy:
		return "LDY"
	case Tax:
		return "TAX"
	case Txa:
		return "TXA"
	case Tay:
		return "TAY"
	case Tya:
		return "TYA"
	case Inx:
		return "INX"
	case Dex:
		return "DEX"
	case Iny:
		return "INY"
	case Dey:
		return "DEY"
	case Jsr:
		return "JSR"
	case Rts:
		return "RTS"
	case Brk:
		return "BRK"
	}
	return "???"
}
