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
package instructions_test

import (
	"testing"

	"github.com/stepper6502/stepper6502/hardware/cpu/instructions"
	"github.com/stepper6502/stepper6502/test"
)

func TestDefinitionsTable(t *testing.T) {
	table := instructions.GetDefinitions()
	test.DemandEquality(t, len(table), 256)

	var supported int
	for opcode, defn := range table {
		if defn == nil {
			continue
		}
		supported++

		// definition is stored at the index of its opcode
		test.ExpectEquality(t, int(defn.OpCode), opcode)

		// byte count agrees with the addressing mode
		test.ExpectEquality(t, defn.Bytes, 1+defn.AddressingMode.OperandBytes(), defn.Operator)
	}
	test.ExpectEquality(t, supported, 14)
}

func TestUnsupportedOpcodes(t *testing.T) {
	table := instructions.GetDefinitions()
	for _, opcode := range []uint8{0xff, 0x01, 0x4c, 0xea, 0x40} {
		test.ExpectSuccess(t, table[opcode] == nil, opcode)
	}
}

func TestOperators(t *testing.T) {
	table := instructions.GetDefinitions()

	expected := map[uint8]string{
		0xa9: "LDA", 0xa2: "LDX", 0xa0: "LDY",
		0xaa: "TAX", 0x8a: "TXA", 0xa8: "TAY", 0x98: "TYA",
		0xe8: "INX", 0xca: "DEX", 0xc8: "INY", 0x88: "DEY",
		0x20: "JSR", 0x60: "RTS", 0x00: "BRK",
	}

	for opcode, mnemonic := range expected {
		defn := table[opcode]
		if test.ExpectSuccess(t, defn != nil, mnemonic) {
			test.ExpectEquality(t, defn.Operator.String(), mnemonic)
		}
	}
}

func TestResultCategories(t *testing.T) {
	table := instructions.GetDefinitions()
	test.ExpectEquality(t, table[0xa9].Effect.HasResult(), true)
	test.ExpectEquality(t, table[0xe8].Effect.HasResult(), true)
	test.ExpectEquality(t, table[0x20].Effect.HasResult(), false)
	test.ExpectEquality(t, table[0x60].Effect.HasResult(), false)
	test.ExpectEquality(t, table[0x00].Effect.HasResult(), false)
}

// the table returned by GetDefinitions() is a new copy every time
func TestDefinitionsAreCopies(t *testing.T) {
	a := instructions.GetDefinitions()
	b := instructions.GetDefinitions()
	a[0xa9].Bytes = 99
	test.ExpectEquality(t, b[0xa9].Bytes, 2)
}
