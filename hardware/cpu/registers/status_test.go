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
package registers_test

import (
	"testing"

	"github.com/stepper6502/stepper6502/hardware/cpu/registers"
	"github.com/stepper6502/stepper6502/test"
)

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister(0x24)
	test.ExpectEquality(t, sr.Value(), 0x24)
	test.ExpectEquality(t, sr.String(), "nv_bdIzc")
	test.ExpectEquality(t, sr.Label(), "SR")

	sr.Load(0xff)
	test.ExpectEquality(t, sr.String(), "NV_BDIZC")
	sr.Load(0x00)
	test.ExpectEquality(t, sr.String(), "nv-bdizc")
}

// every value loaded into the status register must be returned unchanged
func TestStatusRegisterPassThrough(t *testing.T) {
	var sr registers.StatusRegister
	for v := 0; v <= 0xff; v++ {
		sr.Load(uint8(v))
		test.ExpectEquality(t, sr.Value(), uint8(v))
	}
}

func TestSetZN(t *testing.T) {
	var sr registers.StatusRegister

	// test every result value against every possible prior status
	for prior := 0; prior <= 0xff; prior++ {
		for v := 0; v <= 0xff; v++ {
			sr.Load(uint8(prior))
			sr.SetZN(uint8(v))

			if !test.ExpectEquality(t, sr.Zero, v == 0, prior, v) {
				return
			}
			if !test.ExpectEquality(t, sr.Sign, v&0x80 != 0, prior, v) {
				return
			}

			// no other bits have changed
			mask := ^(registers.Zero | registers.Sign)
			if !test.ExpectEquality(t, sr.Value()&mask, uint8(prior)&mask, prior, v) {
				return
			}
		}
	}
}
