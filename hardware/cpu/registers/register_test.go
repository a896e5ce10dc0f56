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

func TestRegister(t *testing.T) {
	var carry, overflow bool

	// initialisation
	r8 := registers.NewRegister(0, "test")
	test.ExpectEquality(t, r8.IsZero(), true)
	test.ExpectEquality(t, r8.Value(), 0)
	test.ExpectEquality(t, r8.Label(), "test")

	// loading & addition
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), 127)
	test.ExpectEquality(t, r8.IsNegative(), false)
	r8.Add(2, false)
	test.ExpectEquality(t, r8.Value(), 129)
	test.ExpectEquality(t, r8.IsNegative(), true)
	test.ExpectEquality(t, r8.String(), "81")

	// addition boundary
	r8.Load(255)
	test.ExpectEquality(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, false)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)
	test.ExpectEquality(t, r8.Value(), 0)

	// addition boundary with carry
	r8.Load(254)
	carry, overflow = r8.Add(1, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.Value(), 0)

	// signed overflow
	r8.Load(0x7f)
	carry, overflow = r8.Add(1, false)
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, overflow, true)
	test.ExpectEquality(t, r8.Value(), 0x80)

	// decrement by adding 0xff
	r8.Load(1)
	r8.Add(0xff, false)
	test.ExpectEquality(t, r8.Value(), 0)
	r8.Add(0xff, false)
	test.ExpectEquality(t, r8.Value(), 0xff)

	// address context
	test.ExpectEquality(t, r8.Address(), 0x00ff)
}

func TestProgramCounter(t *testing.T) {
	// initialisation
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)

	// loading & addition
	pc.Load(127)
	test.ExpectEquality(t, pc.Address(), 127)
	wrapped := pc.Add(2)
	test.ExpectEquality(t, pc.Address(), 129)
	test.ExpectEquality(t, wrapped, false)

	// wrapping
	pc.Load(0xffff)
	wrapped = pc.Add(1)
	test.ExpectEquality(t, pc.Address(), 0x0000)
	test.ExpectEquality(t, wrapped, true)

	// subtraction by adding the two's complement
	pc.Load(0x8003)
	pc.Add(0xffff)
	test.ExpectEquality(t, pc.Address(), 0x8002)

	test.ExpectEquality(t, pc.String(), "8002")
	test.ExpectEquality(t, pc.Label(), "PC")
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0xfd)
	test.ExpectEquality(t, sp.Value(), 0xfd)
	test.ExpectEquality(t, sp.Address(), 0x01fd)
	test.ExpectEquality(t, sp.Label(), "SP")

	sp.Decrement()
	test.ExpectEquality(t, sp.Address(), 0x01fc)
	sp.Increment()
	test.ExpectEquality(t, sp.Address(), 0x01fd)

	// wrapping stays inside the stack page
	sp.Load(0x00)
	sp.Decrement()
	test.ExpectEquality(t, sp.Value(), 0xff)
	test.ExpectEquality(t, sp.Address(), 0x01ff)
	sp.Increment()
	test.ExpectEquality(t, sp.Value(), 0x00)
	test.ExpectEquality(t, sp.Address(), 0x0100)
}
