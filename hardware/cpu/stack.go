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
package cpu

import "github.com/stepper6502/stepper6502/hardware/memory/cpubus"

// PushByte writes the value to the stack and then decrements the stack
// pointer.
func (mc *CPU) PushByte(v uint8) {
	mc.mem.Write(mc.SP.Address(), v)
	mc.SP.Decrement()
}

// PopByte increments the stack pointer and then reads the value from the
// stack.
func (mc *CPU) PopByte() uint8 {
	mc.SP.Increment()
	return mc.mem.Read(mc.SP.Address())
}

// PushWord pushes the high byte of the value followed by the low byte.
func (mc *CPU) PushWord(v uint16) {
	mc.PushByte(uint8(v >> 8))
	mc.PushByte(uint8(v))
}

// PopWord pops the low byte followed by the high byte. The reverse of
// PushWord().
func (mc *CPU) PopWord() uint16 {
	lo := mc.PopByte()
	hi := mc.PopByte()
	return (uint16(hi) << 8) | uint16(lo)
}

// PredictRTS returns the PC address that would result if RTS was run at the
// current moment. The stack pointer is not changed.
func (mc *CPU) PredictRTS() uint16 {
	sp := mc.SP.Value()
	lo := mc.mem.Read(cpubus.StackOrigin | uint16(sp+1))
	hi := mc.mem.Read(cpubus.StackOrigin | uint16(sp+2))
	return ((uint16(hi) << 8) | uint16(lo)) + 1
}
