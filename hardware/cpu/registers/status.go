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
package registers

import (
	"strings"
)

// list of status register bits.
const (
	Carry            = uint8(0x01)
	Zero             = uint8(0x02)
	InterruptDisable = uint8(0x04)
	DecimalMode      = uint8(0x08)
	Break            = uint8(0x10)
	Unused           = uint8(0x20)
	Overflow         = uint8(0x40)
	Sign             = uint8(0x80)
)

// StatusRegister is the special purpose register that stores the flags of the
// CPU.
//
// Only the Zero and Sign flags are changed by instructions. The other bits
// are stored so that whatever is loaded into the register is returned intact
// by Value().
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Unused           bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister(val uint8) StatusRegister {
	var sr StatusRegister
	sr.Load(val)
	return sr
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the flags in the conventional order. An upper case letter
// indicates a set flag and a lower case letter indicates a clear flag. The
// unused bit is shown as a hyphen when clear and as an underscore when set.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(b bool, on rune, off rune) {
		if b {
			s.WriteRune(on)
		} else {
			s.WriteRune(off)
		}
	}

	flag(sr.Sign, 'N', 'n')
	flag(sr.Overflow, 'V', 'v')
	flag(sr.Unused, '_', '-')
	flag(sr.Break, 'B', 'b')
	flag(sr.DecimalMode, 'D', 'd')
	flag(sr.InterruptDisable, 'I', 'i')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')

	return s.String()
}

// SetZN updates the Zero and Sign flags for the result of an instruction.
// The Zero flag is set if and only if val is zero. The Sign flag is set if
// and only if bit 7 of val is set. No other flags are changed.
func (sr *StatusRegister) SetZN(val uint8) {
	sr.Zero = val == 0
	sr.Sign = val&0x80 == 0x80
}

// Value converts the StatusRegister struct into a uint8 value.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= Sign
	}
	if sr.Overflow {
		v |= Overflow
	}
	if sr.Unused {
		v |= Unused
	}
	if sr.Break {
		v |= Break
	}
	if sr.DecimalMode {
		v |= DecimalMode
	}
	if sr.InterruptDisable {
		v |= InterruptDisable
	}
	if sr.Zero {
		v |= Zero
	}
	if sr.Carry {
		v |= Carry
	}

	return v
}

// Load converts an 8 bit integer to the StatusRegister struct receiver.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&Sign == Sign
	sr.Overflow = v&Overflow == Overflow
	sr.Unused = v&Unused == Unused
	sr.Break = v&Break == Break
	sr.DecimalMode = v&DecimalMode == DecimalMode
	sr.InterruptDisable = v&InterruptDisable == InterruptDisable
	sr.Zero = v&Zero == Zero
	sr.Carry = v&Carry == Carry
}
