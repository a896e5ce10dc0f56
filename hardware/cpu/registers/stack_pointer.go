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
	"fmt"

	"github.com/stepper6502/stepper6502/hardware/memory/cpubus"
)

// StackPointer is an 8bit offset into the stack page. The stack grows
// downwards: a push writes at the current address and then decrements the
// stack pointer; a pop increments the stack pointer and then reads.
//
// The stack pointer wraps within the stack page. There is no detection of
// the stack growing into neighbouring pages.
type StackPointer struct {
	Register
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{Register: NewRegister(val, "SP")}
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02x", sp.value)
}

// Address returns the address in the stack page that the stack pointer
// points to.
func (sp StackPointer) Address() uint16 {
	return cpubus.StackOrigin | uint16(sp.value)
}

// Decrement moves the stack pointer one position down, wrapping from 0x00 to
// 0xff.
func (sp *StackPointer) Decrement() {
	sp.value--
}

// Increment moves the stack pointer one position up, wrapping from 0xff to
// 0x00.
func (sp *StackPointer) Increment() {
	sp.value++
}
