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
package memory

import (
	"fmt"
	"io"
	"strings"

	"github.com/stepper6502/stepper6502/hardware/memory/cpubus"
)

// Size is the number of addressable bytes.
const Size = int(cpubus.Memtop) + 1

// Memory is the entire address space. It implements the cpubus.Memory
// interface.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// All bytes are initialised to zero.
func NewMemory() *Memory {
	return &Memory{}
}

// Snapshot creates a copy of memory in its current state.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	return &n
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.data[address] = data
}

// ReadWord returns the 16bit value stored little-endian at address. The high
// byte is read from address+1, which wraps to 0x0000 if address is 0xffff.
func (mem *Memory) ReadWord(address uint16) uint16 {
	lo := mem.Read(address)
	hi := mem.Read(address + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

// WriteWord stores the 16bit value little-endian at address. The high byte is
// written to address+1, wrapping in the same way as ReadWord().
func (mem *Memory) WriteWord(address uint16, data uint16) {
	mem.Write(address, uint8(data))
	mem.Write(address+1, uint8(data>>8))
}

// Load copies data into memory starting at origin. Data that runs past 0xffff
// continues from 0x0000.
func (mem *Memory) Load(origin uint16, data []uint8) {
	for i, b := range data {
		mem.Write(origin+uint16(i), b)
	}
}

// Clear sets all bytes in memory to zero.
func (mem *Memory) Clear() {
	clear(mem.data[:])
}

// Dump writes a hex dump of the memory between from and to (inclusive) to
// the io.Writer. Rows are aligned to 16 byte boundaries.
func (mem *Memory) Dump(w io.Writer, from uint16, to uint16) {
	s := strings.Builder{}
	s.WriteString("        -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("      ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")

	start := int(from &^ 0x000f)
	for row := start; row <= int(to); row += 16 {
		s.WriteString(fmt.Sprintf("%04x | ", row))
		for col := 0; col < 16; col++ {
			a := row + col
			if a < int(from) || a > int(to) {
				s.WriteString("   ")
			} else {
				s.WriteString(fmt.Sprintf(" %02x", mem.data[a]))
			}
		}
		s.WriteString("\n")
	}

	io.WriteString(w, s.String())
}
