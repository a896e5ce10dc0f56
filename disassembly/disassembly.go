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
package disassembly

import (
	"github.com/stepper6502/stepper6502/hardware/memory"
	"github.com/stepper6502/stepper6502/hardware/memory/cpubus"
	"github.com/stepper6502/stepper6502/programs"
)

// Disassembly represents a linear disassembly of one or more blocks of
// memory.
type Disassembly struct {
	// entries in the order they were decoded
	Entries []*Entry

	// entries indexed by address
	byAddress map[uint16]*Entry
}

// NewDisassembly is the preferred method of initialisation for the
// Disassembly type.
func NewDisassembly() *Disassembly {
	return &Disassembly{
		byAddress: make(map[uint16]*Entry),
	}
}

// FromMemory disassembles memory from origin to end (inclusive). The final
// instruction may extend beyond the end address.
func FromMemory(mem cpubus.Memory, origin uint16, end uint16) *Disassembly {
	dsm := NewDisassembly()
	dsm.AddBlock(mem, origin, end)
	return dsm
}

// FromProgram disassembles each segment of a program.
func FromProgram(p programs.Program) *Disassembly {
	mem := memory.NewMemory()
	p.Load(mem)

	dsm := NewDisassembly()
	for _, seg := range p.Segments {
		if len(seg.Data) == 0 {
			continue
		}

		// segments that wrap around the top of memory are disassembled in
		// two parts
		if seg.End() < seg.Origin {
			dsm.AddBlock(mem, seg.Origin, cpubus.Memtop)
			dsm.AddBlock(mem, 0x0000, seg.End())
		} else {
			dsm.AddBlock(mem, seg.Origin, seg.End())
		}
	}
	return dsm
}

// AddBlock disassembles memory from origin to end (inclusive) and adds the
// entries to the disassembly. Nothing is added if end is less than origin.
func (dsm *Disassembly) AddBlock(mem cpubus.Memory, origin uint16, end uint16) {
	for address := int(origin); address <= int(end); {
		e := Decode(mem, uint16(address))
		dsm.Entries = append(dsm.Entries, e)
		dsm.byAddress[e.Result.Address] = e
		address += e.Size()
	}
}

// Get returns the entry decoded at address.
func (dsm *Disassembly) Get(address uint16) (*Entry, bool) {
	e, ok := dsm.byAddress[address]
	return e, ok
}
