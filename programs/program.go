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
package programs

import (
	"crypto/sha1"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/stepper6502/stepper6502/hardware/memory"
	"github.com/stepper6502/stepper6502/hardware/memory/cpubus"
)

// Segment is a contiguous block of bytes starting at Origin.
type Segment struct {
	Origin uint16
	Data   []uint8
}

// End returns the address of the last byte in the segment. Segments that run
// past the top of memory wrap around to address zero.
func (seg Segment) End() uint16 {
	if len(seg.Data) == 0 {
		return seg.Origin
	}
	return seg.Origin + uint16(len(seg.Data)-1)
}

// Program is a machine code program ready to be loaded into memory.
type Program struct {
	// name of the program. for programs loaded from a file this is the
	// filename
	Name string

	// short description of what the program does
	Description string

	// the blocks of memory making up the program
	Segments []Segment

	// the address the reset vector will point to
	Entry uint16

	// sha1 hash of the program data
	Hash string
}

// NewProgram is the preferred method of initialisation for the Program type.
// The hash is created from the segments.
func NewProgram(name string, description string, entry uint16, segments ...Segment) Program {
	return Program{
		Name:        name,
		Description: description,
		Segments:    segments,
		Entry:       entry,
		Hash:        hash(segments),
	}
}

// ShortName returns the program name without any directory or file
// extension.
func (p Program) ShortName() string {
	s := filepath.Base(p.Name)
	return strings.TrimSuffix(s, filepath.Ext(s))
}

// Load copies the program into memory and sets the reset vector to the
// program's entry address. Memory not covered by the program is not changed.
func (p Program) Load(mem *memory.Memory) {
	for _, seg := range p.Segments {
		mem.Load(seg.Origin, seg.Data)
	}
	mem.WriteWord(cpubus.Reset, p.Entry)
}

func (p Program) String() string {
	return fmt.Sprintf("%s (entry %#04x, %d segments)", p.Name, p.Entry, len(p.Segments))
}

// hash creates a hash over all segments of the program. the origin of each
// segment is included.
func hash(segments []Segment) string {
	h := sha1.New()
	for _, seg := range segments {
		h.Write([]byte{uint8(seg.Origin), uint8(seg.Origin >> 8)})
		h.Write(seg.Data)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
