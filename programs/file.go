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
	"errors"
	"fmt"
	"os"

	"github.com/stepper6502/stepper6502/hardware/memory"
	"github.com/stepper6502/stepper6502/hardware/memory/cpubus"
)

// TooLarge is returned (wrapped) by FromFile() when the file does not fit in
// memory starting at the requested origin.
var TooLarge = errors.New("programs: file too large")

// FromFile creates a Program from a raw binary file. The contents of the file
// are placed in memory starting at origin.
//
// If the file covers the reset vector then the entry address is taken from
// the file. Otherwise the entry address is the origin.
func FromFile(filename string, origin uint16) (Program, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Program{}, fmt.Errorf("programs: %w", err)
	}

	if len(data) == 0 {
		return Program{}, fmt.Errorf("programs: file is empty (%s)", filename)
	}

	if len(data) > memory.Size-int(origin) {
		return Program{}, fmt.Errorf("%w (%d bytes at origin %#04x)", TooLarge, len(data), origin)
	}

	seg := Segment{Origin: origin, Data: data}
	p := NewProgram(filename, "binary image", origin, seg)

	// take entry address from the reset vector if the file includes it
	if int(origin) <= int(cpubus.Reset) && int(seg.End()) >= int(cpubus.Reset)+1 {
		idx := int(cpubus.Reset) - int(origin)
		p.Entry = uint16(data[idx]) | (uint16(data[idx+1]) << 8)
		p.Description = "binary image with reset vector"
	}

	return p, nil
}
