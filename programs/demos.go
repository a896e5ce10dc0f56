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
	"strings"
)

// origin of the main segment for all demonstration programs
const demoOrigin = uint16(0x8000)

// origin of subroutine segments in demonstration programs
const demoSubroutine = uint16(0x9000)

// the list of demonstration programs. the hash field is filled in by Demos()
var demos = []Program{
	{
		Name:        "lda",
		Description: "LDA #$10; BRK",
		Segments: []Segment{
			{Origin: demoOrigin, Data: []uint8{0xa9, 0x10, 0x00}},
		},
	},
	{
		Name:        "zero",
		Description: "LDA #$00; BRK (zero flag is set)",
		Segments: []Segment{
			{Origin: demoOrigin, Data: []uint8{0xa9, 0x00, 0x00}},
		},
	},
	{
		Name:        "negative",
		Description: "LDA #$80; BRK (negative flag is set)",
		Segments: []Segment{
			{Origin: demoOrigin, Data: []uint8{0xa9, 0x80, 0x00}},
		},
	},
	{
		Name:        "transfer",
		Description: "move a value through every register with the transfer instructions",
		Segments: []Segment{
			{Origin: demoOrigin, Data: []uint8{
				0xa9, 0x42, // LDA #$42
				0xaa,       // TAX
				0xa9, 0x00, // LDA #$00
				0x8a,       // TXA
				0xa8,       // TAY
				0xa9, 0x00, // LDA #$00
				0x98, // TYA
				0x00, // BRK
			}},
		},
	},
	{
		Name:        "counters",
		Description: "increment and decrement X and Y across the wrap-around boundary",
		Segments: []Segment{
			{Origin: demoOrigin, Data: []uint8{
				0xa2, 0xff, // LDX #$ff
				0xe8,       // INX
				0xca,       // DEX
				0xa0, 0x00, // LDY #$00
				0x88, // DEY
				0xc8, // INY
				0x00, // BRK
			}},
		},
	},
	{
		Name:        "subroutine",
		Description: "JSR $9000; LDA #$01; BRK with LDA #$10; RTS at $9000",
		Segments: []Segment{
			{Origin: demoOrigin, Data: []uint8{
				0x20, 0x00, 0x90, // JSR $9000
				0xa9, 0x01, // LDA #$01
				0x00, // BRK
			}},
			{Origin: demoSubroutine, Data: []uint8{
				0xa9, 0x10, // LDA #$10
				0x60, // RTS
			}},
		},
	},
	{
		Name:        "fault",
		Description: "LDA #$01 followed by the unsupported opcode $ff",
		Segments: []Segment{
			{Origin: demoOrigin, Data: []uint8{0xa9, 0x01, 0xff}},
		},
	},
}

// Demos returns the list of built-in demonstration programs.
func Demos() []Program {
	l := make([]Program, len(demos))
	for i, d := range demos {
		d.Entry = demoOrigin
		d.Hash = hash(d.Segments)
		l[i] = d
	}
	return l
}

// UnknownDemo is returned (wrapped) by Find() when there is no demonstration
// program with the requested name.
var UnknownDemo = errors.New("programs: unknown demo")

// Find returns the named demonstration program. The name is not case
// sensitive.
func Find(name string) (Program, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range Demos() {
		if d.Name == name {
			return d, nil
		}
	}
	return Program{}, fmt.Errorf("%w (%s)", UnknownDemo, name)
}
