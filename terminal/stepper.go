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
package terminal

import (
	"errors"
	"fmt"
	"io"

	"github.com/stepper6502/stepper6502/disassembly"
	"github.com/stepper6502/stepper6502/hardware"
	"github.com/stepper6502/stepper6502/hardware/memory/cpubus"
	"github.com/stepper6502/stepper6502/terminal/easyterm"
	"github.com/stepper6502/stepper6502/translate"
)

// KeyReader returns one key press at a time.
type KeyReader interface {
	ReadKey() (rune, error)
}

// Stepper drives a Machine from key presses.
type Stepper struct {
	m   *hardware.Machine
	in  KeyReader
	out io.Writer

	// use ANSI colour sequences in output
	Color bool
}

// NewStepper is the preferred method of initialisation for the Stepper type.
func NewStepper(m *hardware.Machine, in KeyReader, out io.Writer) *Stepper {
	return &Stepper{
		m:   m,
		in:  in,
		out: out,
	}
}

const help = "[space/return] step  [r] run  [m] stack  [q] quit"

func (st *Stepper) print(sty Style, s string, a ...any) {
	if st.Color {
		io.WriteString(st.out, sty.pen())
	}
	fmt.Fprintf(st.out, s, a...)
	if st.Color {
		io.WriteString(st.out, ansiOff)
	}
	io.WriteString(st.out, "\n")
}

func (st *Stepper) printNext() {
	e := disassembly.Decode(st.m.Mem, st.m.CPU.PC.Address())
	st.print(StyleFeedback, "next: %s", e.Instruction())
}

func (st *Stepper) printHalted() {
	st.print(StyleFeedback, "%s", translate.From("halted after %d instructions", st.m.Instructions))
}

// Loop reads keys until the machine halts, the user quits or an error occurs.
// The end of input is not an error. Unknown opcodes are returned as an error.
func (st *Stepper) Loop() error {
	st.print(StyleHelp, help)
	st.print(StyleMachineInfo, "%s", st.m.CPU)
	st.printNext()

	for {
		k, err := st.in.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch k {
		case easyterm.KeySpace, easyterm.KeyCarriageReturn, easyterm.KeyLineFeed, 's':
			e := disassembly.Decode(st.m.Mem, st.m.CPU.PC.Address())

			cont, err := st.m.Step()
			if err != nil {
				st.print(StyleError, "%v", err)
				return err
			}

			st.print(StyleStep, "%s", e)
			st.print(StyleMachineInfo, "%s", st.m.CPU)

			if !cont {
				st.printHalted()
				return nil
			}
			st.printNext()

		case 'r':
			if err := st.m.Run(nil); err != nil {
				st.print(StyleError, "%v", err)
				return err
			}
			st.print(StyleMachineInfo, "%s", st.m.CPU)
			st.printHalted()
			return nil

		case 'm':
			st.m.Mem.Dump(st.out, cpubus.StackOrigin, cpubus.StackOrigin|0xff)

		case 'h', '?':
			st.print(StyleHelp, help)

		case 'q', easyterm.KeyCtrlC, easyterm.KeyCtrlD:
			return nil
		}
	}
}
