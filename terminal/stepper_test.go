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
package terminal_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stepper6502/stepper6502/hardware"
	"github.com/stepper6502/stepper6502/hardware/cpu"
	"github.com/stepper6502/stepper6502/programs"
	"github.com/stepper6502/stepper6502/terminal"
	"github.com/stepper6502/stepper6502/test"
)

type keys struct {
	r *strings.Reader
}

func (k keys) ReadKey() (rune, error) {
	r, _, err := k.r.ReadRune()
	return r, err
}

func newStepper(t *testing.T, demo string, input string) (*terminal.Stepper, *hardware.Machine, *test.Writer) {
	t.Helper()
	p, err := programs.Find(demo)
	test.DemandSuccess(t, err)
	m := hardware.NewMachine()
	m.AttachProgram(p)
	w := &test.Writer{}
	return terminal.NewStepper(m, keys{r: strings.NewReader(input)}, w), m, w
}

func TestStepping(t *testing.T) {
	st, m, w := newStepper(t, "lda", " ")
	test.DemandSuccess(t, st.Loop())

	// one step followed by the end of input
	test.ExpectEquality(t, m.CPU.A.Value(), uint8(0x10))
	test.ExpectEquality(t, m.CPU.Halted, false)
	test.ExpectEquality(t, strings.Contains(w.String(), "0x8000  a9 10     LDA #$10\n"), true)
	test.ExpectEquality(t, strings.Contains(w.String(), "next: BRK\n"), true)

	// no ANSI sequences by default
	test.ExpectEquality(t, strings.Contains(w.String(), "\033["), false)
}

func TestSteppingToHalt(t *testing.T) {
	st, m, w := newStepper(t, "lda", "ssss")
	test.DemandSuccess(t, st.Loop())
	test.ExpectEquality(t, m.CPU.Halted, true)
	test.ExpectEquality(t, strings.HasSuffix(w.String(), "halted after 2 instructions\n"), true)
}

func TestSteppingRun(t *testing.T) {
	st, m, _ := newStepper(t, "subroutine", "r")
	test.DemandSuccess(t, st.Loop())
	test.ExpectEquality(t, m.CPU.A.Value(), uint8(0x01))
	test.ExpectEquality(t, m.CPU.Halted, true)
}

func TestSteppingQuit(t *testing.T) {
	st, m, _ := newStepper(t, "counters", "\nxq ")
	test.DemandSuccess(t, st.Loop())

	// only the first instruction is executed. unknown keys are ignored and
	// nothing happens after quit
	test.ExpectEquality(t, m.CPU.X.Value(), uint8(0xff))
	test.ExpectEquality(t, m.CPU.PC.Address(), uint16(0x8002))
}

func TestSteppingFault(t *testing.T) {
	st, m, w := newStepper(t, "fault", "  ")
	err := st.Loop()
	test.ExpectEquality(t, errors.Is(err, cpu.UnknownOpcode), true)
	test.ExpectEquality(t, m.CPU.PC.Address(), uint16(0x8002))
	test.ExpectEquality(t, strings.Contains(w.String(), "unknown opcode"), true)
}

func TestSteppingStackDump(t *testing.T) {
	st, _, w := newStepper(t, "subroutine", "sm")
	test.DemandSuccess(t, st.Loop())

	// JSR pushed 0x8002 high byte first
	test.ExpectEquality(t, strings.Contains(w.String(), "01f0 | "), true)
	test.ExpectEquality(t, strings.Contains(w.String(), " 02 80"), true)
}

func TestSteppingColor(t *testing.T) {
	st, _, w := newStepper(t, "lda", "")
	st.Color = true
	test.DemandSuccess(t, st.Loop())
	test.ExpectEquality(t, strings.Contains(w.String(), "\033[0m"), true)
}
