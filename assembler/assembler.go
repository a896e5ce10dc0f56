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

package assembler

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/stepper6502/stepper6502/hardware/cpu/instructions"
	"github.com/stepper6502/stepper6502/logger"
	"github.com/stepper6502/stepper6502/programs"
)

// DefaultOrigin is the address of code that appears before any .org
// directive.
const DefaultOrigin = 0x8000

var labelDefinition = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*):`)
var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// names that can't be used for labels or constants
var reserved = map[string]bool{
	"PC": true,
	"lo": true,
	"hi": true,
}

// Assembler turns source text into a programs.Program. An Assembler can be
// used for more than one call to Assemble(). Predefined values are kept
// between calls. Labels are those from the most recent call.
type Assembler struct {
	// log every assembled line
	Verbose bool

	mnemonics  map[string]*instructions.Definition
	predefined map[string]int64

	pass     int
	lineNo   int
	pc       int
	labels   map[string]uint16
	equates  map[string]int64
	segments []programs.Segment

	// the next emitted byte begins a new segment
	newSegment bool

	entry    uint16
	hasEntry bool
}

// NewAssembler is the preferred method of initialisation for the Assembler type.
func NewAssembler() *Assembler {
	asm := &Assembler{
		mnemonics:  make(map[string]*instructions.Definition),
		predefined: make(map[string]int64),
	}

	for _, defn := range instructions.GetDefinitions() {
		if defn != nil {
			asm.mnemonics[strings.ToLower(defn.Operator.String())] = defn
		}
	}

	return asm
}

// Predefine a constant for use by all subsequent calls to Assemble().
func (asm *Assembler) Predefine(name string, value int64) error {
	if !identifier.MatchString(name) || reserved[name] {
		return fmt.Errorf("%w: %s", BadLabel, name)
	}
	asm.predefined[name] = value
	return nil
}

// AllowLogging implements the logger.Permission interface.
func (asm *Assembler) AllowLogging() bool {
	return asm.Verbose
}

// Label returns the address of a label defined by the most recent assembly.
func (asm *Assembler) Label(name string) (uint16, bool) {
	a, ok := asm.labels[name]
	return a, ok
}

// AssembleFile assembles the named file. The filename is used as the name of
// the program.
func (asm *Assembler) AssembleFile(filename string) (programs.Program, error) {
	f, err := os.Open(filename)
	if err != nil {
		return programs.Program{}, fmt.Errorf("assembler: %w", err)
	}
	defer f.Close()

	return asm.Assemble(filename, f)
}

// Assemble source text read from input.
func (asm *Assembler) Assemble(name string, input io.Reader) (programs.Program, error) {
	var lines []string

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return programs.Program{}, fmt.Errorf("assembler: %w", err)
	}

	asm.labels = make(map[string]uint16)
	asm.equates = make(map[string]int64)
	for k, v := range asm.predefined {
		asm.equates[k] = v
	}

	for asm.pass = 0; asm.pass < 2; asm.pass++ {
		asm.pc = DefaultOrigin
		asm.segments = nil
		asm.newSegment = true
		asm.hasEntry = false

		for i, line := range lines {
			asm.lineNo = i + 1
			if err := asm.assembleLine(line); err != nil {
				return programs.Program{}, SyntaxError{
					LineNo: asm.lineNo,
					Line:   strings.TrimSpace(line),
					Err:    err,
				}
			}
		}
	}

	if len(asm.segments) == 0 {
		return programs.Program{}, fmt.Errorf("%w: %s", NoCode, name)
	}

	entry := asm.segments[0].Origin
	if asm.hasEntry {
		entry = asm.entry
	}

	p := programs.NewProgram(name, "assembled source", entry, asm.segments...)
	logger.Logf(asm, "assembler", "%s: %d segments, entry %#04x", name, len(p.Segments), p.Entry)

	return p, nil
}

func (asm *Assembler) assembleLine(line string) error {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)

	for {
		m := labelDefinition.FindStringSubmatch(line)
		if m == nil {
			break
		}
		if err := asm.defineLabel(m[1]); err != nil {
			return err
		}
		line = strings.TrimSpace(line[len(m[0]):])
	}

	if line == "" {
		return nil
	}

	op, operand := splitField(line)
	op = strings.ToLower(op)

	if strings.HasPrefix(op, ".") {
		return asm.directive(op, operand)
	}

	defn, ok := asm.mnemonics[op]
	if !ok {
		return fmt.Errorf("%w: %s", UnknownMnemonic, op)
	}

	if asm.pass == 1 {
		logger.Logf(asm, "assembler", "%#04x %s", asm.pc, line)
	}

	return asm.instruction(defn, operand)
}

func (asm *Assembler) defineLabel(label string) error {
	if reserved[label] {
		return fmt.Errorf("%w: %s", BadLabel, label)
	}

	// labels are collected during the first pass and are the same during
	// the second pass
	if asm.pass > 0 {
		return nil
	}

	if _, ok := asm.labels[label]; ok {
		return fmt.Errorf("%w: %s", DuplicateLabel, label)
	}
	if _, ok := asm.equates[label]; ok {
		return fmt.Errorf("%w: %s", DuplicateLabel, label)
	}
	if _, ok := asm.mnemonics[strings.ToLower(label)]; ok {
		return fmt.Errorf("%w: %s is a mnemonic", BadLabel, label)
	}

	asm.labels[label] = uint16(asm.pc)

	return nil
}

func (asm *Assembler) instruction(defn *instructions.Definition, operand string) error {
	switch defn.AddressingMode {
	case instructions.Implied:
		if operand != "" {
			return fmt.Errorf("%w: %s takes no operand", BadOperand, defn.Operator)
		}
		return asm.emit(defn.OpCode)

	case instructions.Immediate:
		expr, ok := strings.CutPrefix(operand, "#")
		if !ok {
			return fmt.Errorf("%w: %s requires an immediate operand", BadOperand, defn.Operator)
		}
		expr = strings.TrimSpace(expr)
		if v, ok := strings.CutPrefix(expr, "<"); ok {
			expr = fmt.Sprintf("lo(%s)", v)
		} else if v, ok := strings.CutPrefix(expr, ">"); ok {
			expr = fmt.Sprintf("hi(%s)", v)
		}

		var v int64
		if asm.pass > 0 {
			var err error
			v, err = asm.evaluateRange(expr, -128, 255)
			if err != nil {
				return err
			}
		} else if expr == "" {
			return fmt.Errorf("%w: %s requires an immediate operand", BadOperand, defn.Operator)
		}
		return asm.emit(defn.OpCode, uint8(v))

	case instructions.Absolute:
		if operand == "" || strings.HasPrefix(operand, "#") {
			return fmt.Errorf("%w: %s requires an address", BadOperand, defn.Operator)
		}

		var v int64
		if asm.pass > 0 {
			var err error
			v, err = asm.evaluateRange(operand, 0, 0xffff)
			if err != nil {
				return err
			}
		}
		return asm.emit(defn.OpCode, uint8(v), uint8(v>>8))
	}

	return fmt.Errorf("%w: unsupported addressing mode %s", BadOperand, defn.AddressingMode)
}

func (asm *Assembler) directive(directive string, operand string) error {
	switch directive {
	case ".org":
		v, err := asm.evaluateRange(operand, 0, 0xffff)
		if err != nil {
			return err
		}
		asm.pc = int(v)
		asm.newSegment = true

	case ".equ":
		name, expr := splitField(operand)
		if !identifier.MatchString(name) || reserved[name] {
			return fmt.Errorf("%w: %s", BadLabel, name)
		}

		// the value of a constant is fixed in the first pass
		if asm.pass > 0 {
			return nil
		}

		if _, ok := asm.labels[name]; ok {
			return fmt.Errorf("%w: %s", DuplicateLabel, name)
		}
		if _, ok := asm.equates[name]; ok {
			return fmt.Errorf("%w: %s", DuplicateLabel, name)
		}

		v, err := asm.evaluate(expr)
		if err != nil {
			return err
		}
		asm.equates[name] = v

	case ".byte":
		return asm.data(operand, 1, -128, 0xff)

	case ".word":
		return asm.data(operand, 2, -32768, 0xffff)

	case ".entry":
		if asm.hasEntry {
			return fmt.Errorf("%w: entry address already defined", BadOperand)
		}
		asm.hasEntry = true
		if asm.pass > 0 {
			v, err := asm.evaluateRange(operand, 0, 0xffff)
			if err != nil {
				return err
			}
			asm.entry = uint16(v)
		}

	default:
		return fmt.Errorf("%w: %s", UnknownDirective, directive)
	}

	return nil
}

// data emits a value of the given size for every argument in the operand
func (asm *Assembler) data(operand string, size int, min int64, max int64) error {
	if operand == "" {
		return fmt.Errorf("%w: no data", BadOperand)
	}

	for _, arg := range splitArgs(operand) {
		var v int64
		if asm.pass > 0 {
			var err error
			v, err = asm.evaluateRange(arg, min, max)
			if err != nil {
				return err
			}
		} else if arg == "" {
			return fmt.Errorf("%w: empty value in list", BadOperand)
		}

		var err error
		if size == 1 {
			err = asm.emit(uint8(v))
		} else {
			err = asm.emit(uint8(v), uint8(v>>8))
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// emit bytes at the current address
func (asm *Assembler) emit(data ...uint8) error {
	if asm.pc+len(data) > 0x10000 {
		return fmt.Errorf("%w: code extends beyond address 0xffff", OutOfRange)
	}

	if asm.newSegment {
		asm.segments = append(asm.segments, programs.Segment{Origin: uint16(asm.pc)})
		asm.newSegment = false
	}

	seg := &asm.segments[len(asm.segments)-1]
	seg.Data = append(seg.Data, data...)
	asm.pc += len(data)

	return nil
}

// splitField splits s at the first space or tab. the remainder is trimmed
func splitField(s string) (string, string) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}
