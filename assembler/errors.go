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
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped in a SyntaxError) by the assembler. Use
// errors.Is() to test for them.
var (
	UnknownMnemonic  = errors.New("assembler: unknown mnemonic")
	UnknownDirective = errors.New("assembler: unknown directive")
	BadOperand       = errors.New("assembler: bad operand")
	BadExpression    = errors.New("assembler: bad expression")
	BadLabel         = errors.New("assembler: bad label")
	DuplicateLabel   = errors.New("assembler: duplicate label")
	OutOfRange       = errors.New("assembler: value out of range")
	NoCode           = errors.New("assembler: no code")
)

// SyntaxError records the line at which an error occurred.
type SyntaxError struct {
	LineNo int
	Line   string
	Err    error
}

func (err SyntaxError) Error() string {
	return fmt.Sprintf("%v at line %d (%s)", err.Err, err.LineNo, err.Line)
}

func (err SyntaxError) Unwrap() error {
	return err.Err
}
