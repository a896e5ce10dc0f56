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
	"fmt"
	"regexp"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// numbers in 6502 hexadecimal notation
var hexNumber = regexp.MustCompile(`\$([0-9a-fA-F]+)`)

var loBuiltin = starlark.NewBuiltin("lo", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var v int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &v); err != nil {
		return nil, err
	}
	return starlark.MakeInt(v & 0xff), nil
})

var hiBuiltin = starlark.NewBuiltin("hi", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var v int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &v); err != nil {
		return nil, err
	}
	return starlark.MakeInt((v >> 8) & 0xff), nil
})

// evaluate an expression. labels and equates defined so far are available
// to the expression
func (asm *Assembler) evaluate(expr string) (int64, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, fmt.Errorf("%w: missing value", BadExpression)
	}

	pred := starlark.StringDict{
		"lo": loBuiltin,
		"hi": hiBuiltin,
		"PC": starlark.MakeInt(asm.pc),
	}
	for k, v := range asm.equates {
		pred[k] = starlark.MakeInt64(v)
	}
	for k, v := range asm.labels {
		pred[k] = starlark.MakeInt(int(v))
	}

	prog := fmt.Sprintf("rc = %s\n", hexNumber.ReplaceAllString(expr, "0x${1}"))

	thread := &starlark.Thread{Name: "assembler"}
	dict, err := starlark.ExecFileOptions(&syntax.FileOptions{}, thread, "expr", prog, pred)
	if err != nil {
		return 0, fmt.Errorf("%w: %s (%v)", BadExpression, expr, err)
	}

	rc, ok := dict["rc"].(starlark.Int)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not an integer", BadExpression, expr)
	}

	v, ok := rc.Int64()
	if !ok {
		return 0, fmt.Errorf("%w: %s", OutOfRange, expr)
	}

	return v, nil
}

// evaluateRange evaluates the expression and checks that the result is
// between min and max inclusive
func (asm *Assembler) evaluateRange(expr string, min int64, max int64) (int64, error) {
	v, err := asm.evaluate(expr)
	if err != nil {
		return 0, err
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%w: %s = %d", OutOfRange, strings.TrimSpace(expr), v)
	}
	return v, nil
}

// splitArgs splits a comma separated list of expressions. commas inside
// brackets do not split the list
func splitArgs(s string) []string {
	var args []string
	var depth int
	var start int

	for i, r := range s {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}

	return append(args, strings.TrimSpace(s[start:]))
}
