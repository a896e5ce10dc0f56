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

package translate_test

import (
	"testing"

	"github.com/stepper6502/stepper6502/test"
	"github.com/stepper6502/stepper6502/translate"
)

func TestFrom(t *testing.T) {
	translate.SetLocales("en-US")
	test.ExpectEquality(t, translate.From("%d instructions executed", 3), "3 instructions executed")
	test.ExpectEquality(t, translate.From("program %s", "lda"), "program lda")

	// unsupported locales still produce a message
	translate.SetLocales("xx-YY")
	test.ExpectEquality(t, translate.From("%d instructions executed", 3), "3 instructions executed")

	translate.SetLocales()
	test.ExpectEquality(t, translate.From("%s halted", "CPU"), "CPU halted")
}
