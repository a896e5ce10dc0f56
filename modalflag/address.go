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
package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// address implements the flag.Value interface for 16bit memory addresses.
type address uint16

func (a *address) String() string {
	return fmt.Sprintf("0x%04x", uint16(*a))
}

// Set accepts an address in hexadecimal. The address can be prefixed with
// "0x" or "$".
func (a *address) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "$")

	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return fmt.Errorf("not a valid address")
	}

	*a = address(v)
	return nil
}

// AddAddress flag for next call to Parse(). Addresses are given on the
// command line in hexadecimal.
func (md *Modes) AddAddress(name string, value uint16, usage string) *uint16 {
	a := address(value)
	md.flags.Var(&a, name, usage)
	return (*uint16)(&a)
}
