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
package disassembly

import (
	"fmt"
	"io"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	if e == nil {
		return nil
	}

	var err error
	if attr.ByteCode {
		_, err = io.WriteString(output, e.String())
	} else {
		_, err = fmt.Fprintf(output, "%s  %s", e.Address, e.Instruction())
	}
	if err != nil {
		return fmt.Errorf("disassembly: %w", err)
	}

	_, err = io.WriteString(output, "\n")
	if err != nil {
		return fmt.Errorf("disassembly: %w", err)
	}

	return nil
}
