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
package main

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/stepper6502/stepper6502/hardware"
)

// writeMemviz writes a graphviz description of the CPU registers and the
// result of the last instruction. Memory is not included.
func writeMemviz(filename string, m *hardware.Machine) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	defer f.Close()

	memviz.Map(f, &m.CPU.PC, &m.CPU.A, &m.CPU.X, &m.CPU.Y, &m.CPU.SP, &m.CPU.Status, &m.CPU.LastResult)

	return nil
}
