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
package hardware

import (
	"github.com/stepper6502/stepper6502/hardware/cpu"
	"github.com/stepper6502/stepper6502/hardware/memory"
)

// State stores the machine's sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
type State struct {
	CPU *cpu.CPU
	Mem *memory.Memory
}

// Snapshot the state of the machine.
func (m *Machine) Snapshot() *State {
	return &State{
		CPU: m.CPU.Snapshot(),
		Mem: m.Mem.Snapshot(),
	}
}

// Plumb a previously snapshotted state into the machine.
func (m *Machine) Plumb(state *State) {
	if state == nil {
		panic("machine: cannot plumb in a nil state")
	}

	// copy again so that the machine doesn't change the stored state
	m.CPU = state.CPU.Snapshot()
	m.Mem = state.Mem.Snapshot()
	m.CPU.Plumb(m.Mem)
}
