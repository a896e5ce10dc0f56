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
	"errors"
	"fmt"

	"github.com/stepper6502/stepper6502/govern"
)

// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called after every instruction and can be nil, in which case
// the emulation runs until the CPU halts or an error occurs.
//
// Returns nil if the CPU halted or continueCheck returned govern.Ending.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			cont, err := m.Step()
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		case govern.Paused:
		default:
			return fmt.Errorf("machine: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// InstructionLimit is returned (wrapped) by RunForInstructionCount() when the
// CPU did not halt within the requested number of instructions.
var InstructionLimit = errors.New("machine: instruction limit reached")

// RunForInstructionCount runs the emulation for no more than limit
// instructions. The continueCheck function is called after every instruction
// with the number of instructions executed so far. It can be nil.
//
// Returns nil if the CPU halts or continueCheck returns govern.Ending.
func (m *Machine) RunForInstructionCount(limit int, continueCheck func(count int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(count int) (govern.State, error) { return govern.Running, nil }
	}

	state := govern.Running
	for count := 0; state != govern.Ending; {
		if count >= limit {
			return fmt.Errorf("%w (%d)", InstructionLimit, limit)
		}

		cont, err := m.Step()
		if err != nil {
			return err
		}
		count++

		if !cont {
			return nil
		}

		state, err = continueCheck(count)
		if err != nil {
			return err
		}
	}

	return nil
}
