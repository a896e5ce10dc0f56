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
// Package hardware is the base package for the emulation. It and its
// sub-packages contain everything required to run a program.
//
// The Machine type is the root of the emulation and contains references to
// the CPU and the memory it is attached to. From here, the emulation can
// either be started to run continuously (with optional callback to check for
// continuation); or it can be stepped one instruction at a time.
package hardware
