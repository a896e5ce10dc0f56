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
// Package programs prepares machine code programs for execution. A Program
// is a list of Segments, each of which is a block of bytes to be copied into
// memory at an origin address, and an Entry address which is written to the
// reset vector.
//
// Programs can be created from a raw binary file with FromFile() or selected
// from the list of built-in demonstration programs with Find(). The list of
// demonstrations is available with Demos().
package programs
