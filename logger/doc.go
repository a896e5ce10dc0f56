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
// Package logger is the central logging facility. Entries are made with the
// Log() and Logf() functions, both of which require a Permission. The
// Permission interface lets the environment making the request decide whether
// the entry is actually made. For example, the CPU only logs diagnostics when
// its Diagnostics field is true:
//
//	logger.Logf(mc, "CPU", "pc = %#04x", mc.PC.Address())
//
// The logger.Allow value can be used when an entry should always be made.
//
// The number of entries kept is limited. Older entries are dropped as new
// entries are made.
package logger
