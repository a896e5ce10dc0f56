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
// Package memory implements the flat 64KiB address space seen by the CPU.
// There is no memory mapping and no mirroring. Every address from 0x0000 to
// 0xffff is a plain byte of RAM.
//
//	CPU ---- cpu bus ---- MEMORY ---- Load()/Dump() ---- DRIVER
//
// The CPU only sees the memory through the cpubus.Memory interface. The driver
// (the program loader, the command line tools, tests) has access to the
// additional functions of the Memory type for populating and inspecting the
// address space.
//
// Because addresses are of type uint16 there is never any need to check that
// an address is in range. Arithmetic on addresses wraps naturally, so the
// byte following 0xffff is 0x0000.
package memory
