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
package cpubus

// Reset is the address where the reset address is stored. The two bytes at
// Reset and Reset+1 are read as a little-endian address by CPU.Reset().
const Reset = uint16(0xfffc)

// StackOrigin is the address of the first byte of the stack page. The stack
// pointer is an offset into this page.
const StackOrigin = uint16(0x0100)

// Memtop is the highest address in the address space.
const Memtop = uint16(0xffff)
