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
package cpu_test

import (
	"testing"

	"github.com/stepper6502/stepper6502/test"
)

func TestPushPopByte(t *testing.T) {
	mc, mem := newTestCPU(0x8000)

	mc.PushByte(0x11)
	test.ExpectEquality(t, mem.Read(0x01fd), 0x11)
	test.ExpectEquality(t, mc.SP.Value(), 0xfc)

	mc.PushByte(0x22)
	test.ExpectEquality(t, mem.Read(0x01fc), 0x22)
	test.ExpectEquality(t, mc.SP.Value(), 0xfb)

	test.ExpectEquality(t, mc.PopByte(), 0x22)
	test.ExpectEquality(t, mc.PopByte(), 0x11)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
}

func TestPushPopWord(t *testing.T) {
	mc, mem := newTestCPU(0x8000)

	mc.PushWord(0x8002)
	test.ExpectEquality(t, mem.Read(0x01fd), 0x80)
	test.ExpectEquality(t, mem.Read(0x01fc), 0x02)
	test.ExpectEquality(t, mc.SP.Value(), 0xfb)
	test.ExpectEquality(t, mc.PopWord(), 0x8002)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
}

func TestPushPopWordRoundTrip(t *testing.T) {
	mc, _ := newTestCPU(0x8000)

	for _, sp := range []uint8{0xfd, 0x01, 0x00, 0xff} {
		mc.SP.Load(sp)
		for v := 0; v <= 0xffff; v++ {
			mc.PushWord(uint16(v))
			if !test.ExpectEquality(t, mc.PopWord(), uint16(v), sp) {
				return
			}
			if !test.ExpectEquality(t, mc.SP.Value(), sp, v) {
				return
			}
		}
	}
}

// the stack pointer wraps within the stack page
func TestStackWrap(t *testing.T) {
	mc, mem := newTestCPU(0x8000)

	mc.SP.Load(0x00)
	mc.PushByte(0xaa)
	test.ExpectEquality(t, mem.Read(0x0100), 0xaa)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)

	mc.PushByte(0xbb)
	test.ExpectEquality(t, mem.Read(0x01ff), 0xbb)
	test.ExpectEquality(t, mc.SP.Value(), 0xfe)

	// neighbouring pages are untouched
	test.ExpectEquality(t, mem.Read(0x0000), 0x00)
	test.ExpectEquality(t, mem.Read(0x0200), 0x00)

	test.ExpectEquality(t, mc.PopByte(), 0xbb)
	test.ExpectEquality(t, mc.PopByte(), 0xaa)
	test.ExpectEquality(t, mc.SP.Value(), 0x00)

	// a word pushed across the wrap point
	mc.SP.Load(0x00)
	mc.PushWord(0x1234)
	test.ExpectEquality(t, mem.Read(0x0100), 0x12)
	test.ExpectEquality(t, mem.Read(0x01ff), 0x34)
	test.ExpectEquality(t, mc.PredictRTS(), 0x1235)
	test.ExpectEquality(t, mc.PopWord(), 0x1234)
	test.ExpectEquality(t, mc.SP.Value(), 0x00)
}
