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
// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure but allow the test to continue.
// The Demand*() functions are fatal to the test. Use Demand*() when the value
// being tested is used later in the test and so must be correct. For example,
// demanding that a program loaded without error before stepping through it.
//
// ExpectSuccess() and ExpectFailure() test a value for a 'success' or
// 'failure' condition appropriate to its type. The nil value is considered a
// success because of how errors work in Go (nil indicating no error).
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. Writer.Compare() can then be used to test for equality.
package test
