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
// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows different
// flags for each mode.
//
// Arguments are given to NewArgs() and parsed with Parse(). Each call to
// Parse() consumes the flags for the current mode and, if sub-modes have been
// added with AddSubModes(), the name of the selected sub-mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP", "DISASM")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		limit := md.AddInt("limit", 0, "maximum number of instructions")
//		origin := md.AddAddress("origin", 0x8000, "load address")
//		...
//	}
//
// The first sub-mode is the default and is selected when the first argument
// is not the name of a sub-mode. Sub-mode names are not case sensitive.
//
// Help is printed to the Output writer when the -help flag is given. The help
// lists the flags and sub-modes of the current mode, followed by any text
// given to AdditionalHelp().
package modalflag
