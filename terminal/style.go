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
package terminal

// Style is used to hint at the role of the text being printed.
type Style int

// List of valid styles.
const (
	StyleStep Style = iota
	StyleMachineInfo
	StyleFeedback
	StyleHelp
	StyleError
)

func (sty Style) pen() string {
	switch sty {
	case StyleStep:
		return ansiPen(yellow, true)
	case StyleMachineInfo:
		return ansiPen(cyan, true)
	case StyleFeedback:
		return ansiPen(white, false)
	case StyleHelp:
		return ansiPen(green, false)
	case StyleError:
		return ansiBold + ansiPen(red, true)
	}
	return ""
}
