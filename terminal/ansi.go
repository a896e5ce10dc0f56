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

import "fmt"

// ansi colors
const (
	red    = 1
	green  = 2
	yellow = 3
	cyan   = 6
	white  = 7
)

// pen types
const (
	pen       = 3
	brightPen = 9
)

func ansiPen(color int, bright bool) string {
	if bright {
		return fmt.Sprintf("\033[%d%dm", brightPen, color)
	}
	return fmt.Sprintf("\033[%d%dm", pen, color)
}

const ansiBold = "\033[1m"
const ansiOff = "\033[0m"
