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
// Package easyterm is a wrapper for "github.com/pkg/term/termios". It wraps
// termios methods in functions with friendlier names and provides single key
// input when the terminal is in cbreak mode.
package easyterm

import (
	"bufio"
	"fmt"
	"os"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
)

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File
	reader *bufio.Reader

	canAttr    syscall.Termios
	cbreakAttr syscall.Termios

	mu sync.Mutex
}

// Initialise the fields in the Terminal struct. The terminal is not put into
// cbreak mode until CBreakMode() is called.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: terminal requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: terminal requires an output file")
	}

	pt.input = inputFile
	pt.output = outputFile
	pt.reader = bufio.NewReader(pt.input)

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	// cbreak attributes are based on the current attributes
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return nil
}

// CleanUp returns the terminal to canonical mode.
func (pt *Terminal) CleanUp() {
	_ = pt.Flush()
	_ = pt.CanonicalMode()
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...any) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	fmt.Fprintf(pt.output, s, a...)
	_ = pt.output.Sync()
}

// Write implements the io.Writer interface.
func (pt *Terminal) Write(p []byte) (int, error) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.output.Write(p)
}

// ReadKey returns the next key pressed. In canonical mode this will block
// until the user presses return.
func (pt *Terminal) ReadKey() (rune, error) {
	r, _, err := pt.reader.ReadRune()
	if err != nil {
		return 0, fmt.Errorf("easyterm: %w", err)
	}
	return r, nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode. Keys are available to ReadKey()
// without the user pressing return.
func (pt *Terminal) CBreakMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return err
	}
	return nil
}
