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

package translate

import (
	"sync"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/message"

	"github.com/stepper6502/stepper6502/logger"
)

var (
	crit    sync.Mutex
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		logger.Logf(logger.Allow, "translate", "locale: %v", err)
	}
	SetLocales(locales...)
}

// SetLocales changes the language of translated messages. The first locale
// that is supported is used. With no locales the language is en-US.
func SetLocales(locales ...string) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	crit.Lock()
	defer crit.Unlock()
	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	crit.Lock()
	defer crit.Unlock()
	return printer.Sprintf(key, args...)
}
