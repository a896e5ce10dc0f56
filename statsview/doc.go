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
// Package statsview runs a local HTTP server showing runtime statistics of
// the emulator process. It is only functional when built with the statsview
// build tag:
//
//	go build -tags statsview .
//
// Without the build tag, Available() returns false and Launch() does
// nothing. The underlying functionality is provided by
// "github.com/go-echarts/statsview".
//
// Graphical statistics are viewable at:
//
//	localhost:12600/debug/statsview
//
// Standard Go pprof statistics are available at:
//
//	localhost:12600/debug/pprof/
package statsview
