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
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"strings"

	"github.com/stepper6502/stepper6502/assembler"
	"github.com/stepper6502/stepper6502/disassembly"
	"github.com/stepper6502/stepper6502/govern"
	"github.com/stepper6502/stepper6502/hardware"
	"github.com/stepper6502/stepper6502/hardware/memory/cpubus"
	"github.com/stepper6502/stepper6502/logger"
	"github.com/stepper6502/stepper6502/modalflag"
	"github.com/stepper6502/stepper6502/programs"
	"github.com/stepper6502/stepper6502/statsview"
	"github.com/stepper6502/stepper6502/terminal"
	"github.com/stepper6502/stepper6502/terminal/easyterm"
	"github.com/stepper6502/stepper6502/translate"
	"github.com/stepper6502/stepper6502/version"
)

// exit values
const (
	exitOK        = 0
	exitArguments = 10
	exitMode      = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the mode selected by the arguments. returns the value to be used
// with os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "STEP", "DISASM", "DEMOS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArguments
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "STEP":
		err = step(md)

	case "DISASM":
		err = disasm(md)

	case "DEMOS":
		err = demos(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		io.WriteString(output, translate.From("* error in %s mode: %s\n", md, err))
		return exitMode
	}

	return exitOK
}

// flags shared by all modes that need a program
type programFlags struct {
	demo   *string
	origin *uint16
}

func addProgramFlags(md *modalflag.Modes) programFlags {
	return programFlags{
		demo:   md.AddString("demo", "", "use a built-in demonstration program (see DEMOS mode)"),
		origin: md.AddAddress("origin", 0x8000, "load address for binary files (hexadecimal)"),
	}
}

// selectProgram returns the program requested by the -demo flag or by the
// single remaining argument
func selectProgram(md *modalflag.Modes, f programFlags) (programs.Program, error) {
	if *f.demo != "" {
		if len(md.RemainingArgs()) > 0 {
			return programs.Program{}, fmt.Errorf("cannot use -demo with a program file in %s mode", md)
		}
		return programs.Find(*f.demo)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return programs.Program{}, fmt.Errorf("program file or -demo required for %s mode", md)
	case 1:
		return loadFile(md.GetArg(0), *f.origin)
	}

	return programs.Program{}, fmt.Errorf("too many arguments for %s mode", md)
}

// loadFile assembles source files and loads anything else as a binary image
// at the origin address. the origin of source files is set by the source
func loadFile(filename string, origin uint16) (programs.Program, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".s", ".asm":
		return assembler.NewAssembler().AssembleFile(filename)
	}
	return programs.FromFile(filename, origin)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	pf := addProgramFlags(md)
	limit := md.AddInt("limit", 0, "maximum number of instructions to execute (0 for no limit)")
	log := md.AddBool("log", false, "echo log to stdout (includes instruction diagnostics)")
	dump := md.AddBool("dump", false, "hex dump of the stack page after the program ends")
	viz := md.AddString("memviz", "", "write graphviz description of the CPU to file")
	profile := md.AddBool("profile", false, "write cpu profile to run.profile")
	stats := md.AddBool("statsview", false, "run stats server (requires statsview build tag)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prog, err := selectProgram(md, pf)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return errors.New("statsview not available in this build")
		}
		statsview.Launch(md.Output)
	}

	m := hardware.NewMachine()
	if *log {
		logger.SetEcho(md.Output)
		defer logger.SetEcho(nil)
		m.CPU.Diagnostics = true
	}
	m.AttachProgram(prog)

	if *profile {
		f, err := os.Create("run.profile")
		if err != nil {
			return err
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	// ctrl-c ends the emulation
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	var performanceFilter int
	interrupted := func() bool {
		performanceFilter++
		if performanceFilter < hardware.PerformanceBrake {
			return false
		}
		performanceFilter = 0
		select {
		case <-intChan:
			return true
		default:
		}
		return false
	}

	if *limit > 0 {
		err = m.RunForInstructionCount(*limit, func(_ int) (govern.State, error) {
			if interrupted() {
				return govern.Ending, nil
			}
			return govern.Running, nil
		})
	} else {
		err = m.Run(func() (govern.State, error) {
			if interrupted() {
				return govern.Ending, nil
			}
			return govern.Running, nil
		})
	}

	fmt.Fprintln(md.Output, m.CPU)

	if *dump {
		m.Mem.Dump(md.Output, cpubus.StackOrigin, cpubus.StackOrigin|0xff)
	}

	if *viz != "" {
		if err := writeMemviz(*viz, m); err != nil {
			return err
		}
	}

	return err
}

func step(md *modalflag.Modes) error {
	md.NewMode()

	pf := addProgramFlags(md)
	log := md.AddBool("log", false, "echo log to stdout (includes instruction diagnostics)")
	color := md.AddBool("color", true, "use ANSI colour sequences")

	md.AdditionalHelp("keys: [space/return] step  [r] run  [m] stack  [q] quit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prog, err := selectProgram(md, pf)
	if err != nil {
		return err
	}

	m := hardware.NewMachine()
	if *log {
		logger.SetEcho(md.Output)
		defer logger.SetEcho(nil)
		m.CPU.Diagnostics = true
	}
	m.AttachProgram(prog)

	var term easyterm.Terminal
	if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	defer term.CleanUp()

	if err := term.CBreakMode(); err != nil {
		return err
	}

	st := terminal.NewStepper(m, &term, &term)
	st.Color = *color

	return st.Loop()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	pf := addProgramFlags(md)
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prog, err := selectProgram(md, pf)
	if err != nil {
		return err
	}

	attr := disassembly.WriteAttr{
		ByteCode: *bytecode,
	}

	return disassembly.FromProgram(prog).Write(md.Output, attr)
}

func demos(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	for _, d := range programs.Demos() {
		fmt.Fprintf(md.Output, "%-12s %s\n", d.Name, d.Description)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		_, r, _ := version.Version()
		fmt.Fprintln(md.Output, r)
	} else {
		fmt.Fprintln(md.Output, version.String())
	}

	return nil
}
