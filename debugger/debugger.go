// This file is part of Chroma.
//
// Chroma is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chroma is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chroma.  If not, see <https://www.gnu.org/licenses/>.

package debugger

import (
	"os"
	"os/signal"
	"strings"

	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/debugger/govern"
	"github.com/aryansw/chroma-vm/debugger/terminal"
	"github.com/aryansw/chroma-vm/disassembly"
	"github.com/aryansw/chroma-vm/hardware"
	"github.com/aryansw/chroma-vm/hardware/cpu/instructions"
	"github.com/aryansw/chroma-vm/logger"
)

func errorf(pattern string, values ...interface{}) error {
	return curated.Errorf(pattern, values...)
}

// Debugger is the basic debugging frontend for the virtual machine.
type Debugger struct {
	m   *hardware.Machine
	dsm *disassembly.Disassembly

	term   terminal.Terminal
	events *terminal.ReadEvents

	breakpoints *breakpoints
	rewind      rewind

	state govern.State

	// the previous command. used when the user enters an empty line
	lastCommand string
}

// NewDebugger creates and initialises everything required for a new
// debugging session. Use the Start() method to actually begin the session.
func NewDebugger(m *hardware.Machine, term terminal.Terminal) (*Debugger, error) {
	dsm, err := disassembly.FromRaster(m.Mem.Program)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	dbg := &Debugger{
		m:           m,
		dsm:         dsm,
		term:        term,
		breakpoints: newBreakpoints(),
		rewind:      newRewind(maxRewind, maxRewindWords),
		state:       govern.Initialising,
		events: &terminal.ReadEvents{
			IntEvents: make(chan os.Signal, 1),
		},
	}

	return dbg, nil
}

// Start the main debugger sequence. Returns when the QUIT command is entered
// or when the terminal has no more input.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	signal.Notify(dbg.events.IntEvents, os.Interrupt)
	defer signal.Stop(dbg.events.IntEvents)

	logger.Log(logger.Allow, "debugger", "session started")

	dbg.state = govern.Paused
	dbg.printInstruction()

	return dbg.inputLoop()
}

func (dbg *Debugger) inputLoop() error {
	buffer := make([]byte, 256)

	for dbg.state != govern.Ending {
		n, err := dbg.term.TermRead(buffer, dbg.prompt(), dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserAbort) {
				return nil
			}
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.printLine(terminal.StyleFeedback, "use QUIT to end the session")
				continue
			}
			return curated.Errorf("debugger: %v", err)
		}

		input := strings.TrimSpace(string(buffer[:n]))
		if input == "" {
			if dbg.lastCommand == "" {
				continue
			}
			input = dbg.lastCommand
		}

		dbg.printLine(terminal.StyleEcho, input)

		if err := dbg.parseCommand(input); err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
		}

		dbg.lastCommand = input
	}

	logger.Log(logger.Allow, "debugger", "session ended")

	return nil
}

func (dbg *Debugger) prompt() terminal.Prompt {
	if dbg.m.Halted() {
		return terminal.Prompt{
			Type:    terminal.PromptTypeHalted,
			Content: dbg.m.CPU.Halted().String(),
		}
	}

	x, y := dbg.m.CPU.Reg.ReadIP()
	p := terminal.Prompt{Type: terminal.PromptTypeStep}
	if e := dbg.dsm.Entry(x, y); e != nil {
		p.Content = e.String()
	}
	return p
}

// plumb the disassembly into the current state of the machine
func (dbg *Debugger) plumb() {
	dbg.dsm.Plumb(dbg.m.Mem.Program)
}

// step the machine by one instruction
func (dbg *Debugger) step() error {
	dbg.rewind.push(dbg.m.Snapshot())

	if err := dbg.m.Step(); err != nil {
		return err
	}

	dbg.dsm.UpdateEntry(dbg.m.CPU.LastResult)

	if writesProgram(dbg.m.CPU.LastResult.Instruction) {
		dbg.dsm.Refresh()
	}

	return nil
}

// writesProgram returns true if the instruction can write to the program
// raster
func writesProgram(ins instructions.Instruction) bool {
	if ins.Defn == nil {
		return false
	}
	switch ins.Defn.Opcode {
	case instructions.MemCopy:
		return true
	case instructions.Alloc:
		return ins.Operands[1].Deref
	case instructions.Jump, instructions.JumpIf, instructions.Call, instructions.CallIf, instructions.Push:
		return false
	}
	return ins.Defn.Operands.NumOperands() > 0 && ins.Operands[0].Deref
}

// run the machine until it halts, a breakpoint is reached or the user
// interrupts execution. returns true if a breakpoint was reached.
func (dbg *Debugger) run() (bool, error) {
	dbg.rewind.push(dbg.m.Snapshot())

	var brk bool
	var performanceFilter int

	dbg.state = govern.Running
	defer func() {
		dbg.state = govern.Paused
	}()

	err := dbg.m.Run(func() (govern.State, error) {
		dbg.dsm.UpdateEntry(dbg.m.CPU.LastResult)

		x, y := dbg.m.CPU.Reg.ReadIP()
		if dbg.breakpoints.check(x, y) {
			brk = true
			return govern.Ending, nil
		}

		performanceFilter++
		if performanceFilter >= hardware.PerformanceBrake {
			performanceFilter = 0
			select {
			case <-dbg.events.IntEvents:
				dbg.printLine(terminal.StyleFeedback, "interrupted")
				return govern.Ending, nil
			default:
			}
		}

		return govern.Running, nil
	})

	dbg.dsm.Refresh()

	return brk, err
}
