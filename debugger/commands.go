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
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/aryansw/chroma-vm/debugger/govern"
	"github.com/aryansw/chroma-vm/debugger/terminal"
	"github.com/aryansw/chroma-vm/disassembly"
	"github.com/aryansw/chroma-vm/hardware/word"
	"github.com/aryansw/chroma-vm/imageloader"
	"github.com/aryansw/chroma-vm/logger"
)

// debugger keywords.
const (
	cmdBack   = "BACK"
	cmdBreak  = "BREAK"
	cmdClear  = "CLEAR"
	cmdDisasm = "DISASM"
	cmdDrop   = "DROP"
	cmdGrep   = "GREP"
	cmdHelp   = "HELP"
	cmdLog    = "LOG"
	cmdMemviz = "MEMVIZ"
	cmdOutput = "OUTPUT"
	cmdPeek   = "PEEK"
	cmdPoke   = "POKE"
	cmdQuit   = "QUIT"
	cmdRegs   = "REGS"
	cmdReset  = "RESET"
	cmdRun    = "RUN"
	cmdStack  = "STACK"
	cmdStep   = "STEP"
)

type command struct {
	usage string
	help  string
	fn    func(dbg *Debugger, tk *tokens) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		cmdBack:   {"BACK [n]", "Wind back execution by n instructions. Default is one.", (*Debugger).cmdBack},
		cmdBreak:  {"BREAK [x y]", "Set a breakpoint at the coordinates. Lists breakpoints if there are no coordinates.", (*Debugger).cmdBreak},
		cmdClear:  {"CLEAR", "Remove all breakpoints.", (*Debugger).cmdClear},
		cmdDisasm: {"DISASM [n|ALL]", "Disassemble n instructions either side of the instruction pointer. Default is five.", (*Debugger).cmdDisasm},
		cmdDrop:   {"DROP x y", "Remove the breakpoint at the coordinates.", (*Debugger).cmdDrop},
		cmdGrep:   {"GREP text", "Search the disassembly for text.", (*Debugger).cmdGrep},
		cmdHelp:   {"HELP [command]", "List commands or show help for a command.", (*Debugger).cmdHelp},
		cmdLog:    {"LOG [n]", "Show the last n log entries. Default is ten.", (*Debugger).cmdLog},
		cmdMemviz: {"MEMVIZ file", "Write a graphviz file showing the structure of the CPU.", (*Debugger).cmdMemviz},
		cmdOutput: {"OUTPUT file", "Save the output image to file.", (*Debugger).cmdOutput},
		cmdPeek:   {"PEEK x y [n]", "Show n words from the program image starting at the coordinates. Default is one.", (*Debugger).cmdPeek},
		cmdPoke:   {"POKE x y value", "Write value to the program image at the coordinates.", (*Debugger).cmdPoke},
		cmdQuit:   {"QUIT", "End the debugging session.", (*Debugger).cmdQuit},
		cmdRegs:   {"REGS", "Show the contents of the registers.", (*Debugger).cmdRegs},
		cmdReset:  {"RESET", "Restore the program to its original state and reset the CPU.", (*Debugger).cmdReset},
		cmdRun:    {"RUN", "Run until the program halts or a breakpoint is reached.", (*Debugger).cmdRun},
		cmdStack:  {"STACK", "Show the contents of the stack.", (*Debugger).cmdStack},
		cmdStep:   {"STEP [n]", "Execute n instructions. Default is one.", (*Debugger).cmdStep},
	}
}

// parseCommand tokenises the input and runs the command.
func (dbg *Debugger) parseCommand(input string) error {
	tk := tokeniseInput(input)

	kw, ok := tk.get()
	if !ok {
		return nil
	}
	kw = strings.ToUpper(kw)

	cmd, ok := commands[kw]
	if !ok {
		return errorf(UnknownCommand, kw)
	}

	return cmd.fn(dbg, tk)
}

func noMoreArgs(cmd string, tk *tokens) error {
	if tk.remaining() > 0 {
		return errorf(TooManyArguments, cmd)
	}
	return nil
}

func (dbg *Debugger) cmdHelp(tk *tokens) error {
	if kw, ok := tk.get(); ok {
		cmd, ok := commands[strings.ToUpper(kw)]
		if !ok {
			return errorf(UnknownCommand, kw)
		}
		dbg.printLine(terminal.StyleHelp, cmd.usage)
		dbg.printLine(terminal.StyleHelp, "  %s", cmd.help)
		return nil
	}

	kws := make([]string, 0, len(commands))
	for kw := range commands {
		kws = append(kws, kw)
	}
	sort.Strings(kws)
	for _, kw := range kws {
		dbg.printLine(terminal.StyleHelp, "%-16s %s", commands[kw].usage, commands[kw].help)
	}

	return nil
}

func (dbg *Debugger) cmdQuit(tk *tokens) error {
	if err := noMoreArgs(cmdQuit, tk); err != nil {
		return err
	}
	dbg.state = govern.Ending
	return nil
}

func (dbg *Debugger) cmdStep(tk *tokens) error {
	n, err := tk.optionalNumber(cmdStep, 1)
	if err != nil {
		return err
	}
	if err := noMoreArgs(cmdStep, tk); err != nil {
		return err
	}

	dbg.state = govern.Stepping
	defer func() {
		dbg.state = govern.Paused
	}()

	for i := uint32(0); i < n && !dbg.m.Halted(); i++ {
		if err := dbg.step(); err != nil {
			return errorf(CommandError, strings.ToLower(cmdStep), err)
		}

		if dbg.m.CPU.LastResult.Final {
			dbg.printLine(terminal.StyleCPUStep, dbg.m.CPU.LastResult.String())
		}

		// stop at breakpoints unless this is the last step
		if i < n-1 {
			x, y := dbg.m.CPU.Reg.ReadIP()
			if dbg.breakpoints.check(x, y) {
				dbg.printLine(terminal.StyleFeedback, "break at (%d,%d)", x, y)
				break
			}
		}
	}

	if dbg.m.Halted() {
		dbg.printInstruction()
	}

	return nil
}

func (dbg *Debugger) cmdRun(tk *tokens) error {
	if err := noMoreArgs(cmdRun, tk); err != nil {
		return err
	}

	steps := dbg.m.Steps()

	brk, err := dbg.run()
	if err != nil {
		return errorf(CommandError, strings.ToLower(cmdRun), err)
	}

	dbg.printLine(terminal.StyleFeedback, "%d instructions executed", dbg.m.Steps()-steps)

	if brk {
		x, y := dbg.m.CPU.Reg.ReadIP()
		dbg.printLine(terminal.StyleFeedback, "break at (%d,%d)", x, y)
	}

	dbg.printInstruction()

	return nil
}

func (dbg *Debugger) cmdBack(tk *tokens) error {
	n, err := tk.optionalNumber(cmdBack, 1)
	if err != nil {
		return err
	}
	if err := noMoreArgs(cmdBack, tk); err != nil {
		return err
	}

	state := dbg.rewind.pop(int(n))
	if state == nil {
		return errorf(NothingToRewind)
	}

	dbg.m.Plumb(state)
	dbg.plumb()
	dbg.printInstruction()

	return nil
}

func (dbg *Debugger) cmdReset(tk *tokens) error {
	if err := noMoreArgs(cmdReset, tk); err != nil {
		return err
	}

	dbg.m.Reload()
	dbg.plumb()
	dbg.rewind.reset()
	dbg.printInstruction()

	return nil
}

func (dbg *Debugger) cmdRegs(tk *tokens) error {
	if err := noMoreArgs(cmdRegs, tk); err != nil {
		return err
	}
	dbg.printLines(terminal.StyleInstrument, dbg.m.CPU.Reg.String())
	return nil
}

func (dbg *Debugger) cmdStack(tk *tokens) error {
	if err := noMoreArgs(cmdStack, tk); err != nil {
		return err
	}
	dbg.printLines(terminal.StyleInstrument, dbg.m.CPU.Stack.String())
	return nil
}

func (dbg *Debugger) cmdPeek(tk *tokens) error {
	x, y, err := tk.coords(cmdPeek)
	if err != nil {
		return err
	}
	n, err := tk.optionalNumber(cmdPeek, 1)
	if err != nil {
		return err
	}
	if err := noMoreArgs(cmdPeek, tk); err != nil {
		return err
	}

	if err := dbg.m.Mem.CheckAddress(x, y); err != nil {
		return errorf(CommandError, strings.ToLower(cmdPeek), err)
	}

	for i := uint32(0); i < n; i++ {
		w, ok := dbg.m.Mem.Peek(x, y)
		if !ok {
			break
		}
		dbg.printLine(terminal.StyleInstrument, "(%d,%d) %s", x, y, w)
		x, y = dbg.m.Mem.Next(x, y, 1)
	}

	return nil
}

func (dbg *Debugger) cmdPoke(tk *tokens) error {
	x, y, err := tk.coords(cmdPoke)
	if err != nil {
		return err
	}
	v, err := tk.number(cmdPoke)
	if err != nil {
		return err
	}
	if err := noMoreArgs(cmdPoke, tk); err != nil {
		return err
	}

	if v > uint32(word.Mask) {
		return errorf(InvalidArgument, strings.ToLower(cmdPoke), fmt.Sprintf("%#x", v))
	}

	if err := dbg.m.Mem.Poke(x, y, word.Word(v)); err != nil {
		return errorf(CommandError, strings.ToLower(cmdPoke), err)
	}
	dbg.dsm.Refresh()

	return nil
}

func (dbg *Debugger) cmdDisasm(tk *tokens) error {
	if s, ok := tk.peek(); ok && strings.ToUpper(s) == "ALL" {
		tk.get()
		if err := noMoreArgs(cmdDisasm, tk); err != nil {
			return err
		}
		return dbg.dsm.Write(dbg.writer(terminal.StyleDisasm), disassembly.WriteAttr{ByteCode: true, Compress: true})
	}

	n, err := tk.optionalNumber(cmdDisasm, 5)
	if err != nil {
		return err
	}
	if err := noMoreArgs(cmdDisasm, tk); err != nil {
		return err
	}

	x, y := dbg.m.CPU.Reg.ReadIP()
	for _, e := range dbg.dsm.Around(x, y, int(n)) {
		sty := terminal.StyleDisasm
		if e.X == x && e.Y == y {
			sty = terminal.StyleCPUStep
		}
		if err := dbg.dsm.WriteEntry(dbg.writer(sty), disassembly.WriteAttr{ByteCode: true}, e); err != nil {
			return err
		}
	}

	return nil
}

func (dbg *Debugger) cmdGrep(tk *tokens) error {
	if tk.remaining() == 0 {
		return errorf(MissingArgument, cmdGrep)
	}

	n, err := dbg.dsm.Grep(dbg.writer(terminal.StyleDisasm), disassembly.GrepAll, tk.remainder(), false)
	if err != nil {
		return err
	}
	if n == 0 {
		dbg.printLine(terminal.StyleFeedback, "no matches")
	}

	return nil
}

func (dbg *Debugger) cmdBreak(tk *tokens) error {
	if tk.remaining() == 0 {
		dbg.printLines(terminal.StyleFeedback, dbg.breakpoints.String())
		return nil
	}

	x, y, err := tk.coords(cmdBreak)
	if err != nil {
		return err
	}
	if err := noMoreArgs(cmdBreak, tk); err != nil {
		return err
	}

	if err := dbg.m.Mem.CheckAddress(x, y); err != nil {
		return errorf(CommandError, strings.ToLower(cmdBreak), err)
	}

	if err := dbg.breakpoints.add(x, y); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "breakpoint set at (%d,%d)", x, y)

	return nil
}

func (dbg *Debugger) cmdDrop(tk *tokens) error {
	x, y, err := tk.coords(cmdDrop)
	if err != nil {
		return err
	}
	if err := noMoreArgs(cmdDrop, tk); err != nil {
		return err
	}
	if err := dbg.breakpoints.drop(x, y); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "breakpoint dropped at (%d,%d)", x, y)
	return nil
}

func (dbg *Debugger) cmdClear(tk *tokens) error {
	if err := noMoreArgs(cmdClear, tk); err != nil {
		return err
	}
	dbg.breakpoints.clear()
	dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
	return nil
}

func (dbg *Debugger) cmdLog(tk *tokens) error {
	n, err := tk.optionalNumber(cmdLog, 10)
	if err != nil {
		return err
	}
	if err := noMoreArgs(cmdLog, tk); err != nil {
		return err
	}

	s := &strings.Builder{}
	logger.Tail(s, int(n))
	if s.Len() == 0 {
		dbg.printLine(terminal.StyleFeedback, "log is empty")
		return nil
	}
	dbg.printLines(terminal.StyleLog, s.String())

	return nil
}

func (dbg *Debugger) cmdOutput(tk *tokens) error {
	fn, ok := tk.get()
	if !ok {
		return errorf(MissingArgument, cmdOutput)
	}
	if err := noMoreArgs(cmdOutput, tk); err != nil {
		return err
	}

	if dbg.m.Mem.Output == nil {
		return errorf(NoOutput)
	}

	if err := imageloader.Save(fn, dbg.m.Mem.Output); err != nil {
		return errorf(CommandError, strings.ToLower(cmdOutput), err)
	}
	dbg.printLine(terminal.StyleFeedback, "output saved to %s", fn)

	return nil
}

func (dbg *Debugger) cmdMemviz(tk *tokens) error {
	fn, ok := tk.get()
	if !ok {
		return errorf(MissingArgument, cmdMemviz)
	}
	if err := noMoreArgs(cmdMemviz, tk); err != nil {
		return err
	}

	f, err := os.Create(fn)
	if err != nil {
		return errorf(CommandError, strings.ToLower(cmdMemviz), err)
	}
	defer f.Close()

	memviz.Map(f, dbg.m.CPU)
	dbg.printLine(terminal.StyleFeedback, "cpu structure written to %s", fn)

	return nil
}
