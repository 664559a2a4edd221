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
	"strings"

	"github.com/aryansw/chroma-vm/debugger/terminal"
)

// printLine is the main method of writing to the terminal.
func (dbg *Debugger) printLine(sty terminal.Style, s string, a ...interface{}) {
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}
	dbg.term.TermPrintLine(sty, s)
}

// printLines splits the string into lines and prints each line separately.
func (dbg *Debugger) printLines(sty terminal.Style, s string) {
	for _, l := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		dbg.term.TermPrintLine(sty, l)
	}
}

// styleWriter is an io.Writer that prints to the terminal.
type styleWriter struct {
	dbg *Debugger
	sty terminal.Style
}

func (w styleWriter) Write(p []byte) (int, error) {
	if len(p) > 0 {
		w.dbg.printLines(w.sty, string(p))
	}
	return len(p), nil
}

func (dbg *Debugger) writer(sty terminal.Style) styleWriter {
	return styleWriter{dbg: dbg, sty: sty}
}

// print the instruction at the instruction pointer
func (dbg *Debugger) printInstruction() {
	if dbg.m.Halted() {
		dbg.printLine(terminal.StyleFeedback, "halted: %s", dbg.m.CPU.Halted())
		return
	}
	x, y := dbg.m.CPU.Reg.ReadIP()
	if e := dbg.dsm.Entry(x, y); e != nil {
		dbg.printLine(terminal.StyleDisasm, "%s %s", e.Address(), e.Instruction)
	}
}
