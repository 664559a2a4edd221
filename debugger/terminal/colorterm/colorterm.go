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

//go:build !windows

// Package colorterm implements the Terminal interface for the chroma
// debugger. It supports color output, line editing and history. The terminal
// is put into cbreak mode for the duration of the debugging session.
package colorterm

import (
	"bufio"
	"os"

	"github.com/aryansw/chroma-vm/debugger/terminal/colorterm/easyterm"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	reader *bufio.Reader

	// keypresses are read in a separate goroutine so that TermRead() can
	// monitor interrupt events while waiting for input
	keys    chan rune
	keysErr chan error

	history []string

	silenced bool
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ct.history = make([]string, 0)
	ct.reader = bufio.NewReader(os.Stdin)
	ct.keys = make(chan rune)
	ct.keysErr = make(chan error, 1)

	go func() {
		for {
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				ct.keysErr <- err
				return
			}
			ct.keys <- r
		}
	}()

	ct.EasyTerm.CBreakMode()

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}
