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

package colorterm

import (
	"os"
	"unicode"

	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/debugger/terminal"
	"github.com/aryansw/chroma-vm/debugger/terminal/colorterm/easyterm"
	"github.com/aryansw/chroma-vm/debugger/terminal/colorterm/easyterm/ansi"
)

// maximum number of entries in the history
const maxHistory = 100

type lineEditor struct {
	prompt string
	input  []rune
	cursor int
}

func (ed *lineEditor) insert(r rune) {
	ed.input = append(ed.input, 0)
	copy(ed.input[ed.cursor+1:], ed.input[ed.cursor:])
	ed.input[ed.cursor] = r
	ed.cursor++
}

func (ed *lineEditor) backspace() {
	if ed.cursor == 0 {
		return
	}
	ed.input = append(ed.input[:ed.cursor-1], ed.input[ed.cursor:]...)
	ed.cursor--
}

func (ed *lineEditor) set(s string) {
	ed.input = []rune(s)
	ed.cursor = len(ed.input)
}

func (ed *lineEditor) String() string {
	return "\r" + ansi.ClearLine + ansi.PenStyles["bold"] + ed.prompt + ansi.NormalPen +
		string(ed.input) + ansi.CursorMove(ed.cursor-len(ed.input))
}

// read the next key or an event. returns an error for interrupts
func (ct *ColorTerminal) readKey(events *terminal.ReadEvents) (rune, error) {
	var intEvents chan os.Signal
	if events != nil {
		intEvents = events.IntEvents
	}

	select {
	case r := <-ct.keys:
		return r, nil
	case <-ct.keysErr:
		return 0, curated.Errorf(terminal.UserAbort)
	case <-intEvents:
		return 0, curated.Errorf(terminal.UserInterrupt)
	}
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(buffer []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	ed := lineEditor{prompt: prompt.String()}
	historyIdx := len(ct.history)

	ct.EasyTerm.TermPrint(ed.String())

	for {
		r, err := ct.readKey(events)
		if err != nil {
			ct.EasyTerm.TermPrint("\n")
			return 0, err
		}

		switch r {
		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			ct.EasyTerm.TermPrint("\n")

			s := string(ed.input)
			if len(s) > 0 && (len(ct.history) == 0 || ct.history[len(ct.history)-1] != s) {
				ct.history = append(ct.history, s)
				if len(ct.history) > maxHistory {
					ct.history = ct.history[1:]
				}
			}

			n := copy(buffer, s)
			return n, nil

		case easyterm.KeyEndOfFile:
			if len(ed.input) == 0 {
				ct.EasyTerm.TermPrint("\n")
				return 0, curated.Errorf(terminal.UserAbort)
			}

		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return 0, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeySuspend:
			ct.EasyTerm.CanonicalMode()
			easyterm.SuspendProcess()
			ct.EasyTerm.CBreakMode()

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			ed.backspace()

		case easyterm.KeyEsc:
			r, err = ct.readKey(events)
			if err != nil {
				return 0, err
			}
			if r != easyterm.EscCursor {
				break
			}

			r, err = ct.readKey(events)
			if err != nil {
				return 0, err
			}

			switch r {
			case easyterm.CursorUp:
				if historyIdx > 0 {
					historyIdx--
					ed.set(ct.history[historyIdx])
				}
			case easyterm.CursorDown:
				if historyIdx < len(ct.history)-1 {
					historyIdx++
					ed.set(ct.history[historyIdx])
				} else {
					historyIdx = len(ct.history)
					ed.set("")
				}
			case easyterm.CursorForward:
				if ed.cursor < len(ed.input) {
					ed.cursor++
				}
			case easyterm.CursorBackward:
				if ed.cursor > 0 {
					ed.cursor--
				}
			}

		default:
			if unicode.IsPrint(r) {
				ed.insert(r)
			}
		}

		ct.EasyTerm.TermPrint(ed.String())
	}
}
