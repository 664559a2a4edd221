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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	// include the word in hexadecimal
	ByteCode bool

	// only print entries that have been executed
	ExecutedOnly bool

	// collapse runs of identical words into a single line
	Compress bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for i := 0; i < len(dsm.entries); i++ {
		e := &dsm.entries[i]

		if attr.ExecutedOnly && e.Level < EntryLevelExecuted {
			continue
		}

		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}

		if attr.Compress && e.Level < EntryLevelExecuted {
			j := i + 1
			for j < len(dsm.entries) && dsm.entries[j].Word == e.Word && dsm.entries[j].Level < EntryLevelExecuted {
				j++
			}
			if n := j - i - 1; n > 0 {
				if _, err := io.WriteString(output, fmt.Sprintf("... repeated %d times\n", n)); err != nil {
					return err
				}
				i = j - 1
			}
		}
	}

	return nil
}

// WriteEntry writes a single entry to io.Writer. A newline is added.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	if e == nil {
		return nil
	}
	_, err := io.WriteString(output, fmt.Sprintf("%s\n", dsm.line(attr, e)))
	return err
}

func (dsm *Disassembly) line(attr WriteAttr, e *Entry) string {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("%-11s ", e.Address()))
	if attr.ByteCode {
		s.WriteString(e.Bytecode())
		s.WriteString(" ")
	}
	s.WriteString(fmt.Sprintf("%-24s", e.Instruction))

	if n := e.Notes(); n != "" {
		s.WriteString(" ; ")
		s.WriteString(n)
	}

	return strings.TrimRight(s.String(), " ")
}
