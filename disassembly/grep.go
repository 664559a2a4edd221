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

// GrepScope limits the scope of the search.
type GrepScope int

// List of available scopes.
const (
	GrepMnemonic GrepScope = iota
	GrepOperand
	GrepAll
)

// Grep searches the disassembly for the specified search string. Matching
// lines are written to output. Returns the number of matches.
func (dsm *Disassembly) Grep(output io.Writer, scope GrepScope, search string, caseSensitive bool) (int, error) {
	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	var matches int

	for i := range dsm.entries {
		e := &dsm.entries[i]

		line := dsm.line(WriteAttr{ByteCode: true}, e)

		var s string
		switch scope {
		case GrepMnemonic:
			s = e.Instruction.Defn.Mnemonic
		case GrepOperand:
			s = strings.TrimPrefix(e.Instruction.String(), e.Instruction.Defn.Mnemonic)
		case GrepAll:
			s = line
		}

		if !caseSensitive {
			s = strings.ToUpper(s)
		}

		if strings.Contains(s, search) {
			matches++
			if _, err := io.WriteString(output, fmt.Sprintf("%s\n", line)); err != nil {
				return matches, err
			}
		}
	}

	return matches, nil
}
