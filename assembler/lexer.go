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

package assembler

import (
	"strings"
	"unicode"
)

// statement is a single line of assembly after the label and comment have
// been removed.
type statement struct {
	num int

	label string

	// mnemonic or directive. always lower case
	op string

	operands []string

	// index of the first word of the statement in the program
	idx int
}

func isIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i, r := range s {
		if r == '_' || r == '.' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// tokeniseLine splits a line into a statement. the line number is not set.
func tokeniseLine(line string) (statement, error) {
	var st statement

	// remove comment
	if i := strings.IndexRune(line, ';'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)

	// label
	if i := strings.IndexRune(line, ':'); i >= 0 {
		st.label = strings.TrimSpace(line[:i])
		if !isIdentifier(st.label) || strings.HasPrefix(st.label, ".") {
			return st, errorf(InvalidLabel, st.label)
		}
		line = strings.TrimSpace(line[i+1:])
	}

	if line == "" {
		return st, nil
	}

	op, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		op, rest = line[:i], strings.TrimSpace(line[i:])
	}
	st.op = strings.ToLower(op)

	// a trailing comma leaves an empty operand. this is caught by operand
	// parsing
	if rest != "" {
		for _, o := range strings.Split(rest, ",") {
			st.operands = append(st.operands, strings.TrimSpace(o))
		}
	}

	return st, nil
}
