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
	"strconv"
	"strings"

	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/hardware/cpu/instructions"
	"github.com/aryansw/chroma-vm/hardware/cpu/registers"
)

func errorf(pattern string, values ...interface{}) error {
	return curated.Errorf(pattern, values...)
}

func parseRegister(s string) (instructions.Operand, error) {
	var op instructions.Operand

	r := strings.ToLower(s)
	if strings.HasPrefix(r, "[") && strings.HasSuffix(r, "]") {
		op.Deref = true
		r = strings.TrimSpace(r[1 : len(r)-1])
	}

	if r == "ip" {
		op.Index = registers.IP
		return op, nil
	}

	if !strings.HasPrefix(r, "r") {
		return op, errorf(InvalidRegister, s)
	}

	n, err := strconv.ParseUint(r[1:], 10, 8)
	if err != nil || n >= registers.NumRegisters {
		return op, errorf(InvalidRegister, s)
	}
	op.Index = uint8(n)

	return op, nil
}

// parseNumber accepts decimal and 0x prefixed hexadecimal values.
func parseNumber(s string, bits int) (uint32, bool) {
	s = strings.ToLower(s)

	base := 10
	if strings.HasPrefix(s, "0x") {
		s = s[2:]
		base = 16
	}

	n, err := strconv.ParseUint(s, base, bits)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// coordinate functions that can be used as immediate values
var coordFuncs = map[string]bool{"x": true, "y": true}

// splitCoordFunc splits x(label) into "x" and "label". returns false if the
// string is not of that form.
func splitCoordFunc(s string) (string, string, bool) {
	i := strings.IndexRune(s, '(')
	if i < 0 || !strings.HasSuffix(s, ")") {
		return "", "", false
	}
	fn := strings.ToLower(strings.TrimSpace(s[:i]))
	if !coordFuncs[fn] {
		return "", "", false
	}
	return fn, strings.TrimSpace(s[i+1 : len(s)-1]), true
}
