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
	"testing"

	"github.com/aryansw/chroma-vm/test"
)

func TestLineEditor(t *testing.T) {
	ed := lineEditor{}
	for _, r := range "STP" {
		ed.insert(r)
	}
	ed.cursor = 2
	ed.insert('E')
	test.ExpectEquality(t, string(ed.input), "STEP")
	test.ExpectEquality(t, ed.cursor, 3)

	ed.backspace()
	test.ExpectEquality(t, string(ed.input), "STP")
	test.ExpectEquality(t, ed.cursor, 2)

	ed.cursor = 0
	ed.backspace()
	test.ExpectEquality(t, string(ed.input), "STP")

	ed.set("REGS")
	test.ExpectEquality(t, ed.cursor, 4)
}
