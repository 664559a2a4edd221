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

package ansi_test

import (
	"testing"

	"github.com/aryansw/chroma-vm/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/aryansw/chroma-vm/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "", "", true, false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91m")

	s, err = ansi.ColorBuild("red", "blue", "bold", false, true)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s, "\033[31;104;1m")

	s, err = ansi.ColorBuild("", "", "", false, false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s, ansi.NormalPen)

	_, err = ansi.ColorBuild("purple", "", "", false, false)
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, ansi.Pens["green"], "\033[92m")
	test.ExpectEquality(t, ansi.DimPens["green"], "\033[32m")
	test.ExpectEquality(t, ansi.PenStyles["bold"], "\033[1m")
}

func TestCursorMove(t *testing.T) {
	test.ExpectEquality(t, ansi.CursorMove(-3), "\033[3D")
	test.ExpectEquality(t, ansi.CursorMove(2), "\033[2C")
	test.ExpectEquality(t, ansi.CursorMove(0), "")
}
