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

package performance_test

import (
	"strings"
	"testing"

	"github.com/aryansw/chroma-vm/assembler"
	"github.com/aryansw/chroma-vm/hardware"
	"github.com/aryansw/chroma-vm/performance"
	"github.com/aryansw/chroma-vm/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfileString("cpu,mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "cpu,mem")

	p, err = performance.ParseProfileString("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "none")

	_, err = performance.ParseProfileString("gpu")
	test.ExpectFailure(t, err)
}

func TestCalcIPS(t *testing.T) {
	test.ExpectEquality(t, performance.CalcIPS(1000, 2.0), 500.0)
	test.ExpectEquality(t, performance.CalcIPS(1000, 0), 0.0)
}

func TestCheck(t *testing.T) {
	prg, err := assembler.AssembleString(`
        ldl r1, 100
        ldl r2, 1
        la  r3, loop
loop:   sub r1, r1, r2
        jif r1, r3
        halt
`)
	test.DemandSuccess(t, err)

	out := &strings.Builder{}
	err = performance.Check(out, performance.ProfileNone, prg, nil, hardware.Limits{}, "100ms")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "instructions per second"))

	err = performance.Check(out, performance.ProfileNone, prg, nil, hardware.Limits{}, "soon")
	test.ExpectFailure(t, err)
}
