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

package digest_test

import (
	"testing"

	"github.com/aryansw/chroma-vm/digest"
	"github.com/aryansw/chroma-vm/hardware/cpu/execution"
	"github.com/aryansw/chroma-vm/hardware/cpu/instructions"
	"github.com/aryansw/chroma-vm/hardware/memory"
	"github.com/aryansw/chroma-vm/test"
)

func TestImplementations(t *testing.T) {
	var d digest.Digest
	test.ExpectImplements(t, digest.NewRun(), d)
	test.ExpectImplements(t, digest.NewTrace(), d)
}

func TestRun(t *testing.T) {
	a, err := memory.NewRaster("", 2, 2)
	test.DemandSuccess(t, err)
	b := a.Clone()

	test.ExpectEquality(t, digest.Result(a, nil), digest.Result(b, nil))

	// same content with different dimensions
	c, err := memory.NewRaster("", 4, 1)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, digest.Result(a, nil), digest.Result(c, nil))

	// presence of output
	test.ExpectInequality(t, digest.Result(a, nil), digest.Result(a, b))

	// content
	b.Set(1, 1, 1)
	test.ExpectInequality(t, digest.Result(a, nil), digest.Result(b, nil))

	dig := digest.NewRun()
	empty := dig.Hash()
	dig.Add(a)
	test.ExpectInequality(t, dig.Hash(), empty)
	dig.ResetDigest()
	test.ExpectEquality(t, dig.Hash(), empty)
}

func TestTrace(t *testing.T) {
	ins := instructions.New(instructions.Halt)
	r := execution.Result{Word: instructions.Encode(ins), Instruction: ins, Words: 1, Final: true}

	a := digest.NewTrace()
	b := digest.NewTrace()
	empty := a.Hash()

	for i := 0; i < 3000; i++ {
		r.X = i % 7
		a.Step(r)
		b.Step(r)
	}
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectInequality(t, a.Hash(), empty)

	// hash is stable when nothing has been added
	h := a.Hash()
	test.ExpectEquality(t, a.Hash(), h)

	// non-final results are ignored
	r.Final = false
	a.Step(r)
	test.ExpectEquality(t, a.Hash(), h)

	r.Final = true
	r.BranchTaken = true
	a.Step(r)
	test.ExpectInequality(t, a.Hash(), h)

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), empty)
}
