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

package execution_test

import (
	"testing"

	"github.com/aryansw/chroma-vm/hardware/cpu/execution"
	"github.com/aryansw/chroma-vm/hardware/cpu/instructions"
	"github.com/aryansw/chroma-vm/test"
)

func TestValidity(t *testing.T) {
	var r execution.Result
	test.ExpectFailure(t, r.IsValid())
	test.ExpectEquality(t, r.String(), "???")

	ins := instructions.New(instructions.Jump, instructions.Operand{Index: 3})
	r = execution.Result{
		X:           1,
		Y:           2,
		Word:        instructions.Encode(ins),
		Instruction: ins,
		Words:       1,
		BranchTaken: true,
		Final:       true,
	}
	test.ExpectSuccess(t, r.IsValid())
	test.ExpectEquality(t, r.String(), "(1,2) 4c3000 jmp r3 *")

	r.Words = 2
	test.ExpectFailure(t, r.IsValid())

	r.Words = 1
	r.Word = 0
	test.ExpectFailure(t, r.IsValid())

	r.Reset()
	test.ExpectFailure(t, r.Final)
}
