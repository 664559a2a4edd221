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

package cpu_test

import (
	"testing"

	"github.com/aryansw/chroma-vm/hardware/cpu"
	"github.com/aryansw/chroma-vm/hardware/cpu/instructions"
	"github.com/aryansw/chroma-vm/hardware/memory"
	"github.com/aryansw/chroma-vm/hardware/word"
	"github.com/aryansw/chroma-vm/test"
)

// r is a direct register operand
func r(idx uint8) instructions.Operand {
	return instructions.Operand{Index: idx}
}

// d is a dereferenced register operand
func d(idx uint8) instructions.Operand {
	return instructions.Operand{Deref: true, Index: idx}
}

func op(opcode instructions.Opcode, operands ...instructions.Operand) word.Word {
	return instructions.Encode(instructions.New(opcode, operands...))
}

func imm(opcode instructions.Opcode, dst instructions.Operand, v uint32) word.Word {
	return instructions.Encode(instructions.NewImmediate(opcode, dst, v))
}

// newCPU creates a CPU with a program of the specified width. the program
// height is the minimum required to hold the words. any unused words at the
// end of the program are filled with halt instructions
func newCPU(t *testing.T, width int, words ...word.Word) (*cpu.CPU, *memory.Memory) {
	t.Helper()

	height := (len(words) + width - 1) / width
	program, err := memory.NewRaster("", width, height)
	test.DemandSuccess(t, err)

	for i := 0; i < program.Len(); i++ {
		x, y := program.Coords(i)
		w := op(instructions.Halt)
		if i < len(words) {
			w = words[i]
		}
		test.DemandSuccess(t, program.Set(x, y, w))
	}

	mem, err := memory.NewMemory(program, nil)
	test.DemandSuccess(t, err)

	return cpu.NewCPU(mem, 16), mem
}

// step executes n instructions, failing the test on any error
func step(t *testing.T, mc *cpu.CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		test.DemandSuccess(t, mc.ExecuteInstruction())
	}
}

// run executes instructions until the CPU halts or an error occurs
func run(mc *cpu.CPU) error {
	for mc.Halted() == cpu.NotHalted {
		if err := mc.ExecuteInstruction(); err != nil {
			return err
		}
	}
	return nil
}

func reg(t *testing.T, mc *cpu.CPU, idx int) word.Word {
	t.Helper()
	v, err := mc.Reg.Read(idx)
	test.DemandSuccess(t, err)
	return v
}

func expectIP(t *testing.T, mc *cpu.CPU, x, y int) {
	t.Helper()
	ix, iy := mc.Reg.ReadIP()
	test.ExpectEquality(t, ix, x, "ip x")
	test.ExpectEquality(t, iy, y, "ip y")
}
