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

package instructions_test

import (
	"testing"

	"github.com/aryansw/chroma-vm/hardware/cpu/instructions"
	"github.com/aryansw/chroma-vm/hardware/word"
	"github.com/aryansw/chroma-vm/test"
)

// raw builds a word with the raw opcode in the top six bits
func raw(op uint8) word.Word {
	return word.Word(uint32(op&0x3f) << 18)
}

func TestDefinitionsTable(t *testing.T) {
	test.ExpectEquality(t, len(instructions.Definitions), 27)
	for i, defn := range instructions.Definitions {
		test.ExpectEquality(t, defn.Opcode, instructions.Opcode(i))
		test.ExpectEquality(t, defn.Words, 1, defn.Mnemonic)
		test.ExpectInequality(t, defn.Mnemonic, "")
	}
}

func TestReduction(t *testing.T) {
	expected := []instructions.Opcode{
		instructions.LoadLow,
		instructions.LoadHigh,
		instructions.Move,
		instructions.Divide,
		instructions.Modulo,
		instructions.And,
		instructions.Or,
		instructions.Equal,
		instructions.NotEqual,
		instructions.GreaterThan,
		instructions.LessThan,
		instructions.GreaterThanEqual,
		instructions.LessThanEqual,
		instructions.Add,
		instructions.Subtract,
		instructions.Multiply,
		instructions.Alloc,
		instructions.MemCopy,
		instructions.CurrAddress,
		instructions.Jump,
		instructions.Call,
		instructions.JumpIf,
		instructions.CallIf,
		instructions.Return,
		instructions.Push,
		instructions.Pop,
		instructions.Halt,
	}

	for reduced, op := range expected {
		test.ExpectEquality(t, instructions.Reduce(uint8(reduced)), op, reduced)

		// raw values above 26 wrap around
		if reduced+27 < 64 {
			test.ExpectEquality(t, instructions.Reduce(uint8(reduced+27)), op, reduced+27)
		}
		if reduced+54 < 64 {
			test.ExpectEquality(t, instructions.Reduce(uint8(reduced+54)), op, reduced+54)
		}
	}

	// raw value 63 reduces to 9, the GreaterThan member of the arithmetic family
	test.ExpectEquality(t, instructions.Reduce(63), instructions.GreaterThan)
}

func TestCanonicalRaw(t *testing.T) {
	test.ExpectEquality(t, instructions.CanonicalRaw(instructions.LoadLow), uint8(0))
	test.ExpectEquality(t, instructions.CanonicalRaw(instructions.Add), uint8(13))
	test.ExpectEquality(t, instructions.CanonicalRaw(instructions.Divide), uint8(3))
	test.ExpectEquality(t, instructions.CanonicalRaw(instructions.Halt), uint8(26))

	for op := instructions.Opcode(0); op < instructions.NumOpcodes; op++ {
		test.ExpectEquality(t, instructions.Reduce(instructions.CanonicalRaw(op)), op)
	}
}

func TestDecodeFields(t *testing.T) {
	// add r1, [r2], r31
	w := raw(13) | word.Word(0x01<<12) | word.Word(0x22<<6) | word.Word(0x1f)
	ins := instructions.Decode(w)
	test.ExpectEquality(t, ins.Defn.Opcode, instructions.Add)
	test.ExpectEquality(t, ins.Operands[0], instructions.Operand{Index: 1})
	test.ExpectEquality(t, ins.Operands[1], instructions.Operand{Deref: true, Index: 2})
	test.ExpectEquality(t, ins.Operands[2], instructions.Operand{Index: 31})
	test.ExpectEquality(t, ins.String(), "add r1, [r2], ip")

	// ldh [r3], 0xabc
	w = raw(1) | word.Word(0x23<<12) | word.Word(0xabc)
	ins = instructions.Decode(w)
	test.ExpectEquality(t, ins.Defn.Opcode, instructions.LoadHigh)
	test.ExpectEquality(t, ins.Operands[0], instructions.Operand{Deref: true, Index: 3})
	test.ExpectEquality(t, ins.Operands[1], instructions.Operand{})
	test.ExpectEquality(t, ins.Immediate, uint32(0xabc))
	test.ExpectEquality(t, ins.String(), "ldh [r3], 0xabc")

	// alloc takes size then destination
	w = raw(16) | word.Word(0x04<<12) | word.Word(0x05<<6) | word.Word(0x3f)
	ins = instructions.Decode(w)
	test.ExpectEquality(t, ins.Defn.Opcode, instructions.Alloc)
	test.ExpectEquality(t, ins.Operands[0].Index, uint8(4))
	test.ExpectEquality(t, ins.Operands[1].Index, uint8(5))

	// unused third field is ignored
	test.ExpectEquality(t, ins.Operands[2], instructions.Operand{})

	// halt ignores every operand field
	ins = instructions.Decode(raw(26) | 0xffff)
	test.ExpectEquality(t, ins.Defn.Opcode, instructions.Halt)
	test.ExpectEquality(t, ins.String(), "halt")
}

func TestSingleWordHalt(t *testing.T) {
	// a black pixel is LoadLow r0, 0
	ins := instructions.Decode(0x000000)
	test.ExpectEquality(t, ins.Defn.Opcode, instructions.LoadLow)

	// a pixel with a red channel of 0x68 has raw opcode 26
	ins = instructions.Decode(word.FromBytes(0x68, 0x00, 0x00))
	test.ExpectEquality(t, ins.Defn.Opcode, instructions.Halt)

	// a white pixel has raw opcode 63
	ins = instructions.Decode(0xffffff)
	test.ExpectEquality(t, ins.Defn.Opcode, instructions.GreaterThan)
}

func TestEncodeDecode(t *testing.T) {
	operands := []instructions.Operand{
		{Index: 0},
		{Index: 17, Deref: true},
		{Index: 31},
	}

	for op := instructions.Opcode(0); op < instructions.NumOpcodes; op++ {
		ins := instructions.New(op, operands...)
		if ins.Defn.Operands.HasImmediate() {
			ins = instructions.NewImmediate(op, operands[1], 0x5a5)
		}
		d := instructions.Decode(instructions.Encode(ins))
		test.ExpectSuccess(t, d.Equal(ins), ins.String())
		test.ExpectEquality(t, d.String(), ins.String())
	}

	// every word survives a decode/encode cycle when its unused fields are
	// zero and its opcode is canonical
	for _, w := range []word.Word{0x000000, 0x680000, 0x3413c5, 0x041fff} {
		test.ExpectEquality(t, instructions.Encode(instructions.Decode(w)), w)
	}
}

func TestLookup(t *testing.T) {
	defn, ok := instructions.Lookup("mcpy")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, defn.Opcode, instructions.MemCopy)

	_, ok = instructions.Lookup("nop")
	test.ExpectFailure(t, ok)

	defn, _ = instructions.Lookup("cif")
	test.ExpectSuccess(t, defn.Conditional)
	test.ExpectSuccess(t, defn.IsBranch())
}
