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

package instructions

import (
	"fmt"
	"strings"

	"github.com/aryansw/chroma-vm/hardware/cpu/registers"
	"github.com/aryansw/chroma-vm/hardware/word"
)

// field positions, as shifts from the least significant bit of the word
const (
	opcodeShift   = 18
	operandShift0 = 12
	operandShift1 = 6
	operandShift2 = 0

	fieldMask     = 0x3f
	derefBit      = 0x20
	indexMask     = 0x1f
	ImmediateMask = 0xfff
)

var operandShifts = [3]uint{operandShift0, operandShift1, operandShift2}

// Operand is a register operand. If Deref is true, the value of the register
// is an address in the program raster and the operand refers to the word at
// that address.
type Operand struct {
	Deref bool
	Index uint8
}

func operandFromField(f uint32) Operand {
	return Operand{
		Deref: f&derefBit == derefBit,
		Index: uint8(f & indexMask),
	}
}

func (o Operand) field() uint32 {
	f := uint32(o.Index) & indexMask
	if o.Deref {
		f |= derefBit
	}
	return f
}

func (o Operand) String() string {
	if o.Deref {
		return fmt.Sprintf("[%s]", registers.Label(int(o.Index)))
	}
	return registers.Label(int(o.Index))
}

// Instruction is a decoded instruction word. Operands and Immediate fields
// not used by the Definition's layout are always zero.
type Instruction struct {
	Defn      *Definition
	Operands  [3]Operand
	Immediate uint32
}

// Decode a word into an instruction. Decoding never fails. A word that does
// not match any opcode decodes as Halt.
func Decode(w word.Word) Instruction {
	w &= word.Mask

	op := Reduce(uint8((w >> opcodeShift) & fieldMask))
	ins := Instruction{
		Defn: &Definitions[op],
	}

	for i := 0; i < ins.Defn.Operands.NumOperands(); i++ {
		ins.Operands[i] = operandFromField(uint32(w>>operandShifts[i]) & fieldMask)
	}

	if ins.Defn.Operands.HasImmediate() {
		ins.Immediate = uint32(w) & ImmediateMask
	}

	return ins
}

// Encode an instruction as a word. The raw opcode of the word is the
// canonical raw value for the opcode. Encode is the inverse of Decode() for
// instructions with zeroed unused fields.
func Encode(ins Instruction) word.Word {
	if ins.Defn == nil {
		return Encode(Instruction{Defn: &Definitions[Halt]})
	}

	w := uint32(CanonicalRaw(ins.Defn.Opcode)) << opcodeShift

	for i := 0; i < ins.Defn.Operands.NumOperands(); i++ {
		w |= ins.Operands[i].field() << operandShifts[i]
	}

	if ins.Defn.Operands.HasImmediate() {
		w |= ins.Immediate & ImmediateMask
	}

	return word.Word(w)
}

// New creates an instruction for the opcode. Unused operands are ignored.
func New(op Opcode, operands ...Operand) Instruction {
	ins := Instruction{Defn: &Definitions[op]}
	for i := 0; i < len(operands) && i < ins.Defn.Operands.NumOperands(); i++ {
		ins.Operands[i] = operands[i]
	}
	return ins
}

// NewImmediate creates a LoadLow or LoadHigh instruction.
func NewImmediate(op Opcode, dst Operand, imm uint32) Instruction {
	ins := New(op, dst)
	if ins.Defn.Operands.HasImmediate() {
		ins.Immediate = imm & ImmediateMask
	}
	return ins
}

// Equal returns true if both instructions are the same. Definitions are
// compared by opcode.
func (ins Instruction) Equal(o Instruction) bool {
	if ins.Defn == nil || o.Defn == nil {
		return ins.Defn == o.Defn
	}
	return ins.Defn.Opcode == o.Defn.Opcode && ins.Operands == o.Operands && ins.Immediate == o.Immediate
}

// String returns the instruction in assembler syntax.
func (ins Instruction) String() string {
	if ins.Defn == nil {
		return "???"
	}

	s := strings.Builder{}
	s.WriteString(ins.Defn.Mnemonic)

	n := ins.Defn.Operands.NumOperands()
	for i := 0; i < n; i++ {
		if i == 0 {
			s.WriteString(" ")
		} else {
			s.WriteString(", ")
		}
		s.WriteString(ins.Operands[i].String())
	}

	if ins.Defn.Operands.HasImmediate() {
		s.WriteString(fmt.Sprintf(", %#03x", ins.Immediate))
	}

	return s.String()
}
