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

// Opcode identifies an operation. The ordinal value of an opcode is
// significant and must not be changed.
type Opcode int

// List of opcodes.
const (
	LoadLow Opcode = iota
	LoadHigh
	Move
	Add
	Subtract
	Multiply
	Divide
	Modulo
	And
	Or
	Equal
	NotEqual
	GreaterThan
	LessThan
	GreaterThanEqual
	LessThanEqual
	Alloc
	MemCopy
	CurrAddress
	Jump
	Call
	JumpIf
	CallIf
	Return
	Push
	Pop
	Halt

	NumOpcodes
)

func (op Opcode) String() string {
	if op < 0 || op >= NumOpcodes {
		return "unknown opcode"
	}
	return Definitions[op].Mnemonic
}

// the arithmetic and comparison family. a reduced opcode in the family range
// selects the member at index (reduced % len(arithmetic))
var arithmetic = [...]Opcode{
	Add, Subtract, Multiply, Divide, Modulo, And, Or,
	Equal, NotEqual, GreaterThan, LessThan, GreaterThanEqual, LessThanEqual,
}

// reducedRange maps a contiguous range of reduced opcode values to opcodes.
// for a range of more than one value, the opcode is chosen with the sel
// function, which is given the reduced opcode value
type reducedRange struct {
	from int
	to   int
	sel  func(reduced int) Opcode
}

// offset returns a selector that picks from the list of opcodes by the
// distance of the reduced value from the start of the range
func offset(from int, ops ...Opcode) func(int) Opcode {
	return func(reduced int) Opcode {
		return ops[reduced-from]
	}
}

func fixed(op Opcode) func(int) Opcode {
	return func(_ int) Opcode {
		return op
	}
}

// the decode ranges. any reduced value not covered by a range decodes as Halt
var decodeRanges = []reducedRange{
	{from: 0, to: 1, sel: offset(0, LoadLow, LoadHigh)},
	{from: 2, to: 2, sel: fixed(Move)},
	{from: 3, to: 15, sel: func(reduced int) Opcode {
		return arithmetic[reduced%len(arithmetic)]
	}},
	{from: 16, to: 16, sel: fixed(Alloc)},
	{from: 17, to: 17, sel: fixed(MemCopy)},
	{from: 18, to: 18, sel: fixed(CurrAddress)},
	{from: 19, to: 20, sel: offset(19, Jump, Call)},
	{from: 21, to: 22, sel: offset(21, JumpIf, CallIf)},
	{from: 23, to: 23, sel: fixed(Return)},
	{from: 24, to: 25, sel: offset(24, Push, Pop)},
}

// lookup tables built from decodeRanges
var (
	reducedToOpcode [NumOpcodes]Opcode
	opcodeToRaw     [NumOpcodes]uint8
)

func init() {
	for i := range reducedToOpcode {
		reducedToOpcode[i] = Halt
	}

	for _, r := range decodeRanges {
		for reduced := r.from; reduced <= r.to; reduced++ {
			reducedToOpcode[reduced] = r.sel(reduced)
		}
	}

	// the canonical raw value of an opcode is the smallest reduced value that
	// maps to it. iterating backwards means the smallest value is written last
	for reduced := len(reducedToOpcode) - 1; reduced >= 0; reduced-- {
		opcodeToRaw[reducedToOpcode[reduced]] = uint8(reduced)
	}
}

// Reduce returns the opcode for a raw opcode value. Raw values are six bits
// wide but any value is accepted.
func Reduce(raw uint8) Opcode {
	return reducedToOpcode[int(raw)%int(NumOpcodes)]
}

// CanonicalRaw returns the raw opcode value used when encoding the opcode.
func CanonicalRaw(op Opcode) uint8 {
	return opcodeToRaw[op]
}
