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

import "fmt"

// Layout describes the operand fields used by an instruction.
type Layout int

// List of operand layouts.
const (
	// no operands
	None Layout = iota

	// one register operand
	Reg

	// one register operand and a 12 bit immediate
	RegImm

	// two register operands
	RegReg

	// three register operands
	RegRegReg
)

// NumOperands returns the number of register operands for the layout.
func (l Layout) NumOperands() int {
	switch l {
	case Reg, RegImm:
		return 1
	case RegReg:
		return 2
	case RegRegReg:
		return 3
	}
	return 0
}

// HasImmediate returns true if the layout includes an immediate value.
func (l Layout) HasImmediate() bool {
	return l == RegImm
}

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	// the instruction writes to its first operand
	Write EffectCategory = iota

	// the instruction reads and writes raster memory in bulk
	Memory

	// the instruction may redirect the instruction pointer
	Flow

	// the instruction uses the stack and may redirect the instruction
	// pointer
	Subroutine

	// the instruction pushes or pops the stack
	Stack

	// the instruction stops the machine
	Stop
)

func (e EffectCategory) String() string {
	switch e {
	case Write:
		return "Write"
	case Memory:
		return "Memory"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Stack:
		return "Stack"
	case Stop:
		return "Stop"
	}
	return "unknown effect"
}

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	Opcode   Opcode
	Mnemonic string
	Operands Layout

	// number of words consumed by the instruction
	Words int

	Effect EffectCategory

	// the instruction only takes effect if the first operand is non-zero
	Conditional bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dwords [operands=%d imm=%t effect=%s]",
		CanonicalRaw(defn.Opcode), defn.Mnemonic, defn.Words,
		defn.Operands.NumOperands(), defn.Operands.HasImmediate(), defn.Effect)
}

// IsBranch returns true if the instruction can redirect the instruction
// pointer.
func (defn Definition) IsBranch() bool {
	return defn.Effect == Flow || defn.Effect == Subroutine
}

// Definitions is the instruction set table, indexed by Opcode.
var Definitions = [NumOpcodes]Definition{
	{Opcode: LoadLow, Mnemonic: "ldl", Operands: RegImm, Words: 1, Effect: Write},
	{Opcode: LoadHigh, Mnemonic: "ldh", Operands: RegImm, Words: 1, Effect: Write},
	{Opcode: Move, Mnemonic: "mov", Operands: RegReg, Words: 1, Effect: Write},
	{Opcode: Add, Mnemonic: "add", Operands: RegRegReg, Words: 1, Effect: Write},
	{Opcode: Subtract, Mnemonic: "sub", Operands: RegRegReg, Words: 1, Effect: Write},
	{Opcode: Multiply, Mnemonic: "mul", Operands: RegRegReg, Words: 1, Effect: Write},
	{Opcode: Divide, Mnemonic: "div", Operands: RegRegReg, Words: 1, Effect: Write},
	{Opcode: Modulo, Mnemonic: "mod", Operands: RegRegReg, Words: 1, Effect: Write},
	{Opcode: And, Mnemonic: "and", Operands: RegRegReg, Words: 1, Effect: Write},
	{Opcode: Or, Mnemonic: "or", Operands: RegRegReg, Words: 1, Effect: Write},
	{Opcode: Equal, Mnemonic: "eq", Operands: RegRegReg, Words: 1, Effect: Write},
	{Opcode: NotEqual, Mnemonic: "ne", Operands: RegRegReg, Words: 1, Effect: Write},
	{Opcode: GreaterThan, Mnemonic: "gt", Operands: RegRegReg, Words: 1, Effect: Write},
	{Opcode: LessThan, Mnemonic: "lt", Operands: RegRegReg, Words: 1, Effect: Write},
	{Opcode: GreaterThanEqual, Mnemonic: "ge", Operands: RegRegReg, Words: 1, Effect: Write},
	{Opcode: LessThanEqual, Mnemonic: "le", Operands: RegRegReg, Words: 1, Effect: Write},
	{Opcode: Alloc, Mnemonic: "alloc", Operands: RegReg, Words: 1, Effect: Memory},
	{Opcode: MemCopy, Mnemonic: "mcpy", Operands: RegRegReg, Words: 1, Effect: Memory},
	{Opcode: CurrAddress, Mnemonic: "curr", Operands: Reg, Words: 1, Effect: Write},
	{Opcode: Jump, Mnemonic: "jmp", Operands: Reg, Words: 1, Effect: Flow},
	{Opcode: Call, Mnemonic: "call", Operands: Reg, Words: 1, Effect: Subroutine},
	{Opcode: JumpIf, Mnemonic: "jif", Operands: RegReg, Words: 1, Effect: Flow, Conditional: true},
	{Opcode: CallIf, Mnemonic: "cif", Operands: RegReg, Words: 1, Effect: Subroutine, Conditional: true},
	{Opcode: Return, Mnemonic: "ret", Operands: None, Words: 1, Effect: Subroutine},
	{Opcode: Push, Mnemonic: "push", Operands: Reg, Words: 1, Effect: Stack},
	{Opcode: Pop, Mnemonic: "pop", Operands: Reg, Words: 1, Effect: Stack},
	{Opcode: Halt, Mnemonic: "halt", Operands: None, Words: 1, Effect: Stop},
}

// Lookup returns the definition for the mnemonic. Mnemonics are lower case.
func Lookup(mnemonic string) (*Definition, bool) {
	for i := range Definitions {
		if Definitions[i].Mnemonic == mnemonic {
			return &Definitions[i], true
		}
	}
	return nil, false
}
