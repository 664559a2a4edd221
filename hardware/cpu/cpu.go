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

package cpu

import (
	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/hardware/cpu/execution"
	"github.com/aryansw/chroma-vm/hardware/cpu/instructions"
	"github.com/aryansw/chroma-vm/hardware/cpu/registers"
	"github.com/aryansw/chroma-vm/hardware/memory"
	"github.com/aryansw/chroma-vm/hardware/word"
	"github.com/aryansw/chroma-vm/logger"
)

// Memory defines the memory operations required by the CPU. All coordinates
// refer to the program raster except for those returned by Alloc(), which
// refer to the output raster.
type Memory interface {
	memory.Bus
	memory.DebuggerBus

	Alloc(size uint32) (int, int, error)
	Copy(dstX, dstY, srcX, srcY int, n uint32) error
	Next(x, y int, n int) (int, int)
	Bounds() (int, int)
	CheckAddress(x, y int) error
}

// HaltReason explains why the CPU is no longer running.
type HaltReason int

// List of halt reasons.
const (
	NotHalted HaltReason = iota
	HaltInstruction
	EndOfProgram
)

func (r HaltReason) String() string {
	switch r {
	case NotHalted:
		return "running"
	case HaltInstruction:
		return "halt instruction"
	case EndOfProgram:
		return "end of program"
	}
	return "unknown halt reason"
}

// CPU executes instructions from the program raster.
type CPU struct {
	Reg   *registers.File
	Stack *Stack

	mem Memory

	// the result of the most recent call to ExecuteInstruction(). the result
	// is only valid if LastResult.Final is true
	LastResult execution.Result

	halted HaltReason
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// stackDepth argument is the maximum number of stack entries. A value of zero
// means the stack is unbounded.
func NewCPU(mem Memory, stackDepth int) *CPU {
	return &CPU{
		Reg:   registers.NewFile(),
		Stack: NewStack(stackDepth),
		mem:   mem,
	}
}

// Reset the CPU. Registers are zeroed and the stack is emptied. The
// instruction pointer is at the first word of the program.
func (mc *CPU) Reset() {
	mc.Reg.Reset()
	mc.Stack.Reset()
	mc.LastResult.Reset()
	mc.halted = NotHalted
}

// Halted returns the reason the CPU has halted. Returns NotHalted if the CPU
// is still running.
func (mc *CPU) Halted() HaltReason {
	return mc.halted
}

func (mc *CPU) halt(reason HaltReason) {
	mc.halted = reason
	x, y := mc.Reg.ReadIP()
	logger.Logf(logger.Allow, "cpu", "halted at (%d,%d): %s", x, y, reason)
}

// read the value referred to by the operand
func (mc *CPU) read(o instructions.Operand) (word.Word, error) {
	v, err := mc.Reg.Read(int(o.Index))
	if err != nil {
		return 0, err
	}
	if !o.Deref {
		return v, nil
	}
	x, y := v.Address()
	return mc.mem.Read(x, y)
}

// write to the location referred to by the operand
func (mc *CPU) write(o instructions.Operand, v word.Word) error {
	if !o.Deref {
		return mc.Reg.Write(int(o.Index), v)
	}
	a, err := mc.Reg.Read(int(o.Index))
	if err != nil {
		return err
	}
	x, y := a.Address()
	return mc.mem.Write(x, y, v)
}

// readAddress reads the operand and checks that it is a valid address in the
// program raster
func (mc *CPU) readAddress(o instructions.Operand) (int, int, error) {
	v, err := mc.read(o)
	if err != nil {
		return 0, 0, err
	}
	x, y := v.Address()
	if err := mc.mem.CheckAddress(x, y); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// ExecuteInstruction fetches, decodes and executes the instruction at the
// instruction pointer. Returns nil without doing anything if the CPU has
// already halted.
//
// Any error is fatal and the CPU should not be used again until Reset() has
// been called. The instruction pointer is not advanced when an error occurs.
func (mc *CPU) ExecuteInstruction() error {
	if mc.halted != NotHalted {
		return nil
	}

	mc.LastResult.Reset()
	mc.Reg.ClearIPWritten()

	x, y := mc.Reg.ReadIP()
	w, ok := mc.mem.Peek(x, y)
	if !ok {
		mc.halt(EndOfProgram)
		return nil
	}

	ins := instructions.Decode(w)

	mc.LastResult.X = x
	mc.LastResult.Y = y
	mc.LastResult.Word = w
	mc.LastResult.Instruction = ins
	mc.LastResult.Words = ins.Defn.Words

	redirected, err := mc.apply(ins, x, y)
	if err != nil {
		return err
	}

	mc.LastResult.Final = true

	if ins.Defn.Opcode == instructions.Halt {
		mc.halt(HaltInstruction)
		return nil
	}

	// writing to the instruction pointer register is the same as a jump
	if !redirected && mc.Reg.IPWritten() {
		tx, ty := mc.Reg.ReadIP()
		if err := mc.mem.CheckAddress(tx, ty); err != nil {
			mc.LastResult.Final = false
			return err
		}
		redirected = true
	}

	if redirected {
		mc.LastResult.BranchTaken = true
		return nil
	}

	nx, ny := mc.mem.Next(x, y, ins.Defn.Words)
	mc.Reg.WriteIP(nx, ny)

	// the advance may take the instruction pointer to a coordinate that can't
	// be represented by a word so the end of the program must be detected
	// here rather than at the next fetch
	if _, ok := mc.mem.Peek(nx, ny); !ok {
		mc.halt(EndOfProgram)
	}

	return nil
}

// apply the effect of the instruction. returns true if the instruction
// redirected the flow of the program
func (mc *CPU) apply(ins instructions.Instruction, x, y int) (bool, error) {
	ops := ins.Operands

	switch ins.Defn.Opcode {
	case instructions.LoadLow:
		v, err := mc.read(ops[0])
		if err != nil {
			return false, err
		}
		return false, mc.write(ops[0], v&0xfff000|word.Word(ins.Immediate))

	case instructions.LoadHigh:
		v, err := mc.read(ops[0])
		if err != nil {
			return false, err
		}
		return false, mc.write(ops[0], v&0x000fff|word.Word(ins.Immediate)<<12)

	case instructions.Move:
		v, err := mc.read(ops[1])
		if err != nil {
			return false, err
		}
		return false, mc.write(ops[0], v)

	case instructions.Add, instructions.Subtract, instructions.Multiply,
		instructions.Divide, instructions.Modulo, instructions.And, instructions.Or,
		instructions.Equal, instructions.NotEqual, instructions.GreaterThan,
		instructions.LessThan, instructions.GreaterThanEqual, instructions.LessThanEqual:

		a, err := mc.read(ops[1])
		if err != nil {
			return false, err
		}
		b, err := mc.read(ops[2])
		if err != nil {
			return false, err
		}
		v, err := arithmetic(ins.Defn.Opcode, a.Scalar(), b.Scalar())
		if err != nil {
			return false, err
		}
		return false, mc.write(ops[0], word.FromScalar(v))

	case instructions.Alloc:
		size, err := mc.read(ops[0])
		if err != nil {
			return false, err
		}
		ax, ay, err := mc.mem.Alloc(size.Scalar())
		if err != nil {
			return false, err
		}
		return false, mc.write(ops[1], word.FromAddress(ax, ay))

	case instructions.MemCopy:
		dst, err := mc.read(ops[0])
		if err != nil {
			return false, err
		}
		src, err := mc.read(ops[1])
		if err != nil {
			return false, err
		}
		n, err := mc.read(ops[2])
		if err != nil {
			return false, err
		}
		dx, dy := dst.Address()
		sx, sy := src.Address()
		return false, mc.mem.Copy(dx, dy, sx, sy, n.Scalar())

	case instructions.CurrAddress:
		return false, mc.write(ops[0], word.FromAddress(x, y))

	case instructions.Jump:
		return mc.jump(ops[0])

	case instructions.JumpIf:
		cond, err := mc.read(ops[0])
		if err != nil {
			return false, err
		}
		if cond.Scalar() == 0 {
			return false, nil
		}
		return mc.jump(ops[1])

	case instructions.Call:
		return mc.call(ops[0], ins, x, y)

	case instructions.CallIf:
		cond, err := mc.read(ops[0])
		if err != nil {
			return false, err
		}
		if cond.Scalar() == 0 {
			return false, nil
		}
		return mc.call(ops[1], ins, x, y)

	case instructions.Return:
		v, err := mc.Stack.Pop(ins.Defn.Mnemonic)
		if err != nil {
			return false, err
		}
		tx, ty := v.Address()

		// returning to the position after the last word of the program is
		// allowed. the CPU will halt on the next fetch
		w, h := mc.mem.Bounds()
		if ex, ey := mc.mem.Next(w-1, h-1, 1); tx != ex || ty != ey {
			if err := mc.mem.CheckAddress(tx, ty); err != nil {
				return false, err
			}
		}
		mc.Reg.WriteIP(tx, ty)
		return true, nil

	case instructions.Push:
		v, err := mc.read(ops[0])
		if err != nil {
			return false, err
		}
		return false, mc.Stack.Push(v)

	case instructions.Pop:
		v, err := mc.Stack.Pop(ins.Defn.Mnemonic)
		if err != nil {
			return false, err
		}
		return false, mc.write(ops[0], v)

	case instructions.Halt:
		return false, nil
	}

	return false, curated.Errorf("cpu: unimplemented instruction (%s)", ins.Defn.Mnemonic)
}

func (mc *CPU) jump(target instructions.Operand) (bool, error) {
	tx, ty, err := mc.readAddress(target)
	if err != nil {
		return false, err
	}
	mc.Reg.WriteIP(tx, ty)
	return true, nil
}

func (mc *CPU) call(target instructions.Operand, ins instructions.Instruction, x, y int) (bool, error) {
	tx, ty, err := mc.readAddress(target)
	if err != nil {
		return false, err
	}
	sx, sy := mc.mem.Next(x, y, ins.Defn.Words)

	// the successor of the last word in a program of maximum height can't be
	// stored on the stack without wrapping to the top of the program
	if !word.CanAddress(sx, sy) {
		return false, mc.mem.CheckAddress(sx, sy)
	}

	if err := mc.Stack.Push(word.FromAddress(sx, sy)); err != nil {
		return false, err
	}
	mc.Reg.WriteIP(tx, ty)
	return true, nil
}

// arithmetic performs the operation for the arithmetic and comparison family
// of instructions. the result is truncated to 24 bits by the caller
func arithmetic(op instructions.Opcode, a, b uint32) (uint32, error) {
	switch op {
	case instructions.Add:
		return a + b, nil
	case instructions.Subtract:
		return a - b, nil
	case instructions.Multiply:
		return uint32(uint64(a) * uint64(b)), nil
	case instructions.Divide:
		if b == 0 {
			return 0, curated.Errorf(ArithmeticFault, "divide")
		}
		return a / b, nil
	case instructions.Modulo:
		if b == 0 {
			return 0, curated.Errorf(ArithmeticFault, "modulo")
		}
		return a % b, nil
	case instructions.And:
		return a & b, nil
	case instructions.Or:
		return a | b, nil
	case instructions.Equal:
		return boolean(a == b), nil
	case instructions.NotEqual:
		return boolean(a != b), nil
	case instructions.GreaterThan:
		return boolean(a > b), nil
	case instructions.LessThan:
		return boolean(a < b), nil
	case instructions.GreaterThanEqual:
		return boolean(a >= b), nil
	case instructions.LessThanEqual:
		return boolean(a <= b), nil
	}
	return 0, curated.Errorf("cpu: %s is not an arithmetic instruction", op)
}

func boolean(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// Snapshot creates a copy of the CPU in its current state. The copy is not
// attached to any memory until Plumb() is called.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	reg := *mc.Reg
	n.Reg = &reg
	n.Stack = &Stack{
		entries:  mc.Stack.Entries(),
		maxDepth: mc.Stack.maxDepth,
	}
	n.mem = nil
	return &n
}

// Plumb attaches the CPU to a new memory instance.
func (mc *CPU) Plumb(mem Memory) {
	mc.mem = mem
}
