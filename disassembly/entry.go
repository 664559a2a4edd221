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

package disassembly

import (
	"fmt"

	"github.com/aryansw/chroma-vm/hardware/cpu/execution"
	"github.com/aryansw/chroma-vm/hardware/cpu/instructions"
	"github.com/aryansw/chroma-vm/hardware/word"
)

// EntryLevel describes the level of confidence in the disassembly entry.
type EntryLevel int

// List of valid EntryLevel values.
const (
	// the entry has been decoded but may not be reachable
	EntryLevelDecoded EntryLevel = iota

	// the entry has been executed at least once
	EntryLevelExecuted
)

// Entry is a disassambled instruction.
type Entry struct {
	X, Y int

	Word        word.Word
	Instruction instructions.Instruction

	Level EntryLevel

	// the most recent execution of the entry. only valid if Level is
	// EntryLevelExecuted
	Result execution.Result

	// number of times the entry has been executed
	ExecutedCount int
}

func newEntry(x, y int, w word.Word) Entry {
	return Entry{
		X:           x,
		Y:           y,
		Word:        w,
		Instruction: instructions.Decode(w),
	}
}

// Address returns the address of the entry as a string.
func (e *Entry) Address() string {
	return fmt.Sprintf("(%d,%d)", e.X, e.Y)
}

// Bytecode returns the word of the entry as a string.
func (e *Entry) Bytecode() string {
	return fmt.Sprintf("%06x", uint32(e.Word))
}

// Notes returns information about the execution of the entry.
func (e *Entry) Notes() string {
	if e.Level < EntryLevelExecuted {
		return ""
	}

	defn := e.Instruction.Defn
	if defn.IsBranch() && defn.Conditional {
		if e.Result.BranchTaken {
			return fmt.Sprintf("x%d taken", e.ExecutedCount)
		}
		return fmt.Sprintf("x%d not taken", e.ExecutedCount)
	}

	// writes to the instruction pointer register
	if !defn.IsBranch() && e.Result.BranchTaken {
		return fmt.Sprintf("x%d redirect", e.ExecutedCount)
	}

	return fmt.Sprintf("x%d", e.ExecutedCount)
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s %s", e.Address(), e.Instruction)
}
