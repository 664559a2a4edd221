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
	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/hardware/cpu/execution"
	"github.com/aryansw/chroma-vm/hardware/cpu/instructions"
	"github.com/aryansw/chroma-vm/hardware/memory"
	"github.com/aryansw/chroma-vm/imageloader"
)

// Disassembly represents the annotated disassembly of a program image.
type Disassembly struct {
	program *memory.Raster

	// entries in raster order
	entries []Entry
}

// FromRaster disassembles the raster. The raster is kept by the Disassembly
// and used by Refresh().
func FromRaster(program *memory.Raster) (*Disassembly, error) {
	if program == nil {
		return nil, curated.Errorf("disassembly: no program")
	}

	dsm := &Disassembly{
		program: program,
	}
	dsm.Refresh()

	return dsm, nil
}

// FromFile disassembles the image file.
func FromFile(filename string) (*Disassembly, error) {
	r, err := imageloader.Load(filename, memory.LabelProgram)
	if err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}
	return FromRaster(r)
}

// Refresh decodes every word of the program again. Execution information for
// words that have not changed is kept.
func (dsm *Disassembly) Refresh() {
	n := dsm.program.Len()

	if len(dsm.entries) != n {
		dsm.entries = make([]Entry, n)
	}

	for i := range dsm.entries {
		x, y := dsm.program.Coords(i)
		w, _ := dsm.program.Peek(x, y)
		if e := &dsm.entries[i]; e.Instruction.Defn == nil || e.Word != w {
			*e = newEntry(x, y, w)
		}
	}
}

// Plumb a new program raster into the disassembly. This is required when the
// machine memory has been replaced, for example by a rewind. The program
// must have the same dimensions as the current program for execution
// information to be kept.
func (dsm *Disassembly) Plumb(program *memory.Raster) {
	if program == nil {
		return
	}
	if program.Width() != dsm.program.Width() || program.Height() != dsm.program.Height() {
		dsm.entries = nil
	}
	dsm.program = program
	dsm.Refresh()
}

// Len returns the number of entries in the disassembly.
func (dsm *Disassembly) Len() int {
	return len(dsm.entries)
}

// Entry returns the entry at the coordinate. Returns nil if the coordinate is
// outside the program.
func (dsm *Disassembly) Entry(x, y int) *Entry {
	if !dsm.program.Contains(x, y) {
		return nil
	}
	return &dsm.entries[dsm.program.Index(x, y)]
}

// UpdateEntry updates the entry for an executed instruction. Results that
// are not final are ignored.
func (dsm *Disassembly) UpdateEntry(result execution.Result) {
	if !result.Final {
		return
	}

	e := dsm.Entry(result.X, result.Y)
	if e == nil {
		return
	}

	// the program has modified itself since the entry was decoded
	if e.Word != result.Word {
		*e = newEntry(result.X, result.Y, result.Word)
	}

	e.Level = EntryLevelExecuted
	e.Result = result
	e.ExecutedCount++
}

// Around returns up to n entries either side of the coordinate, including
// the entry at the coordinate.
func (dsm *Disassembly) Around(x, y int, n int) []*Entry {
	if !dsm.program.Contains(x, y) {
		return nil
	}

	idx := dsm.program.Index(x, y)
	from := max(0, idx-n)
	to := min(len(dsm.entries), idx+n+1)

	l := make([]*Entry, 0, to-from)
	for i := from; i < to; i++ {
		l = append(l, &dsm.entries[i])
	}
	return l
}

// Executed returns the number of entries that have been executed at least
// once.
func (dsm *Disassembly) Executed() int {
	var c int
	for i := range dsm.entries {
		if dsm.entries[i].Level == EntryLevelExecuted {
			c++
		}
	}
	return c
}

// IsHalt returns true if the entry decodes to a Halt instruction.
func (e *Entry) IsHalt() bool {
	return e.Instruction.Defn.Opcode == instructions.Halt
}
