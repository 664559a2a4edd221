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

package memory

import (
	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/hardware/word"
	"github.com/aryansw/chroma-vm/logger"
)

// Labels of the three rasters in Memory.
const (
	LabelProgram = "program"
	LabelInput   = "input"
	LabelOutput  = "output"
)

// Memory bundles the program, input and output rasters of a machine.
// Memory implements the Bus interface by addressing the program raster.
type Memory struct {
	Program *Raster

	// Input is nil if no input image was supplied
	Input *Raster

	// Output is nil until the first call to MaterialiseOutput() or Alloc()
	Output *Raster

	// the linear index of the next free word in the output raster
	allocNext int
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The input raster can be nil. If it is not nil, it is made read-only.
func NewMemory(program *Raster, input *Raster) (*Memory, error) {
	if program == nil {
		return nil, curated.Errorf(InvalidImage, "no program")
	}
	if err := checkDimensions(program.width, program.height); err != nil {
		return nil, err
	}
	program.Label = LabelProgram

	if input != nil {
		if err := checkDimensions(input.width, input.height); err != nil {
			return nil, err
		}
		input.Label = LabelInput
		input.SetReadOnly()
	}

	return &Memory{
		Program: program,
		Input:   input,
	}, nil
}

// Read implements the Bus interface.
func (mem *Memory) Read(x, y int) (word.Word, error) {
	return mem.Program.Get(x, y)
}

// Write implements the Bus interface.
func (mem *Memory) Write(x, y int, w word.Word) error {
	return mem.Program.Set(x, y, w)
}

// Peek implements the DebuggerBus interface.
func (mem *Memory) Peek(x, y int) (word.Word, bool) {
	return mem.Program.Peek(x, y)
}

// Poke implements the DebuggerBus interface.
func (mem *Memory) Poke(x, y int, w word.Word) error {
	return mem.Program.Set(x, y, w)
}

// MaterialiseOutput creates the output raster if it does not already exist.
// The output raster has the same dimensions as the program raster and is
// zero-filled.
func (mem *Memory) MaterialiseOutput() *Raster {
	if mem.Output == nil {
		// dimensions of the program have already been checked so the error
		// can be ignored
		mem.Output, _ = NewRaster(LabelOutput, mem.Program.width, mem.Program.height)
		mem.allocNext = 0
		logger.Logf(logger.Allow, "memory", "output materialised (%dx%d)", mem.Output.width, mem.Output.height)
	}
	return mem.Output
}

// Alloc reserves size consecutive words in the output raster, starting at the
// next free word. The output raster is materialised if necessary. Returns
// the coordinate of the first reserved word.
func (mem *Memory) Alloc(size uint32) (int, int, error) {
	out := mem.MaterialiseOutput()

	if uint64(size) > uint64(out.Len()-mem.allocNext) {
		x, y := out.Coords(mem.allocNext + int(size))
		return 0, 0, out.outOfBounds(x, y)
	}

	x, y := out.Coords(mem.allocNext)

	// a zero sized allocation from a full output raster of maximum height
	// has a base address that a word can't hold
	if !word.CanAddress(x, y) {
		return 0, 0, out.outOfBounds(x, y)
	}

	mem.allocNext += int(size)

	return x, y, nil
}

// Allocated returns the number of words reserved in the output raster.
func (mem *Memory) Allocated() int {
	return mem.allocNext
}

// Next returns the coordinate n positions after (x, y) in the raster order
// of the program.
func (mem *Memory) Next(x, y int, n int) (int, int) {
	return mem.Program.Next(x, y, n)
}

// Bounds returns the dimensions of the program raster.
func (mem *Memory) Bounds() (int, int) {
	return mem.Program.width, mem.Program.height
}

// CheckAddress returns an AddressOutOfBounds error if the coordinate is not
// in the program raster.
func (mem *Memory) CheckAddress(x, y int) error {
	if !mem.Program.Contains(x, y) {
		return mem.Program.outOfBounds(x, y)
	}
	return nil
}

// Copy n words from the source coordinate to the destination coordinate,
// both in the program raster. Words are copied in raster order and the
// source and destination regions may overlap.
func (mem *Memory) Copy(dstX, dstY, srcX, srcY int, n uint32) error {
	if err := mem.CheckAddress(srcX, srcY); err != nil {
		return err
	}
	if err := mem.CheckAddress(dstX, dstY); err != nil {
		return err
	}

	p := mem.Program
	src := p.Index(srcX, srcY)
	dst := p.Index(dstX, dstY)

	if uint64(n) > uint64(p.Len()-src) {
		x, y := p.Coords(src + int(n) - 1)
		return p.outOfBounds(x, y)
	}
	if uint64(n) > uint64(p.Len()-dst) {
		x, y := p.Coords(dst + int(n) - 1)
		return p.outOfBounds(x, y)
	}

	copy(p.data[dst:dst+int(n)], p.data[src:src+int(n)])

	return nil
}

// Snapshot creates a copy of memory in its current state. The input raster
// is never written to and is shared with the copy.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	n.Program = mem.Program.Clone()
	if mem.Output != nil {
		n.Output = mem.Output.Clone()
	}
	return &n
}
