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

package memory_test

import (
	"testing"

	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/hardware/memory"
	"github.com/aryansw/chroma-vm/hardware/word"
	"github.com/aryansw/chroma-vm/test"
)

func TestOversized(t *testing.T) {
	_, err := memory.NewRaster("test", 5000, 10)
	test.ExpectSuccess(t, curated.Is(err, memory.OversizedImage))

	_, err = memory.NewRaster("test", 10, 4097)
	test.ExpectSuccess(t, curated.Is(err, memory.OversizedImage))

	_, err = memory.NewRaster("test", 4096, 1)
	test.ExpectSuccess(t, err)

	_, err = memory.NewRaster("test", 0, 1)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidImage))
}

func TestPixels(t *testing.T) {
	pix := []uint8{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06,
		0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c,
	}

	r, err := memory.NewRasterFromPixels("test", 2, 2, pix)
	test.DemandSuccess(t, err)

	w, err := r.Get(1, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, word.FromBytes(0x04, 0x05, 0x06))

	w, err = r.Get(0, 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, word.FromBytes(0x07, 0x08, 0x09))

	test.ExpectEquality(t, string(r.Pixels()), string(pix))

	_, err = memory.NewRasterFromPixels("test", 2, 2, pix[:11])
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidImage))
}

func TestBounds(t *testing.T) {
	r, err := memory.NewRaster("test", 3, 2)
	test.DemandSuccess(t, err)

	_, err = r.Get(3, 0)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfBounds))
	_, err = r.Get(0, 2)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfBounds))
	_, err = r.Get(-1, 0)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfBounds))

	err = r.Set(2, 1, 0x123456)
	test.ExpectSuccess(t, err)
	err = r.Set(2, 2, 0x123456)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfBounds))

	w, ok := r.Peek(2, 1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w, word.Word(0x123456))

	_, ok = r.Peek(2, 2)
	test.ExpectFailure(t, ok)

	r.SetReadOnly()
	err = r.Set(0, 0, 1)
	test.ExpectSuccess(t, curated.Is(err, memory.ReadOnlyRaster))
}

func TestNext(t *testing.T) {
	r, err := memory.NewRaster("test", 3, 2)
	test.DemandSuccess(t, err)

	x, y := r.Next(0, 0, 1)
	test.ExpectEquality(t, x, 1)
	test.ExpectEquality(t, y, 0)

	// end of row wraps to the start of the next
	x, y = r.Next(2, 0, 1)
	test.ExpectEquality(t, x, 0)
	test.ExpectEquality(t, y, 1)

	// past the end of the raster
	x, y = r.Next(2, 1, 1)
	test.ExpectEquality(t, x, 0)
	test.ExpectEquality(t, y, 2)
	test.ExpectFailure(t, r.Contains(x, y))

	x, y = r.Next(1, 0, 4)
	test.ExpectEquality(t, x, 2)
	test.ExpectEquality(t, y, 1)

	test.ExpectEquality(t, r.Index(2, 1), 5)
	x, y = r.Coords(5)
	test.ExpectEquality(t, x, 2)
	test.ExpectEquality(t, y, 1)
}

func TestMemory(t *testing.T) {
	program, err := memory.NewRaster("", 4, 2)
	test.DemandSuccess(t, err)
	input, err := memory.NewRaster("", 2, 2)
	test.DemandSuccess(t, err)

	mem, err := memory.NewMemory(program, input)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, mem.Program.Label, memory.LabelProgram)
	test.ExpectSuccess(t, mem.Input.ReadOnly())
	test.ExpectSuccess(t, mem.Output == nil)

	// bus writes go to the program
	test.ExpectSuccess(t, mem.Write(3, 1, 0xabcdef))
	w, err := program.Get(3, 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, word.Word(0xabcdef))

	_, err = mem.Read(4, 0)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfBounds))

	test.ExpectFailure(t, mem.Input.Set(0, 0, 1))
}

func TestAlloc(t *testing.T) {
	program, err := memory.NewRaster("", 4, 2)
	test.DemandSuccess(t, err)
	mem, err := memory.NewMemory(program, nil)
	test.DemandSuccess(t, err)

	x, y, err := mem.Alloc(3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, x, 0)
	test.ExpectEquality(t, y, 0)
	test.DemandSuccess(t, mem.Output != nil)
	test.ExpectEquality(t, mem.Output.Width(), 4)
	test.ExpectEquality(t, mem.Output.Height(), 2)

	x, y, err = mem.Alloc(4)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, x, 3)
	test.ExpectEquality(t, y, 0)
	test.ExpectEquality(t, mem.Allocated(), 7)

	_, _, err = mem.Alloc(2)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfBounds))

	x, y, err = mem.Alloc(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, x, 3)
	test.ExpectEquality(t, y, 1)
}

func TestAllocFullRaster(t *testing.T) {
	program, err := memory.NewRaster("", 1, word.MaxDimension)
	test.DemandSuccess(t, err)
	mem, err := memory.NewMemory(program, nil)
	test.DemandSuccess(t, err)

	_, _, err = mem.Alloc(word.MaxDimension)
	test.DemandSuccess(t, err)

	// the next free word is at (0,4096) which can't be held in a word
	_, _, err = mem.Alloc(0)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfBounds))
	test.ExpectEquality(t, mem.Allocated(), word.MaxDimension)
}

func TestCopy(t *testing.T) {
	program, err := memory.NewRaster("", 3, 3)
	test.DemandSuccess(t, err)
	mem, err := memory.NewMemory(program, nil)
	test.DemandSuccess(t, err)

	for i := 0; i < program.Len(); i++ {
		x, y := program.Coords(i)
		test.DemandSuccess(t, program.Set(x, y, word.Word(i+1)))
	}

	// overlapping copy forwards across a row boundary
	test.ExpectSuccess(t, mem.Copy(1, 1, 2, 0, 4))
	for i, v := range []word.Word{1, 2, 3, 4, 3, 4, 5, 6, 9} {
		x, y := program.Coords(i)
		w, _ := program.Peek(x, y)
		test.ExpectEquality(t, w, v, i)
	}

	// copy running off the end of the raster
	err = mem.Copy(0, 0, 1, 2, 3)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfBounds))

	// zero length copy only checks the addresses
	test.ExpectSuccess(t, mem.Copy(0, 0, 2, 2, 0))
	err = mem.Copy(0, 3, 0, 0, 0)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressOutOfBounds))

	w, h := mem.Bounds()
	test.ExpectEquality(t, w, 3)
	test.ExpectEquality(t, h, 3)
}
