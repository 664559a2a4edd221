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

package assembler

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/hardware/cpu/instructions"
	"github.com/aryansw/chroma-vm/hardware/memory"
	"github.com/aryansw/chroma-vm/hardware/word"
)

// DefaultWidth is the width of the program image if there is no .width
// directive.
const DefaultWidth = 16

// pseudo-instruction that loads the address of a label
const loadAddress = "la"

type label struct {
	idx int
	num int
}

// Assembler converts assembly text into a program image.
type Assembler struct {
	width      int
	widthFixed bool

	statements []statement
	labels     map[string]label

	// number of words in the program
	size int
}

// Assemble reads assembly text from r and returns the program image.
func Assemble(r io.Reader) (*memory.Raster, error) {
	asm := &Assembler{
		width:  DefaultWidth,
		labels: make(map[string]label),
	}

	if err := asm.scan(r); err != nil {
		return nil, err
	}

	return asm.raster()
}

// AssembleString is a convenience function for Assemble().
func AssembleString(s string) (*memory.Raster, error) {
	return Assemble(strings.NewReader(s))
}

// AssembleFile is a convenience function for Assemble().
func AssembleFile(filename string) (*memory.Raster, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("assembler: %v", err)
	}
	defer f.Close()
	return Assemble(f)
}

// first pass. statements are tokenised, labels are recorded and the number
// of words is counted
func (asm *Assembler) scan(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	num := 0
	for scanner.Scan() {
		num++

		st, err := tokeniseLine(scanner.Text())
		if err != nil {
			return curated.Errorf(AssemblyError, num, err)
		}
		st.num = num
		st.idx = asm.size

		if st.label != "" {
			if l, ok := asm.labels[st.label]; ok {
				return curated.Errorf(AssemblyError, num, errorf(DuplicateLabel, st.label+" first defined on line "+strconv.Itoa(l.num)))
			}
			asm.labels[st.label] = label{idx: asm.size, num: num}
		}

		if st.op == "" {
			continue
		}

		n, err := asm.sizeOf(&st)
		if err != nil {
			return curated.Errorf(AssemblyError, num, err)
		}
		asm.size += n

		asm.statements = append(asm.statements, st)
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("assembler: %v", err)
	}

	return nil
}

// sizeOf returns the number of words the statement occupies. the width
// directive is applied immediately.
func (asm *Assembler) sizeOf(st *statement) (int, error) {
	switch st.op {
	case ".width":
		if asm.widthFixed {
			return 0, errorf(LateWidth)
		}
		if len(st.operands) != 1 {
			return 0, errorf(OperandCount, st.op, 1, len(st.operands))
		}
		w, ok := parseNumber(st.operands[0], 32)
		if !ok || w < 1 || w > word.MaxDimension {
			return 0, errorf(InvalidWidth, st.operands[0])
		}
		asm.width = int(w)
		asm.widthFixed = true
		return 0, nil

	case ".word":
		if len(st.operands) == 0 {
			return 0, errorf(OperandCount, st.op, 1, 0)
		}
		asm.widthFixed = true
		return len(st.operands), nil

	case loadAddress:
		asm.widthFixed = true
		return 2, nil
	}

	if strings.HasPrefix(st.op, ".") {
		return 0, errorf(UnknownDirective, st.op)
	}

	if _, ok := instructions.Lookup(st.op); !ok {
		return 0, errorf(UnknownMnemonic, st.op)
	}
	asm.widthFixed = true

	return 1, nil
}

// coords returns the coordinates of a word index.
func (asm *Assembler) coords(idx int) (int, int) {
	return idx % asm.width, idx / asm.width
}

func (asm *Assembler) address(name string) (int, int, error) {
	l, ok := asm.labels[name]
	if !ok {
		return 0, 0, errorf(UndefinedLabel, name)
	}
	x, y := asm.coords(l.idx)
	return x, y, nil
}

// second pass. creates the raster and encodes each statement into it
func (asm *Assembler) raster() (*memory.Raster, error) {
	height := max(1, (asm.size+asm.width-1)/asm.width)
	if height > word.MaxDimension {
		return nil, curated.Errorf("assembler: %v", errorf(ProgramTooLarge, asm.size, asm.width))
	}

	r, err := memory.NewRaster(memory.LabelProgram, asm.width, height)
	if err != nil {
		return nil, curated.Errorf("assembler: %v", err)
	}

	halt := instructions.Encode(instructions.New(instructions.Halt))
	for i := 0; i < r.Len(); i++ {
		x, y := r.Coords(i)
		_ = r.Set(x, y, halt)
	}

	for _, st := range asm.statements {
		words, err := asm.encode(st)
		if err != nil {
			return nil, curated.Errorf(AssemblyError, st.num, err)
		}
		for i, w := range words {
			x, y := asm.coords(st.idx + i)
			if err := r.Set(x, y, w); err != nil {
				return nil, curated.Errorf(AssemblyError, st.num, err)
			}
		}
	}

	return r, nil
}

func (asm *Assembler) encode(st statement) ([]word.Word, error) {
	switch st.op {
	case ".width":
		return nil, nil

	case ".word":
		words := make([]word.Word, 0, len(st.operands))
		for _, o := range st.operands {
			if v, ok := parseNumber(o, 24); ok {
				words = append(words, word.Word(v))
				continue
			}
			if isIdentifier(o) {
				x, y, err := asm.address(o)
				if err != nil {
					return nil, err
				}
				words = append(words, word.FromAddress(x, y))
				continue
			}
			return nil, errorf(InvalidWord, o)
		}
		return words, nil

	case loadAddress:
		if len(st.operands) != 2 {
			return nil, errorf(OperandCount, st.op, 2, len(st.operands))
		}
		dst, err := parseRegister(st.operands[0])
		if err != nil {
			return nil, err
		}
		x, y, err := asm.address(st.operands[1])
		if err != nil {
			return nil, err
		}
		return []word.Word{
			instructions.Encode(instructions.NewImmediate(instructions.LoadHigh, dst, uint32(x))),
			instructions.Encode(instructions.NewImmediate(instructions.LoadLow, dst, uint32(y))),
		}, nil
	}

	defn, _ := instructions.Lookup(st.op)
	layout := defn.Operands

	expected := layout.NumOperands()
	if layout.HasImmediate() {
		expected++
	}
	if len(st.operands) != expected {
		return nil, errorf(OperandCount, st.op, expected, len(st.operands))
	}

	ins := instructions.Instruction{Defn: defn}
	for i := 0; i < layout.NumOperands(); i++ {
		o, err := parseRegister(st.operands[i])
		if err != nil {
			return nil, err
		}
		ins.Operands[i] = o
	}

	if layout.HasImmediate() {
		v, err := asm.immediate(st.operands[expected-1])
		if err != nil {
			return nil, err
		}
		ins.Immediate = v
	}

	return []word.Word{instructions.Encode(ins)}, nil
}

func (asm *Assembler) immediate(s string) (uint32, error) {
	if fn, name, ok := splitCoordFunc(s); ok {
		x, y, err := asm.address(name)
		if err != nil {
			return 0, err
		}
		if fn == "x" {
			return uint32(x), nil
		}
		return uint32(y), nil
	}

	v, ok := parseNumber(s, 12)
	if !ok {
		return 0, errorf(InvalidImmediate, s)
	}
	return v, nil
}
