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

package imageloader

import (
	"bytes"

	"github.com/aryansw/chroma-vm/hardware"
	"github.com/aryansw/chroma-vm/hardware/memory"
)

// Processed is the result of ProcessImage(). Images are PNG encoded.
type Processed struct {
	Program []byte

	// nil if the program did not create any output
	Output []byte
}

// ProcessImage runs an encoded program image, with an optional encoded input
// image, and returns the results as encoded PNG images. This is the entry
// point for hosts that deal only in encoded bytes.
func ProcessImage(program []byte, input []byte, limits hardware.Limits) (Processed, error) {
	p, err := FromBytes(program, memory.LabelProgram)
	if err != nil {
		return Processed{}, err
	}

	var in *memory.Raster
	if len(input) > 0 {
		in, err = FromBytes(input, memory.LabelInput)
		if err != nil {
			return Processed{}, err
		}
	}

	prog, out, err := hardware.RunProgram(p, in, limits)
	if err != nil {
		return Processed{}, err
	}

	var res Processed

	b := &bytes.Buffer{}
	if err := Encode(b, prog, PNG); err != nil {
		return Processed{}, err
	}
	res.Program = b.Bytes()

	if out != nil {
		b = &bytes.Buffer{}
		if err := Encode(b, out, PNG); err != nil {
			return Processed{}, err
		}
		res.Output = b.Bytes()
	}

	return res, nil
}
