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

package registers

import (
	"fmt"
	"strings"

	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/hardware/word"
)

// InvalidRegister is the error pattern for register indexes outside the
// file.
const InvalidRegister = "registers: invalid register (%d)"

// NumRegisters is the number of registers in the file.
const NumRegisters = 32

// IP is the index of the instruction pointer register.
const IP = NumRegisters - 1

// File is the register file of the CPU.
type File struct {
	r [NumRegisters]word.Word

	// ipWritten is set whenever register IP is written to
	ipWritten bool
}

// NewFile is the preferred method of initialisation for the File type.
func NewFile() *File {
	return &File{}
}

// Reset zeroes every register, including the instruction pointer.
func (f *File) Reset() {
	f.r = [NumRegisters]word.Word{}
	f.ipWritten = false
}

// Read the value of register idx.
func (f *File) Read(idx int) (word.Word, error) {
	if idx < 0 || idx >= NumRegisters {
		return 0, curated.Errorf(InvalidRegister, idx)
	}
	return f.r[idx], nil
}

// Write value to register idx. The value is truncated to 24 bits.
func (f *File) Write(idx int, v word.Word) error {
	if idx < 0 || idx >= NumRegisters {
		return curated.Errorf(InvalidRegister, idx)
	}
	f.r[idx] = v & word.Mask
	if idx == IP {
		f.ipWritten = true
	}
	return nil
}

// ReadIP returns the instruction pointer as a coordinate.
func (f *File) ReadIP() (int, int) {
	return f.r[IP].Address()
}

// WriteIP sets the instruction pointer to the coordinate. Unlike Write(), the
// IPWritten() flag is not affected. WriteIP() is how the CPU advances the
// instruction pointer after an instruction.
func (f *File) WriteIP(x, y int) {
	f.r[IP] = word.FromAddress(x, y)
}

// IPWritten returns true if the instruction pointer has been written with
// Write() since the last call to ClearIPWritten().
func (f *File) IPWritten() bool {
	return f.ipWritten
}

// ClearIPWritten resets the IPWritten() flag.
func (f *File) ClearIPWritten() {
	f.ipWritten = false
}

// Snapshot returns a copy of every register value.
func (f *File) Snapshot() [NumRegisters]word.Word {
	return f.r
}

// Label returns the assembler name of register idx.
func Label(idx int) string {
	if idx == IP {
		return "ip"
	}
	return fmt.Sprintf("r%d", idx)
}

func (f *File) String() string {
	s := strings.Builder{}
	for i, v := range f.r {
		s.WriteString(fmt.Sprintf("%3s=%06x", Label(i), uint32(v)))
		if i == IP {
			s.WriteString(fmt.Sprintf(" %s", v.AddressString()))
		}
		if i%8 == 7 {
			s.WriteString("\n")
		} else {
			s.WriteString(" ")
		}
	}
	return strings.TrimSuffix(s.String(), "\n")
}
