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

package execution

import (
	"fmt"

	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/hardware/cpu/instructions"
	"github.com/aryansw/chroma-vm/hardware/word"
)

// Result records the state/result of the last executed instruction.
type Result struct {
	// address of the instruction in the program raster
	X, Y int

	// the word the instruction was decoded from
	Word word.Word

	Instruction instructions.Instruction

	// number of words consumed. this is the same as Instruction.Defn.Words
	// once the result is final
	Words int

	// whether a conditional or unconditional branch redirected the
	// instruction pointer. an instruction that writes directly to the
	// instruction pointer register also counts as a branch
	BranchTaken bool

	// whether this data has been finalised. the values of the fields above
	// may be undefined unless Final is true
	Final bool
}

// Reset the result to the zero state.
func (r *Result) Reset() {
	*r = Result{}
}

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("execution: result not finalised")
	}

	if r.Instruction.Defn == nil {
		return curated.Errorf("execution: no instruction definition")
	}

	if r.Words != r.Instruction.Defn.Words {
		return curated.Errorf("execution: unexpected number of words read during decode (%d instead of %d)",
			r.Words, r.Instruction.Defn.Words)
	}

	if r.BranchTaken && r.Instruction.Defn.Effect == instructions.Stop {
		return curated.Errorf("execution: branch taken by stopping instruction [%s]",
			r.Instruction.Defn.Mnemonic)
	}

	if decoded := instructions.Decode(r.Word); !decoded.Equal(r.Instruction) {
		return curated.Errorf("execution: instruction does not match word %s", r.Word)
	}

	return nil
}

func (r Result) String() string {
	if !r.Final {
		return "???"
	}
	s := fmt.Sprintf("(%d,%d) %06x %s", r.X, r.Y, uint32(r.Word), r.Instruction)
	if r.BranchTaken {
		s = fmt.Sprintf("%s *", s)
	}
	return s
}
