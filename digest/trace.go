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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/aryansw/chroma-vm/hardware/cpu/execution"
)

// the number of bytes required for each instruction in the trace
const traceEntrySize = 8

// Trace is a chained digest of executed instructions. Instructions are
// buffered and the digest is updated every traceBatch instructions or when
// Hash() is called.
type Trace struct {
	digest [sha1.Size]byte
	buffer []byte
}

const traceBatch = 1024

// NewTrace is the preferred method of initialisation for the Trace type.
func NewTrace() *Trace {
	dig := &Trace{}
	dig.ResetDigest()
	return dig
}

// Hash implements the Digest interface.
func (dig *Trace) Hash() string {
	dig.flush()
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Trace) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.buffer = make([]byte, len(dig.digest), len(dig.digest)+traceBatch*traceEntrySize)
}

func (dig *Trace) flush() {
	if len(dig.buffer) == len(dig.digest) {
		return
	}

	// the head of the buffer is reserved for the previous digest
	copy(dig.buffer, dig.digest[:])
	dig.digest = sha1.Sum(dig.buffer)
	dig.buffer = dig.buffer[:len(dig.digest)]
}

// Step adds an execution result to the trace. Results that are not final are
// ignored.
func (dig *Trace) Step(r execution.Result) {
	if !r.Final {
		return
	}

	b0, b1, b2 := r.Word.Bytes()
	var branch byte
	if r.BranchTaken {
		branch = 1
	}

	dig.buffer = append(dig.buffer,
		byte(r.X>>8), byte(r.X),
		byte(r.Y>>8), byte(r.Y),
		b0, b1, b2, branch,
	)

	if len(dig.buffer) >= len(dig.digest)+traceBatch*traceEntrySize {
		dig.flush()
	}
}
