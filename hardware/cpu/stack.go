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
	"fmt"
	"strings"

	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/hardware/word"
)

// Stack is shared by the Call, Return, Push and Pop instructions. Return
// addresses and data words are not distinguished.
type Stack struct {
	entries []word.Word

	// the maximum number of entries. a value of zero means there is no
	// maximum
	maxDepth int
}

// NewStack is the preferred method of initialisation for the Stack type.
func NewStack(maxDepth int) *Stack {
	return &Stack{
		maxDepth: maxDepth,
	}
}

// Reset removes all entries from the stack.
func (st *Stack) Reset() {
	st.entries = st.entries[:0]
}

// SetMaxDepth changes the maximum number of entries. Existing entries are
// not affected.
func (st *Stack) SetMaxDepth(maxDepth int) {
	st.maxDepth = maxDepth
}

// Len returns the number of entries in the stack.
func (st *Stack) Len() int {
	return len(st.entries)
}

// Push a word onto the stack.
func (st *Stack) Push(w word.Word) error {
	if st.maxDepth > 0 && len(st.entries) >= st.maxDepth {
		return curated.Errorf(StackOverflow, st.maxDepth)
	}
	st.entries = append(st.entries, w)
	return nil
}

// Pop a word off the stack. The op argument names the operation for the
// error message.
func (st *Stack) Pop(op string) (word.Word, error) {
	if len(st.entries) == 0 {
		return 0, curated.Errorf(StackUnderflow, op)
	}
	w := st.entries[len(st.entries)-1]
	st.entries = st.entries[:len(st.entries)-1]
	return w, nil
}

// Entries returns a copy of the stack, with the oldest entry first.
func (st *Stack) Entries() []word.Word {
	e := make([]word.Word, len(st.entries))
	copy(e, st.entries)
	return e
}

func (st *Stack) String() string {
	if len(st.entries) == 0 {
		return "empty stack"
	}
	s := strings.Builder{}
	for i := len(st.entries) - 1; i >= 0; i-- {
		w := st.entries[i]
		s.WriteString(fmt.Sprintf("%3d: %06x %s\n", i, uint32(w), w.AddressString()))
	}
	return strings.TrimSuffix(s.String(), "\n")
}
