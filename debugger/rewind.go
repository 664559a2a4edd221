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

package debugger

import (
	"github.com/aryansw/chroma-vm/hardware"
)

// limits of the states kept for the BACK command. the most recent state is
// always kept even if it is larger than maxRewindWords
const (
	maxRewind      = 1000
	maxRewindWords = 1 << 24
)

// rewind records machine states before each step.
type rewind struct {
	states []*hardware.State

	// the sum of State.Size() for all states
	words int

	maxStates int
	maxWords  int
}

func newRewind(maxStates int, maxWords int) rewind {
	return rewind{
		maxStates: maxStates,
		maxWords:  maxWords,
	}
}

func (r *rewind) reset() {
	r.states = r.states[:0]
	r.words = 0
}

func (r *rewind) push(state *hardware.State) {
	r.states = append(r.states, state)
	r.words += state.Size()

	// drop the oldest states until the history is within both limits
	for len(r.states) > 1 && (len(r.states) > r.maxStates || r.words > r.maxWords) {
		r.words -= r.states[0].Size()
		r.states[0] = nil
		r.states = r.states[1:]
	}
}

// pop n states and return the oldest state popped. returns nil if there are
// no states. fewer than n states are popped if there are not enough states.
func (r *rewind) pop(n int) *hardware.State {
	if len(r.states) == 0 || n < 1 {
		return nil
	}
	n = min(n, len(r.states))
	s := r.states[len(r.states)-n]
	for _, p := range r.states[len(r.states)-n:] {
		r.words -= p.Size()
	}
	r.states = r.states[:len(r.states)-n]
	return s
}
