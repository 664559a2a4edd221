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
	"testing"

	"github.com/aryansw/chroma-vm/hardware"
	"github.com/aryansw/chroma-vm/hardware/memory"
	"github.com/aryansw/chroma-vm/test"
)

// state creates a machine state with a program of the specified dimensions
func state(t *testing.T, width, height int, steps int) *hardware.State {
	t.Helper()
	program, err := memory.NewRaster("", width, height)
	test.DemandSuccess(t, err)
	mem, err := memory.NewMemory(program, nil)
	test.DemandSuccess(t, err)
	return &hardware.State{Mem: mem, Steps: steps}
}

func TestRewindStateLimit(t *testing.T) {
	r := newRewind(3, 1<<20)
	for i := 0; i < 5; i++ {
		r.push(state(t, 2, 2, i))
	}
	test.ExpectEquality(t, len(r.states), 3)
	test.ExpectEquality(t, r.words, 12)

	// oldest remaining state is the third pushed
	s := r.pop(10)
	test.DemandSuccess(t, s != nil)
	test.ExpectEquality(t, s.Steps, 2)
	test.ExpectEquality(t, r.words, 0)
	test.ExpectEquality(t, r.pop(1) == nil, true)
}

func TestRewindSizeLimit(t *testing.T) {
	r := newRewind(1000, 250)
	for i := 0; i < 10; i++ {
		r.push(state(t, 10, 10, i))
	}
	test.ExpectEquality(t, len(r.states), 2)
	test.ExpectEquality(t, r.words, 200)

	// an output raster counts towards the size of a state
	s := state(t, 10, 10, 10)
	s.Mem.MaterialiseOutput()
	test.ExpectEquality(t, s.Size(), 200)
	r.push(s)
	test.ExpectEquality(t, len(r.states), 1)
	test.ExpectEquality(t, r.words, 200)

	// a state larger than the limit is still kept
	r.push(state(t, 20, 20, 11))
	test.ExpectEquality(t, len(r.states), 1)
	test.ExpectEquality(t, r.words, 400)

	s = r.pop(1)
	test.ExpectEquality(t, s.Steps, 11)
	test.ExpectEquality(t, r.words, 0)
}
