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

package hardware

import (
	"github.com/aryansw/chroma-vm/hardware/cpu"
	"github.com/aryansw/chroma-vm/hardware/memory"
)

// State stores the machine state for the purposes of rewinding.
type State struct {
	CPU   *cpu.CPU
	Mem   *memory.Memory
	Steps int
}

// Snapshot creates a copy of the current machine state.
func (m *Machine) Snapshot() *State {
	return &State{
		CPU:   m.CPU.Snapshot(),
		Mem:   m.Mem.Snapshot(),
		Steps: m.steps,
	}
}

// Size returns the number of words held by the state.
func (s *State) Size() int {
	n := s.Mem.Program.Len()
	if s.Mem.Output != nil {
		n += s.Mem.Output.Len()
	}
	return n
}

// Plumb a previously taken snapshot into the machine.
func (m *Machine) Plumb(state *State) {
	if state == nil {
		panic("vm: cannot plumb in a nil state")
	}

	// take another snapshot of the state before plumbing. we don't want the
	// machine to change what we have stored in the state
	m.CPU = state.CPU.Snapshot()
	m.Mem = state.Mem.Snapshot()
	m.CPU.Plumb(m.Mem)
	m.steps = state.Steps
}
