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
	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/debugger/govern"
	"github.com/aryansw/chroma-vm/hardware/memory"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction it can still be expensive to do a full continue check every
// time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the machine running as quickly as possible. Run returns when the
// program halts, when continueCheck() returns govern.Ending or on error.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && !m.Halted() {
		switch state {
		case govern.Running, govern.Stepping:
			if err := m.Step(); err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunProgram creates a machine, runs the program until it halts and returns
// the program and output rasters. The output raster is nil if the program
// never caused it to be created.
//
// No rasters are returned if there is an error.
func RunProgram(program *memory.Raster, input *memory.Raster, limits Limits) (*memory.Raster, *memory.Raster, error) {
	m, err := NewMachine(program, input, limits)
	if err != nil {
		return nil, nil, err
	}

	if err := m.Run(nil); err != nil {
		return nil, nil, err
	}

	return m.Mem.Program, m.Mem.Output, nil
}
