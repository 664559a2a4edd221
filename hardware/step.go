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
	"github.com/aryansw/chroma-vm/logger"
)

// Step the machine by one CPU instruction. Does nothing if the machine has
// halted.
func (m *Machine) Step() error {
	if m.Halted() {
		return nil
	}

	if m.Limits.MaxSteps > 0 && m.steps >= m.Limits.MaxSteps {
		// the limit only applies if there is an instruction to execute
		if _, ok := m.Mem.Peek(m.CPU.Reg.ReadIP()); ok {
			err := curated.Errorf(StepLimit, m.Limits.MaxSteps)
			logger.Log(logger.Allow, "vm", err)
			return err
		}
	}

	if err := m.CPU.ExecuteInstruction(); err != nil {
		logger.Log(logger.Allow, "vm", err)
		return err
	}

	if m.CPU.LastResult.Final {
		m.steps++
	}

	return nil
}
