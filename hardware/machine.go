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
	"github.com/aryansw/chroma-vm/hardware/preferences"
	"github.com/aryansw/chroma-vm/logger"
)

// Limits bound the resources used by a Machine. A value of zero means that
// the resource is unbounded.
type Limits struct {
	// the maximum number of instructions to execute
	MaxSteps int

	// the maximum number of entries on the stack
	StackDepth int
}

// LimitsFromPreferences returns the limits specified by the preferences.
func LimitsFromPreferences(p *preferences.Preferences) Limits {
	return Limits{
		MaxSteps:   p.MaxSteps.Get().(int),
		StackDepth: p.StackDepth.Get().(int),
	}
}

// Machine is the main container for the components of the virtual machine.
type Machine struct {
	CPU *cpu.CPU
	Mem *memory.Memory

	Limits Limits

	// copy of the program as it was when the machine was created. used by
	// Reload()
	original *memory.Raster

	// number of instructions executed since the last call to Reset() or
	// Reload()
	steps int
}

// NewMachine creates a new Machine. The input raster can be nil. Rasters
// larger than the maximum dimension are rejected before anything is executed.
//
// The program raster will be modified by the machine as it runs.
func NewMachine(program *memory.Raster, input *memory.Raster, limits Limits) (*Machine, error) {
	mem, err := memory.NewMemory(program, input)
	if err != nil {
		return nil, err
	}

	m := &Machine{
		Mem:      mem,
		Limits:   limits,
		original: program.Clone(),
	}
	m.CPU = cpu.NewCPU(mem, limits.StackDepth)

	logger.Logf(logger.Allow, "vm", "machine created with %dx%d program", program.Width(), program.Height())

	return m, nil
}

// Reset the CPU and the step count. Memory is not changed.
func (m *Machine) Reset() {
	m.CPU.Reset()
	m.steps = 0
}

// Reload restores the program to its original state, discards any output and
// resets the CPU.
func (m *Machine) Reload() {
	// dimensions of the original program have already been checked so the
	// error can be ignored
	m.Mem, _ = memory.NewMemory(m.original.Clone(), m.Mem.Input)
	m.CPU.Plumb(m.Mem)
	m.Reset()
}

// Steps returns the number of instructions executed.
func (m *Machine) Steps() int {
	return m.steps
}

// Halted returns true if the CPU has halted.
func (m *Machine) Halted() bool {
	return m.CPU.Halted() != cpu.NotHalted
}
