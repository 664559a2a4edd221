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

// Package hardware is the base package for the virtual machine. The Machine
// type collects the CPU and the memory rasters into a single runnable unit.
//
// The Run() function executes instructions until the program halts, the
// continueCheck() function returns govern.Ending or an error occurs. The
// Step() function executes a single instruction and is useful for debuggers.
//
// For simple uses the RunProgram() function creates a machine, runs the
// program to completion and returns the resulting rasters:
//
//	program, output, err := hardware.RunProgram(prog, nil, hardware.Limits{})
//
// The output raster will be nil if the program never allocated any output.
//
// There is no shared state between Machine instances. Many machines can be
// run concurrently as long as each machine is used by only one goroutine.
package hardware
