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

// Package preferences contains the preferences for the virtual machine. The
// values are stored in the global preferences file with the keys listed
// below:
//
//	vm.maxsteps      maximum number of instructions in a run (0 is unbounded)
//	vm.stackdepth    maximum depth of the stack (0 is unbounded)
//	vm.echolog       echo log entries to stderr as they are added
//	output.program   default filename for the mutated program image
//	output.output    default filename for the output image
package preferences
