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

// Package cpu emulates the CPU of the virtual machine. Instructions are
// executed one at a time with the ExecuteInstruction() function. The result
// of the last instruction is recorded in LastResult.
//
// Each call to ExecuteInstruction() follows the same steps:
//
//	fetch the word at the instruction pointer
//	decode the word into an instruction
//	apply the effect of the instruction
//	advance the instruction pointer in raster order
//
// The instruction pointer is not advanced if the instruction redirected the
// flow of the program. This is the case for taken jumps, calls and returns
// but also for any instruction that writes to the instruction pointer
// register directly.
//
// A fetch from outside the program raster is not an error. The CPU simply
// halts. This is the normal way for a program without a halt instruction to
// end.
//
// The CPU accesses memory through the Memory interface, which is implemented
// by the Memory type in the memory package.
package cpu
