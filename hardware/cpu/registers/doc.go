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

// Package registers implements the register file of the CPU. There are 32
// general purpose registers, each holding a single 24 bit word. The last
// register (number 31) is the instruction pointer and holds the address of
// the current instruction in the program raster.
//
// Instructions can address the instruction pointer like any other register.
// The File type records when the instruction pointer has been written so that
// the CPU can tell the difference between an instruction that redirects flow
// by writing to register 31 and one that should be followed by the normal
// advance of the instruction pointer.
//
//	r := registers.NewFile()
//	r.Write(4, 0x123)
//	r.WriteIP(2, 0)
//	if r.IPWritten() {
//		...
//	}
package registers
