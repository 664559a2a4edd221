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

// Package disassembly coordinates the disassembly of program images.
//
// Every word in a program image decodes to an instruction so the disassembly
// is a linear decode of the entire raster, in raster order. Data words and
// instruction words can't be told apart by looking at the image alone. The
// disassembly can however be updated with the results of execution with the
// UpdateEntry() function. Entries that have been executed are marked as such
// and the debugger uses this to show which parts of the image are code.
//
// A program that modifies itself will cause the disassembly to be out of
// date. UpdateEntry() decodes the executed word again if it has changed and
// the Refresh() function decodes the entire raster again.
//
// For quick disassemblies the FromFile() function can be used.
package disassembly
