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

package memory

import "github.com/aryansw/chroma-vm/hardware/word"

// Bus defines the operations for the memory system when accessed from the
// CPU. Coordinates always refer to the program raster.
type Bus interface {
	Read(x, y int) (word.Word, error)
	Write(x, y int, w word.Word) error
}

// DebuggerBus defines the meta-operations for memory. Think of these
// functions as "debugging" functions, that is operations outside of the
// normal operation of the machine. Peek does not return an error, only
// whether the coordinate exists.
type DebuggerBus interface {
	Peek(x, y int) (word.Word, bool)
	Poke(x, y int, w word.Word) error
}
