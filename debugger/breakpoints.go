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

package debugger

import (
	"fmt"
	"strings"
)

type coords struct {
	x, y int
}

func (c coords) String() string {
	return fmt.Sprintf("(%d,%d)", c.x, c.y)
}

// breakpoints halt execution when the instruction pointer reaches a specific
// coordinate. the instruction at the coordinate has not been executed when
// execution halts.
type breakpoints struct {
	breaks []coords
}

func newBreakpoints() *breakpoints {
	return &breakpoints{}
}

func (bp *breakpoints) clear() {
	bp.breaks = bp.breaks[:0]
}

func (bp *breakpoints) add(x, y int) error {
	for _, b := range bp.breaks {
		if b.x == x && b.y == y {
			return errorf(DuplicateBreak, x, y)
		}
	}
	bp.breaks = append(bp.breaks, coords{x: x, y: y})
	return nil
}

func (bp *breakpoints) drop(x, y int) error {
	for i, b := range bp.breaks {
		if b.x == x && b.y == y {
			bp.breaks = append(bp.breaks[:i], bp.breaks[i+1:]...)
			return nil
		}
	}
	return errorf(NoSuchBreak, x, y)
}

// check returns true if there is a breakpoint at the coordinates.
func (bp *breakpoints) check(x, y int) bool {
	for _, b := range bp.breaks {
		if b.x == x && b.y == y {
			return true
		}
	}
	return false
}

func (bp *breakpoints) String() string {
	if len(bp.breaks) == 0 {
		return "no breakpoints"
	}
	s := strings.Builder{}
	for i, b := range bp.breaks {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("% 2d: %s", i, b))
	}
	return s.String()
}
