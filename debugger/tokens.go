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
	"strconv"
	"strings"
)

type tokens struct {
	tokens []string
	curr   int
}

func (tk tokens) remainder() string {
	return strings.Join(tk.tokens[tk.curr:], " ")
}

func (tk tokens) remaining() int {
	return len(tk.tokens) - tk.curr
}

func (tk *tokens) get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

func (tk tokens) peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// number returns the next token as an unsigned number. hexadecimal numbers
// can be prefixed with 0x or $
func (tk *tokens) number(cmd string) (uint32, error) {
	s, ok := tk.get()
	if !ok {
		return 0, errorf(MissingArgument, cmd)
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, errorf(InvalidArgument, cmd, s)
	}
	return uint32(v), nil
}

// optionalNumber is like number() except that the default value is returned
// if there are no more tokens
func (tk *tokens) optionalNumber(cmd string, def uint32) (uint32, error) {
	if tk.remaining() == 0 {
		return def, nil
	}
	return tk.number(cmd)
}

// coords returns the next two tokens as a coordinate pair
func (tk *tokens) coords(cmd string) (int, int, error) {
	x, err := tk.number(cmd)
	if err != nil {
		return 0, 0, err
	}
	y, err := tk.number(cmd)
	if err != nil {
		return 0, 0, err
	}
	return int(x), int(y), nil
}

func tokeniseInput(input string) *tokens {
	tk := new(tokens)

	// divide user input into tokens
	tk.tokens = strings.Fields(strings.TrimSpace(input))

	// normalise variations in syntax
	for i := 0; i < len(tk.tokens); i++ {
		// normalise hex notation
		if tk.tokens[i][0] == '$' {
			tk.tokens[i] = "0x" + tk.tokens[i][1:]
		}
	}

	return tk
}
