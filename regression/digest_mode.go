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

package regression

import (
	"strings"

	"github.com/aryansw/chroma-vm/curated"
)

// DigestMode specifies what type of digest to generate for the regression
// entry.
type DigestMode int

// Valid digest modes. Use String() and ParseDigestMode() to convert to and
// from string representations.
const (
	DigestUndefined DigestMode = iota
	DigestResult
	DigestTrace
)

func (mod DigestMode) String() string {
	switch mod {
	case DigestResult:
		return "result"
	case DigestTrace:
		return "trace"
	default:
		return "undefined"
	}
}

// ParseDigestMode converts string to DigestMode represenation.
func ParseDigestMode(mode string) (DigestMode, error) {
	switch strings.ToLower(mode) {
	case "result":
		return DigestResult, nil
	case "trace":
		return DigestTrace, nil
	}

	return DigestUndefined, curated.Errorf(InvalidDigest, mode)
}
