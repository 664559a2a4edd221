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

package registers_test

import (
	"strings"
	"testing"

	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/hardware/cpu/registers"
	"github.com/aryansw/chroma-vm/hardware/word"
	"github.com/aryansw/chroma-vm/test"
)

func TestReadWrite(t *testing.T) {
	r := registers.NewFile()

	for i := 0; i < registers.NumRegisters; i++ {
		v, err := r.Read(i)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, word.Word(0))
	}

	test.ExpectSuccess(t, r.Write(5, 0x1abcdef))
	v, err := r.Read(5)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, word.Word(0xabcdef))

	_, err = r.Read(32)
	test.ExpectSuccess(t, curated.Is(err, registers.InvalidRegister))
	err = r.Write(-1, 0)
	test.ExpectSuccess(t, curated.Is(err, registers.InvalidRegister))
}

func TestIP(t *testing.T) {
	r := registers.NewFile()

	r.WriteIP(3, 7)
	test.ExpectFailure(t, r.IPWritten())
	x, y := r.ReadIP()
	test.ExpectEquality(t, x, 3)
	test.ExpectEquality(t, y, 7)

	v, err := r.Read(registers.IP)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, word.FromAddress(3, 7))

	test.ExpectSuccess(t, r.Write(registers.IP, word.FromAddress(10, 11)))
	test.ExpectSuccess(t, r.IPWritten())
	x, y = r.ReadIP()
	test.ExpectEquality(t, x, 10)
	test.ExpectEquality(t, y, 11)

	r.ClearIPWritten()
	test.ExpectFailure(t, r.IPWritten())

	r.Reset()
	x, y = r.ReadIP()
	test.ExpectEquality(t, x, 0)
	test.ExpectEquality(t, y, 0)
}

func TestString(t *testing.T) {
	r := registers.NewFile()
	r.Write(0, 0xff)
	s := r.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, " r0=0000ff"))
	test.ExpectSuccess(t, strings.Contains(s, " ip=000000 (0,0)"))
	test.ExpectEquality(t, strings.Count(s, "\n"), 3)
	test.ExpectEquality(t, registers.Label(31), "ip")
	test.ExpectEquality(t, registers.Label(2), "r2")
}
