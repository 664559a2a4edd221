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

package assembler_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aryansw/chroma-vm/assembler"
	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/hardware"
	"github.com/aryansw/chroma-vm/hardware/cpu/instructions"
	"github.com/aryansw/chroma-vm/hardware/word"
	"github.com/aryansw/chroma-vm/test"
)

const countdown = `
; count down from ten
        ldl r1, 10
        ldl r2, 1
        la  r3, loop
loop:   sub r1, r1, r2
        jif r1, r3
        halt
`

func decode(t *testing.T, w word.Word) string {
	t.Helper()
	return instructions.Decode(w).String()
}

func TestCountdown(t *testing.T) {
	prg, err := assembler.AssembleString(countdown)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prg.Width(), assembler.DefaultWidth)
	test.ExpectEquality(t, prg.Height(), 1)

	w, err := prg.Get(2, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, decode(t, w), "ldh r3, 0x004")
	w, err = prg.Get(3, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, decode(t, w), "ldl r3, 0x000")

	// unused cells are halt instructions
	w, err = prg.Get(15, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, decode(t, w), "halt")

	m, err := hardware.NewMachine(prg, nil, hardware.Limits{MaxSteps: 1000})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.Run(nil))

	r1, err := m.CPU.Reg.Read(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r1, word.Word(0))

	// four setup instructions, ten iterations of the loop and the halt
	test.ExpectEquality(t, m.Steps(), 4+20+1)
}

func TestWidth(t *testing.T) {
	prg, err := assembler.AssembleString(`
.width 2
        ldl r1, 0x1
        ldl r2, 0x2
end:    halt
        .word 0xabcdef, end
`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prg.Width(), 2)
	test.ExpectEquality(t, prg.Height(), 3)

	w, err := prg.Get(1, 1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w, word.Word(0xabcdef))

	w, err = prg.Get(0, 2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w, word.FromAddress(0, 1))

	// padding
	w, err = prg.Get(1, 2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, decode(t, w), "halt")
}

func TestOperands(t *testing.T) {
	prg, err := assembler.AssembleString(`
.width 4
here:   MOV [r1], ip
        add r31, [ip], r0
        ldl r4, x(there)
there:  ldh r5, y(there)
`)
	test.DemandSuccess(t, err)

	expected := []string{
		"mov [r1], ip",
		"add ip, [ip], r0",
		"ldl r4, 0x003",
		"ldh r5, 0x000",
	}
	for i, e := range expected {
		w, err := prg.Get(i, 0)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, decode(t, w), e)
	}
}

func TestErrors(t *testing.T) {
	var tests = []struct {
		src     string
		pattern string
	}{
		{"foo r1", assembler.UnknownMnemonic},
		{".bar 1", assembler.UnknownDirective},
		{"add r1, r2", assembler.OperandCount},
		{"halt r1", assembler.OperandCount},
		{"mov r1, r32", assembler.InvalidRegister},
		{"mov r1, q1", assembler.InvalidRegister},
		{"ldl r1, 4096", assembler.InvalidImmediate},
		{"ldl r1, -1", assembler.InvalidImmediate},
		{"ldl r1, x(nowhere)", assembler.UndefinedLabel},
		{"la r1, nowhere", assembler.UndefinedLabel},
		{".word 0x1000000", assembler.InvalidWord},
		{".width 0", assembler.InvalidWidth},
		{"halt\n.width 4", assembler.LateWidth},
		{"a: halt\na: halt", assembler.DuplicateLabel},
		{"1a: halt", assembler.InvalidLabel},
	}

	for _, tt := range tests {
		_, err := assembler.AssembleString(tt.src)
		test.ExpectFailure(t, err, tt.src)
		test.ExpectSuccess(t, curated.Is(err, assembler.AssemblyError), tt.src)
		test.ExpectSuccess(t, curated.Has(err, tt.pattern), tt.src)
	}
}

func TestLineNumber(t *testing.T) {
	_, err := assembler.AssembleString("halt\n\n; comment\nfoo")
	test.DemandFailure(t, err)
	test.ExpectEquality(t, err.Error(), "assembler: line 4: unknown mnemonic (foo)")
}

func TestFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "countdown.asm")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(countdown), 0644))

	prg, err := assembler.AssembleFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prg.Width(), assembler.DefaultWidth)

	_, err = assembler.AssembleFile(filepath.Join(t.TempDir(), "missing.asm"))
	test.ExpectFailure(t, err)
}
