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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aryansw/chroma-vm/hardware/memory"
	"github.com/aryansw/chroma-vm/imageloader"
	"github.com/aryansw/chroma-vm/modalflag"
	"github.com/aryansw/chroma-vm/test"
)

const source = `
; materialise the output image and leave the count in r1
        ldl   r1, 4
        alloc r1, r2
        ldl   r3, 1
        la    r4, loop
loop:   sub   r1, r1, r3
        jif   r1, r4
        halt
`

func chdir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})

	return dir
}

// mode parses the top level of the arguments as launch() does and returns
// the Modes instance ready for the selected mode function
func mode(t *testing.T, args ...string) (*modalflag.Modes, *test.CompareWriter) {
	t.Helper()

	tw := &test.CompareWriter{}
	md := &modalflag.Modes{Output: tw}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DISASM", "ASM", "DEBUG", "REGRESS", "PERFORMANCE", "VERSION")
	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)

	return md, tw
}

func TestAssembleAndRun(t *testing.T) {
	dir := chdir(t)
	test.DemandSuccess(t, os.WriteFile("prog.asm", []byte(source), 0o644))

	md, tw := mode(t, "ASM", "prog.asm")
	test.DemandEquality(t, md.Mode(), "ASM")
	test.DemandSuccess(t, asm(md))
	test.ExpectEquality(t, tw.String(), "16x1 program written to prog.png\n")

	md, tw = mode(t, "-digest", "-output", "out.png", "prog.png")
	test.DemandEquality(t, md.Mode(), "RUN")
	test.DemandSuccess(t, run(md))
	test.ExpectEquality(t, len(strings.TrimSpace(tw.String())), 40)

	out, err := imageloader.Load(filepath.Join(dir, "out.png"), memory.LabelOutput)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out.Width(), 16)
	test.ExpectEquality(t, out.Height(), 1)

	// program output uses the default filename
	_, err = os.Stat("program_output.png")
	test.ExpectSuccess(t, err)

	md, tw = mode(t, "DISASM", "-bytecode", "prog.png")
	test.DemandSuccess(t, disasm(md))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "alloc r1, r2"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "repeated"))
}

func TestRunErrors(t *testing.T) {
	chdir(t)

	md, _ := mode(t, "RUN")
	test.ExpectFailure(t, run(md))

	md, _ = mode(t, "RUN", "missing.png")
	test.ExpectFailure(t, run(md))

	md, _ = mode(t, "RUN", "a.png", "b.png")
	test.ExpectFailure(t, run(md))
}

func TestStepLimit(t *testing.T) {
	chdir(t)
	test.DemandSuccess(t, os.WriteFile("prog.asm", []byte(source), 0o644))

	md, _ := mode(t, "ASM", "prog.asm")
	test.DemandSuccess(t, asm(md))

	md, _ = mode(t, "RUN", "-maxsteps", "3", "prog.png")
	test.ExpectFailure(t, run(md))

	// the limit can also be set through the preferences
	md, _ = mode(t, "RUN", "-prefs", "vm.maxsteps::3", "prog.png")
	test.ExpectFailure(t, run(md))
}

func TestVersion(t *testing.T) {
	md, tw := mode(t, "VERSION")
	test.DemandSuccess(t, showVersion(md))
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "Chroma "))
}
