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

package regression_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aryansw/chroma-vm/assembler"
	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/imageloader"
	"github.com/aryansw/chroma-vm/regression"
	"github.com/aryansw/chroma-vm/test"
)

// resources are relative to the working directory in development builds
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

func saveProgram(t *testing.T, filename string, src string) {
	t.Helper()
	prg, err := assembler.AssembleString(src)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, imageloader.Save(filename, prg))
}

func TestRegression(t *testing.T) {
	dir := chdir(t)

	w := &strings.Builder{}
	test.DemandSuccess(t, regression.RegressList(w))
	test.ExpectEquality(t, w.String(), "database is empty\n")

	prg := filepath.Join(dir, "prog.png")
	saveProgram(t, prg, ".width 4\nldl r1, 5\nhalt")

	w.Reset()
	test.DemandSuccess(t, regression.RegressAdd(w, regression.NewRunRegression(prg, "", 0, regression.DigestResult, "simple")))
	test.ExpectSuccess(t, strings.Contains(w.String(), "added: [run/result]"))
	test.DemandSuccess(t, regression.RegressAdd(w, regression.NewRunRegression(prg, "", 100, regression.DigestTrace, "")))

	w.Reset()
	test.DemandSuccess(t, regression.RegressList(w))
	test.ExpectSuccess(t, strings.Contains(w.String(), "000 [run/result]"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "[simple]"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "001 [run/trace]"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "steps=100"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "Total: 2"))

	// the program has been copied into the regression store
	test.DemandSuccess(t, os.Remove(prg))

	w.Reset()
	test.DemandSuccess(t, regression.RegressRunTests(w, false, false, nil))
	test.ExpectSuccess(t, strings.Contains(w.String(), "regression tests: 2 succeed, 0 fail, 0 skipped\n"))

	w.Reset()
	test.DemandSuccess(t, regression.RegressRunTests(w, false, false, []string{"1"}))
	test.ExpectSuccess(t, strings.Contains(w.String(), "regression tests: 1 succeed, 0 fail, 1 skipped\n"))

	// there have been no failures
	err := regression.RegressRunTests(w, false, false, []string{"FAILS"})
	test.ExpectSuccess(t, curated.Is(err, regression.NoPreviousFails))

	// change every program in the store
	stored, err := filepath.Glob(filepath.Join(".chroma", "regression", "programs", "*.png"))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(stored), 2)
	for _, fn := range stored {
		saveProgram(t, fn, ".width 4\nldl r1, 6\nhalt")
	}

	w.Reset()
	test.DemandSuccess(t, regression.RegressRunTests(w, true, false, nil))
	test.ExpectSuccess(t, strings.Contains(w.String(), "regression tests: 0 succeed, 2 fail, 0 skipped\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "digest mismatch"))

	w.Reset()
	test.DemandSuccess(t, regression.RegressRunTests(w, false, false, []string{"FAILS"}))
	test.ExpectSuccess(t, strings.Contains(w.String(), "regression tests: 0 succeed, 2 fail, 0 skipped\n"))

	err = regression.RegressRunTests(w, false, false, []string{"x"})
	test.ExpectSuccess(t, curated.Is(err, regression.InvalidKey))

	// delete requires confirmation
	w.Reset()
	test.DemandSuccess(t, regression.RegressDelete(w, strings.NewReader("n"), "0"))
	w.Reset()
	test.DemandSuccess(t, regression.RegressList(w))
	test.ExpectSuccess(t, strings.Contains(w.String(), "Total: 2"))

	w.Reset()
	test.DemandSuccess(t, regression.RegressDelete(w, strings.NewReader("y"), "0"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "deleted test #0"))

	w.Reset()
	test.DemandSuccess(t, regression.RegressList(w))
	test.ExpectSuccess(t, strings.Contains(w.String(), "Total: 1"))

	// stored program was removed with the entry
	stored, err = filepath.Glob(filepath.Join(".chroma", "regression", "programs", "*.png"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(stored), 1)

	err = regression.RegressDelete(w, strings.NewReader("y"), "x")
	test.ExpectSuccess(t, curated.Is(err, regression.InvalidKey))
}

func TestExecutionError(t *testing.T) {
	dir := chdir(t)

	prg := filepath.Join(dir, "prog.png")
	saveProgram(t, prg, ".width 4\nldl r1, 5\nldl r2, 6\nhalt")

	w := &strings.Builder{}
	err := regression.RegressAdd(w, regression.NewRunRegression(prg, "", 1, regression.DigestResult, ""))
	test.ExpectSuccess(t, curated.Has(err, regression.ProgramExecution))

	// the failed regression was not added and the store is empty
	w.Reset()
	test.DemandSuccess(t, regression.RegressList(w))
	test.ExpectEquality(t, w.String(), "database is empty\n")

	stored, err := filepath.Glob(filepath.Join(".chroma", "regression", "programs", "*"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(stored), 0)
}

func TestDigestMode(t *testing.T) {
	m, err := regression.ParseDigestMode("TRACE")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m, regression.DigestTrace)
	test.ExpectEquality(t, m.String(), "trace")

	_, err = regression.ParseDigestMode("video")
	test.ExpectSuccess(t, curated.Is(err, regression.InvalidDigest))
}
