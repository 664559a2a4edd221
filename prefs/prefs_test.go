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

package prefs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/prefs"
	"github.com/aryansw/chroma-vm/test"
)

func tmpPrefsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
}

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get(), prefs.Value(false))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.String(), "true")
	test.ExpectSuccess(t, v.Set("foo"))
	test.ExpectEquality(t, v.Get(), prefs.Value(false))
	test.ExpectSuccess(t, v.Set("TRUE"))
	test.ExpectEquality(t, v.Get(), prefs.Value(true))

	err := v.Set(10)
	test.ExpectSuccess(t, curated.Is(err, prefs.TypeConversion))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.String(), "0")

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.Get(), prefs.Value(10))
	test.ExpectSuccess(t, v.Set(" 20 "))
	test.ExpectEquality(t, v.Get(), prefs.Value(20))
	test.ExpectSuccess(t, v.Set(int64(30)))
	test.ExpectEquality(t, v.Get(), prefs.Value(30))

	test.ExpectFailure(t, v.Set("foo"))
	test.ExpectFailure(t, v.Set(1.5))
	test.ExpectEquality(t, v.Get(), prefs.Value(30))
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectSuccess(t, v.Set("foobar"))
	v.SetMaxLen(3)
	test.ExpectEquality(t, v.String(), "foo")
	test.ExpectSuccess(t, v.Set("bazqux"))
	test.ExpectEquality(t, v.String(), "baz")
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return curated.Errorf("negative value")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// pre hook rejects the value
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get(), prefs.Value(5))
	test.ExpectEquality(t, post, 5)
}

func TestDisk(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var b prefs.Bool
	var i prefs.Int
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("test.bool", &b))
	test.ExpectSuccess(t, dsk.Add("test.int", &i))
	test.ExpectSuccess(t, dsk.Add("other", &s))

	err = dsk.Add("other", &s)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))

	// missing file is not an error
	test.ExpectSuccess(t, dsk.Load())

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, i.Set(100))
	test.ExpectSuccess(t, s.Set("foo"))
	test.DemandSuccess(t, dsk.Save())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(data), prefs.WarningBoilerPlate))

	test.ExpectEquality(t, dsk.String(), "other :: foo\ntest.bool :: true\ntest.int :: 100")

	// load into a new disk instance
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var b2 prefs.Bool
	var i2 prefs.Int
	test.ExpectSuccess(t, dsk2.Add("test.bool", &b2))
	test.ExpectSuccess(t, dsk2.Add("test.int", &i2))
	test.ExpectSuccess(t, dsk2.Load())
	test.ExpectEquality(t, b2.Get(), prefs.Value(true))
	test.ExpectEquality(t, i2.Get(), prefs.Value(100))

	// saving the second disk preserves the entry it doesn't know about
	test.ExpectSuccess(t, i2.Set(200))
	test.DemandSuccess(t, dsk2.Save())
	test.ExpectSuccess(t, s.Set(""))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, s.String(), "foo")
	test.ExpectEquality(t, i.Get(), prefs.Value(200))
}

func TestDottedKeys(t *testing.T) {
	fn := tmpPrefsFile(t)

	// a hand written file using a table rather than quoted keys
	err := os.WriteFile(fn, []byte("[vm]\nmaxsteps = 42\n"), 0o600)
	test.DemandSuccess(t, err)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("vm.maxsteps", &v))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get(), prefs.Value(42))
}

func TestDiskCommandLine(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("vm.maxsteps", &v))
	test.ExpectSuccess(t, v.Set(10))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("vm.maxsteps::99; vm.unknown::1")

	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get(), prefs.Value(99))

	// the unused value remains in the command line group
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "vm.unknown::1")
}
