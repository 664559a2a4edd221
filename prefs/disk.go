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

package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/aryansw/chroma-vm/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences.toml"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "# *** do not edit this file by hand while chroma is running ***"

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// command line values taken by Add() or Load(). they are taken from the
	// command line group only once so they must be kept to supersede values
	// that are later loaded from the file
	overrides map[string]string
}

func (dsk *Disk) String() string {
	keys := dsk.keys()

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, dsk.entries[k]))
	}
	return strings.TrimSuffix(s.String(), "\n")
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:      path,
		entries:   make(map[string]pref),
		overrides: make(map[string]string),
	}, nil
}

// Add preference value to list of values to store/load from disk. Keys are
// usually dotted, for example "vm.maxsteps".
//
// If a value for the key exists in the current command line group the value
// is set immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(DiskError, key, err)
		}
		dsk.overrides[key] = v
	}

	return nil
}

// flatten nested TOML tables into dotted keys. a hand edited file may use
// either the quoted form ("vm.maxsteps" = 1) or the dotted form
// (vm.maxsteps = 1) and both end up with the same key
func flatten(prefix string, m map[string]interface{}, out map[string]interface{}) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = fmt.Sprintf("%s.%s", prefix, k)
		}
		if sub, ok := v.(map[string]interface{}); ok {
			flatten(key, sub, out)
		} else {
			out[key] = v
		}
	}
}

// read the entire preferences file, including entries that have not been
// added to this disk instance
func (dsk *Disk) read() (map[string]interface{}, error) {
	raw := make(map[string]interface{})
	if _, err := toml.DecodeFile(dsk.path, &raw); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]interface{}), nil
		}
		return nil, curated.Errorf(DiskError, dsk.path, err)
	}

	flat := make(map[string]interface{})
	flatten("", raw, flat)
	return flat, nil
}

// Save current preference values to disk. Entries in the file that belong
// to other Disk instances are preserved.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		data[k] = p.Get()
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, dsk.path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s\n\n", WarningBoilerPlate); err != nil {
		return curated.Errorf(DiskError, dsk.path, err)
	}

	if err := toml.NewEncoder(f).Encode(data); err != nil {
		return curated.Errorf(DiskError, dsk.path, err)
	}

	return nil
}

// Load preference values from disk. A missing preferences file is not an
// error. Values in the current command line group supersede values in the
// file.
func (dsk *Disk) Load() error {
	data, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, k, err)
			}
		}
		if ok, v := GetCommandLinePref(k); ok {
			dsk.overrides[k] = v
		}
		if v, ok := dsk.overrides[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, k, err)
			}
		}
	}

	return nil
}

// Reset all registered values to their zero value. Preference groups
// usually follow this with their own SetDefaults() function.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}
