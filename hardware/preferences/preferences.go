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

package preferences

import (
	"os"

	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/logger"
	"github.com/aryansw/chroma-vm/paths"
	"github.com/aryansw/chroma-vm/prefs"
)

// NegativeValue is the error pattern for a negative count.
const NegativeValue = "preferences: %s cannot be negative (%d)"

// default values
const (
	DefaultMaxSteps      = 50000000
	DefaultStackDepth    = 65536
	DefaultProgramOutput = "program_output.png"
	DefaultOutput        = "output.png"
)

// Preferences for the virtual machine.
type Preferences struct {
	dsk *prefs.Disk

	MaxSteps      prefs.Int
	StackDepth    prefs.Int
	EchoLog       prefs.Bool
	ProgramOutput prefs.String
	Output        prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resource path.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

// NewPreferencesFromFile is like NewPreferences() but with an explicit
// preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.EchoLog.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			logger.SetEcho(os.Stderr)
		} else {
			logger.SetEcho(nil)
		}
		return nil
	})

	p.MaxSteps.SetHookPre(nonNegative("vm.maxsteps"))
	p.StackDepth.SetHookPre(nonNegative("vm.stackdepth"))

	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("vm.maxsteps", &p.MaxSteps)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("vm.stackdepth", &p.StackDepth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("vm.echolog", &p.EchoLog)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("output.program", &p.ProgramOutput)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("output.output", &p.Output)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.MaxSteps.Set(DefaultMaxSteps)
	p.StackDepth.Set(DefaultStackDepth)
	p.EchoLog.Set(false)
	p.ProgramOutput.Set(DefaultProgramOutput)
	p.Output.Set(DefaultOutput)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

func nonNegative(key string) func(prefs.Value) error {
	return func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(NegativeValue, key, v.(int))
		}
		return nil
	}
}
