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
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/database"
	"github.com/aryansw/chroma-vm/digest"
	"github.com/aryansw/chroma-vm/hardware"
	"github.com/aryansw/chroma-vm/hardware/memory"
	"github.com/aryansw/chroma-vm/hardware/preferences"
	"github.com/aryansw/chroma-vm/imageloader"
)

const runEntryType = "run"

const (
	runFieldProgram int = iota
	runFieldInput
	runFieldMaxSteps
	runFieldDigestMode
	runFieldDigest
	runFieldNotes
	numRunFields
)

// RunRegression is the regression type that runs a program until it halts and
// compares the digest of the execution with a previously recorded value.
type RunRegression struct {
	Program  string
	Input    string
	MaxSteps int
	Mode     DigestMode
	Notes    string
	digest   string
}

// NewRunRegression is the preferred method of initialisation for the
// RunRegression type. The input filename can be empty.
func NewRunRegression(program string, input string, maxSteps int, mode DigestMode, notes string) *RunRegression {
	if maxSteps <= 0 {
		maxSteps = preferences.DefaultMaxSteps
	}
	return &RunRegression{
		Program:  program,
		Input:    input,
		MaxSteps: maxSteps,
		Mode:     mode,
		Notes:    notes,
	}
}

func deserialiseRunEntry(fields database.SerialisedEntry) (database.Entry, error) {
	reg := &RunRegression{}

	// basic sanity check
	if len(fields) != numRunFields {
		return nil, curated.Errorf(FieldCount, runEntryType, len(fields))
	}

	// string fields need no conversion
	reg.Program = fields[runFieldProgram]
	reg.Input = fields[runFieldInput]
	reg.digest = fields[runFieldDigest]
	reg.Notes = fields[runFieldNotes]

	var err error

	reg.MaxSteps, err = strconv.Atoi(fields[runFieldMaxSteps])
	if err != nil {
		return nil, curated.Errorf(InvalidField, runEntryType, "max steps", fields[runFieldMaxSteps])
	}

	reg.Mode, err = ParseDigestMode(fields[runFieldDigestMode])
	if err != nil {
		return nil, curated.Errorf(InvalidField, runEntryType, "digest mode", fields[runFieldDigestMode])
	}

	return reg, nil
}

// EntryType implements the database.Entry interface.
func (reg RunRegression) EntryType() string {
	return runEntryType
}

// Serialise implements the database.Entry interface.
func (reg *RunRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
			reg.Program,
			reg.Input,
			strconv.Itoa(reg.MaxSteps),
			reg.Mode.String(),
			reg.digest,
			reg.Notes,
		},
		nil
}

// CleanUp implements the database.Entry interface.
func (reg RunRegression) CleanUp() error {
	if err := removeFile(reg.Program); err != nil {
		return err
	}
	return removeFile(reg.Input)
}

// String implements the database.Entry interface.
func (reg RunRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s/%s] %s", reg.EntryType(), reg.Mode, filepath.Base(reg.Program)))
	if reg.Input != "" {
		s.WriteString(fmt.Sprintf(" < %s", filepath.Base(reg.Input)))
	}
	s.WriteString(fmt.Sprintf(" steps=%d", reg.MaxSteps))
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Notes))
	}
	return s.String()
}

// Digest returns the recorded digest of the regression. Empty if the
// regression has not been run.
func (reg RunRegression) Digest() string {
	return reg.digest
}

// store the program and input files in the regression store
func (reg *RunRegression) store() error {
	prg, err := storeFile(reg.Program)
	if err != nil {
		return err
	}

	var inp string
	if reg.Input != "" {
		inp, err = storeFile(reg.Input)
		if err != nil {
			_ = removeFile(prg)
			return err
		}
	}

	reg.Program = prg
	reg.Input = inp

	return nil
}

// execute the program and return the digest of the execution
func (reg *RunRegression) execute() (string, error) {
	program, err := imageloader.Load(reg.Program, memory.LabelProgram)
	if err != nil {
		return "", err
	}

	var input *memory.Raster
	if reg.Input != "" {
		input, err = imageloader.Load(reg.Input, memory.LabelInput)
		if err != nil {
			return "", err
		}
	}

	m, err := hardware.NewMachine(program, input, hardware.Limits{
		MaxSteps:   reg.MaxSteps,
		StackDepth: preferences.DefaultStackDepth,
	})
	if err != nil {
		return "", err
	}

	switch reg.Mode {
	case DigestTrace:
		trace := digest.NewTrace()
		for !m.Halted() {
			if err := m.Step(); err != nil {
				return "", err
			}
			trace.Step(m.CPU.LastResult)
		}
		return trace.Hash(), nil

	case DigestResult:
		if err := m.Run(nil); err != nil {
			return "", err
		}
		return digest.Result(m.Mem.Program, m.Mem.Output), nil
	}

	return "", curated.Errorf(InvalidDigest, reg.Mode)
}

// regress implements the regression.Regressor interface.
func (reg *RunRegression) regress(newRegression bool, output io.Writer, msg string) (bool, string, error) {
	output.Write([]byte(msg))

	if newRegression {
		if err := reg.store(); err != nil {
			return false, "", err
		}
	}

	d, err := reg.execute()
	if err != nil {
		if newRegression {
			_ = reg.CleanUp()
		}
		return false, "", curated.Errorf(ProgramExecution, runEntryType, err)
	}

	if newRegression {
		reg.digest = d
		return true, "", nil
	}

	if d != reg.digest {
		return false, "digest mismatch", nil
	}

	return true, "", nil
}
