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
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/database"
	"github.com/aryansw/chroma-vm/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/aryansw/chroma-vm/paths"
)

// Regressor is the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the newRegression
	// flag is for convenience really (or "logical binding", as the structured
	// programmers would have it)
	//
	// message is the string that is to be printed during the regression
	//
	// returns: success boolean; any failure message (not an error); error
	regress(newRegression bool, output io.Writer, message string) (bool, string, error)
}

// when starting a database session we need to register what entries we will
// find in the database.
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(runEntryType, deserialiseRunEntry)
}

func dbPath() (string, error) {
	p, err := paths.ResourcePath(regressionPath, regressionDBFile)
	if err != nil {
		return "", curated.Errorf(RegressionError, err)
	}
	return p, nil
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer) error {
	if output == nil {
		return curated.Errorf(NilOutput, "RegressList()")
	}

	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityReading, initDBSession)
	if err != nil {
		if curated.Is(err, database.NotAvailable) {
			return emptyList(output)
		}
		return curated.Errorf(RegressionError, err)
	}
	defer db.EndSession(false)

	return db.List(output)
}

// an absent database is the same as an empty database
func emptyList(output io.Writer) error {
	_, err := output.Write([]byte("database is empty\n"))
	return err
}

// RegressAdd adds a new regression handler to the database.
func RegressAdd(output io.Writer, reg Regressor) error {
	if output == nil {
		return curated.Errorf(NilOutput, "RegressAdd()")
	}

	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityCreating, initDBSession)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	msg := fmt.Sprintf("adding: %s", reg)
	ok, _, err := reg.regress(true, output, msg)
	if !ok || err != nil {
		db.EndSession(false)
		output.Write([]byte("\n"))
		return err
	}

	output.Write([]byte(ansi.ClearLine))
	output.Write([]byte(fmt.Sprintf("\radded: %s\n", reg)))

	if _, err := db.Add(reg); err != nil {
		db.EndSession(false)
		return curated.Errorf(RegressionError, err)
	}

	return db.EndSession(true)
}

// RegressDelete removes a regression entry from the db. The confirmation
// reader is used to ask the user if the entry should really be deleted.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	if output == nil {
		return curated.Errorf(NilOutput, "RegressDelete()")
	}

	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf(InvalidKey, key)
	}

	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityModifying, initDBSession)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	ent, err := db.SelectKeys(nil, v)
	if err != nil {
		db.EndSession(false)
		return curated.Errorf(RegressionError, err)
	}

	output.Write([]byte(fmt.Sprintf("%s\ndelete? (y/n): ", ent)))

	confirm := make([]byte, 32)
	if _, err := confirmation.Read(confirm); err != nil {
		db.EndSession(false)
		return curated.Errorf(RegressionError, err)
	}

	if confirm[0] != 'y' && confirm[0] != 'Y' {
		return db.EndSession(false)
	}

	if err := db.Delete(v); err != nil {
		db.EndSession(false)
		return curated.Errorf(RegressionError, err)
	}

	output.Write([]byte(fmt.Sprintf("deleted test #%s from regression database\n", key)))

	return db.EndSession(true)
}

// RegressRunTests runs the tests in the regression database. The filterKeys
// argument specifies which entries to test. An empty list means that every
// entry should be tested. The special key FAILS selects the tests that failed
// in the previous run.
func RegressRunTests(output io.Writer, verbose bool, failOnError bool, filterKeys []string) error {
	if output == nil {
		return curated.Errorf(NilOutput, "RegressRunTests()")
	}

	filterKeys, err := addFailsToKeys(filterKeys)
	if err != nil {
		return err
	}

	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityReading, initDBSession)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}
	defer db.EndSession(false)

	// make sure any supplied keys list is in order
	keysV := make([]int, 0, len(filterKeys))
	for k := range filterKeys {
		v, err := strconv.Atoi(filterKeys[k])
		if err != nil {
			return curated.Errorf(InvalidKey, filterKeys[k])
		}
		keysV = append(keysV, v)
	}
	sort.Ints(keysV)
	keysV = slices.Compact(keysV)

	numSucceed := 0
	numFail := 0
	numError := 0
	numSkipped := 0

	var fails []string

	onSelect := func(key int, ent database.Entry) (bool, error) {
		// datbase entry should also satisfy Regressor interface
		reg, ok := ent.(Regressor)
		if !ok {
			return false, curated.Errorf(NotRegressor)
		}

		// run regress() function with message. message does not have a
		// trailing newline
		msg := fmt.Sprintf("%03d running: %s", key, reg)
		ok, failm, err := reg.regress(false, output, msg)

		// once regress() has completed we clear the line ready for the
		// completion message
		output.Write([]byte(ansi.ClearLine))

		// print completion message depending on result of regress()
		if err != nil {
			numError++
			fails = append(fails, strconv.Itoa(key))
			output.Write([]byte(fmt.Sprintf("\r%03d ERROR: %s\n", key, reg)))

			// output any error message on following line
			if verbose {
				output.Write([]byte(fmt.Sprintf("%s\n", err)))
			}

			if failOnError {
				return false, nil
			}
		} else if !ok {
			numFail++
			fails = append(fails, strconv.Itoa(key))
			output.Write([]byte(fmt.Sprintf("\r%03d failure: %s\n", key, reg)))

			// print failure message on following line
			if verbose && failm != "" {
				output.Write([]byte(fmt.Sprintf("%s\n", failm)))
			}
		} else {
			numSucceed++
			output.Write([]byte(fmt.Sprintf("\r%03d succeed: %s\n", key, reg)))
		}

		return true, nil
	}

	if db.NumEntries() > 0 {
		if len(keysV) > 0 {
			// keys that are not in the database are ignored
			available := make([]int, 0, len(keysV))
			for _, k := range keysV {
				if _, err := db.SelectKeys(nil, k); err == nil {
					available = append(available, k)
				}
			}
			numSkipped = db.NumEntries() - len(available)
			if len(available) > 0 {
				_, err = db.SelectKeys(onSelect, available...)
			}
		} else {
			_, err = db.SelectAll(onSelect)
		}
		if err != nil {
			return curated.Errorf(RegressionError, err)
		}
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("regression tests: %d succeed, %d fail, %d skipped", numSucceed, numFail, numSkipped))
	if numError > 0 {
		s.WriteString(" [with errors]")
	}
	s.WriteString("\n")
	output.Write([]byte(s.String()))

	if err := saveFails(fails); err != nil {
		return err
	}

	return nil
}
