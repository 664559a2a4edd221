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

package database

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/aryansw/chroma-vm/curated"
)

func errorf(pattern string, values ...interface{}) error {
	return curated.Errorf(pattern, values...)
}

// Activity is used to specify the general activity of what will be occurring
// during the database session.
type Activity int

// Valid activities: the "higher level" activities inherit the activity
// abilities of the activity levels lower down the scale.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// Session keeps track of a database session.
type Session struct {
	dbfile   *os.File
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]Deserialiser
}

// StartSession starts/initialises a new DB session. argument is the function
// to call when database has been successfully opened. this function should be
// used to add information about the different entries that are to be used in
// the database (see RegisterEntryType() function).
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	var err error

	db := &Session{
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	var flags int
	switch activity {
	case ActivityReading:
		flags = os.O_RDONLY
	case ActivityModifying:
		flags = os.O_RDWR
	case ActivityCreating:
		flags = os.O_RDWR | os.O_CREATE
	}

	db.dbfile, err = os.OpenFile(path, flags, 0600)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errorf(NotAvailable, path)
		}
		return nil, curated.Errorf("database: %v", err)
	}

	// closing of db.dbfile requires a call to EndSession()

	if err := init(db); err != nil {
		db.dbfile.Close()
		return nil, curated.Errorf("database: %v", err)
	}

	if err := db.readDBFile(); err != nil {
		db.dbfile.Close()
		return nil, err
	}

	return db, nil
}

// EndSession closes the database.
func (db *Session) EndSession(commitChanges bool) error {
	if db.dbfile == nil {
		return nil
	}

	// write entries to database
	if commitChanges {
		if db.activity == ActivityReading {
			return errorf(NotAllowed, "commit")
		}

		if err := db.dbfile.Truncate(0); err != nil {
			return curated.Errorf("database: %v", err)
		}

		if _, err := db.dbfile.Seek(0, io.SeekStart); err != nil {
			return curated.Errorf("database: %v", err)
		}

		w := csv.NewWriter(db.dbfile)

		for _, key := range db.SortedKeyList() {
			ent := db.entries[key]

			ser, err := ent.Serialise()
			if err != nil {
				return curated.Errorf("database: %v", err)
			}

			rec := append([]string{strconv.Itoa(key), ent.EntryType()}, ser...)
			if err := w.Write(rec); err != nil {
				return curated.Errorf("database: %v", err)
			}
		}

		w.Flush()
		if err := w.Error(); err != nil {
			return curated.Errorf("database: %v", err)
		}
	}

	// end session by closing file
	err := db.dbfile.Close()
	db.dbfile = nil
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}

const (
	leaderFieldKey int = iota
	leaderFieldID
	numLeaderFields
)

func (db *Session) readDBFile() error {
	if _, err := db.dbfile.Seek(0, io.SeekStart); err != nil {
		return curated.Errorf("database: %v", err)
	}

	r := csv.NewReader(db.dbfile)

	// entry types have a differing number of fields
	r.FieldsPerRecord = -1

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		line, _ := r.FieldPos(0)

		if len(rec) < numLeaderFields {
			return errorf(InvalidKey, rec, line)
		}

		key, err := strconv.Atoi(rec[leaderFieldKey])
		if err != nil || key < 0 || key >= maxEntries {
			return errorf(InvalidKey, rec[leaderFieldKey], line)
		}

		if _, ok := db.entries[key]; ok {
			return errorf(InvalidKey, key, line)
		}

		des, ok := db.entryTypes[rec[leaderFieldID]]
		if !ok {
			return errorf(UnknownEntryType, rec[leaderFieldID], line)
		}

		ent, err := des(rec[numLeaderFields:])
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		db.entries[key] = ent
	}

	return nil
}
