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

// error patterns.
const (
	NotAvailable       = "database: not available (%s)"
	NotAllowed         = "database: %s not allowed during a read session"
	DuplicateEntryType = "database: duplicate entry type (%s)"
	UnknownEntryType   = "database: unknown entry type (%s) at line %d"
	InvalidKey         = "database: invalid key (%v) at line %d"
	KeyNotAvailable    = "database: key not available (%d)"
	SelectEmpty        = "database: select empty"
)
