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

// error patterns.
const (
	RegressionError  = "regression: %v"
	InvalidKey       = "regression: invalid key (%s)"
	InvalidField     = "regression: %s: invalid %s field (%s)"
	FieldCount       = "regression: %s: wrong number of fields (%d)"
	NotRegressor     = "regression: database entry does not satisfy Regressor interface"
	NoPreviousFails  = "regression: no previous fails"
	InvalidDigest    = "regression: invalid digest mode (%s)"
	NilOutput        = "regression: %s: io.Writer should not be nil (use a nopWriter)"
	ProgramExecution = "regression: %s: %v"
)
