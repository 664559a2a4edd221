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

package debugger

// error patterns.
const (
	UnknownCommand   = "debugger: unknown command (%s)"
	MissingArgument  = "debugger: %s: missing argument"
	TooManyArguments = "debugger: %s: too many arguments"
	InvalidArgument  = "debugger: %s: invalid argument (%s)"
	DuplicateBreak   = "debugger: break: already exists at (%d,%d)"
	NoSuchBreak      = "debugger: drop: no break at (%d,%d)"
	NothingToRewind  = "debugger: back: nothing to wind back"
	NoOutput         = "debugger: output: program has not created an output image"
	CommandError     = "debugger: %s: %v"
)
