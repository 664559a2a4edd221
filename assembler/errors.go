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

package assembler

// error patterns. AssemblyError wraps the other patterns with the line number.
const (
	AssemblyError    = "assembler: line %d: %v"
	UnknownMnemonic  = "unknown mnemonic (%s)"
	UnknownDirective = "unknown directive (%s)"
	OperandCount     = "%s expects %d operands (found %d)"
	InvalidRegister  = "invalid register (%s)"
	InvalidImmediate = "invalid immediate value (%s)"
	InvalidWord      = "invalid word value (%s)"
	InvalidWidth     = "invalid width (%s)"
	LateWidth        = ".width must appear before the first instruction"
	DuplicateLabel   = "duplicate label (%s)"
	UndefinedLabel   = "undefined label (%s)"
	InvalidLabel     = "invalid label (%s)"
	ProgramTooLarge  = "program too large (%d words for width %d)"
)
