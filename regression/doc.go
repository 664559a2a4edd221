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

// Package regression facilitates the regression testing of programs. Tests
// are recorded in a flat file database (see the database package) and run
// on demand.
//
// A run regression records the digest of a program execution. When the
// regression is added to the database, the program (and the input image if
// there is one) are copied into the regression store so that later changes
// to the original files do not affect the test.
//
// The digest of a run regression can be made from the final state of the
// program and output images (DigestResult) or from the sequence of executed
// instructions (DigestTrace). The trace digest is the more sensitive of the
// two and will detect changes to the execution path even when the final
// result is the same.
package regression
