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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test error and allow the test to
// continue. The Demand*() functions are the same except that failure is
// fatal. Demand*() is useful when the value being tested is used by further
// tests and so must be correct. For example, testing that the length of a
// slice is correct before indexing it.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions. The nil value is considered a success because of how
// errors usually work (nil indicating no error).
//
// The CompareWriter, RingWriter and CappedWriter types implement the
// io.Writer interface and should be used to capture output.
package test
