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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values
// in the same way as fmt.Errorf().
//
// The pattern given to Errorf() identifies the error. Packages that raise
// errors declare their patterns as exported constants so that callers can
// test for them:
//
//	const StackUnderflow = "cpu: stack underflow (%s)"
//
//	err := curated.Errorf(StackUnderflow, "pop")
//
//	if curated.Is(err, StackUnderflow) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. A chain is built by using a curated error as one of the
// values of another curated error:
//
//	e := curated.Errorf(StackUnderflow, "pop")
//	f := curated.Errorf("vm: %v", e)
//
//	curated.Has(f, StackUnderflow) // true
//	curated.Is(f, StackUnderflow)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it separates the 'expected' errors that
// a program has anticipated from the 'unexpected' errors that have come from
// somewhere else.
//
// The Error() function normalises the message by removing duplicate
// adjacent parts of the chain. This means that functions in the same package
// can wrap errors with the same prefix without the message growing:
//
//	curated.Errorf("cpu: %v", curated.Errorf("cpu: stack underflow"))
//
// produces the message
//
//	cpu: stack underflow
package curated
