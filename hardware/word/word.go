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

// Package word defines the 24-bit machine word. A word is carried by the three
// colour channels of a single pixel and has two interpretations, chosen by
// context: a scalar value and a raster address.
//
// As a scalar, the word is simply the unsigned 24-bit value of the three
// bytes taken most-significant first.
//
// As an address, the word is split into a 12-bit x coordinate and a 12-bit y
// coordinate, again most-significant first:
//
//	byte0           byte1           byte2
//	x11 ... x4      x3..x0 y11..y8  y7 ... y0
//
// In other words, the address (x, y) is the scalar x<<12 | y.
package word

import "fmt"

// Mask is the bit mask for a 24-bit value.
const Mask = 0xffffff

// MaxDimension is the largest width or height of a raster. It is also the
// number of distinct values of an address coordinate.
const MaxDimension = 4096

// the number of bits in each coordinate of an address.
const coordBits = 12
const coordMask = MaxDimension - 1

// Word is an unsigned 24-bit value. The top eight bits of the underlying type
// are always zero.
type Word uint32

// FromBytes creates a Word from the three channels of a pixel.
func FromBytes(b0, b1, b2 uint8) Word {
	return Word(b0)<<16 | Word(b1)<<8 | Word(b2)
}

// Bytes returns the three channels of the pixel representation of the Word.
func (w Word) Bytes() (uint8, uint8, uint8) {
	return uint8(w >> 16), uint8(w >> 8), uint8(w)
}

// FromScalar creates a Word from a scalar value, truncated to 24 bits.
func FromScalar(v uint32) Word {
	return Word(v & Mask)
}

// Scalar returns the value of the Word as an integer.
func (w Word) Scalar() uint32 {
	return uint32(w & Mask)
}

// FromAddress creates a Word from a raster coordinate. Coordinates are
// truncated to 12 bits.
func FromAddress(x, y int) Word {
	return Word(x&coordMask)<<coordBits | Word(y&coordMask)
}

// CanAddress returns true if the coordinate can be stored in a Word without
// truncation.
func CanAddress(x, y int) bool {
	return x >= 0 && y >= 0 && x < MaxDimension && y < MaxDimension
}

// Address returns the Word interpreted as a raster coordinate.
func (w Word) Address() (int, int) {
	return int(w>>coordBits) & coordMask, int(w) & coordMask
}

func (w Word) String() string {
	return fmt.Sprintf("%#06x", uint32(w&Mask))
}

// AddressString formats the Word as a raster coordinate.
func (w Word) AddressString() string {
	x, y := w.Address()
	return fmt.Sprintf("(%d,%d)", x, y)
}
