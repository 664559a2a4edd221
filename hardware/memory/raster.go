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

package memory

import (
	"fmt"
	"strings"

	"github.com/aryansw/chroma-vm/curated"
	"github.com/aryansw/chroma-vm/hardware/word"
)

// PixelDepth is the number of bytes used to represent each word in a pixel
// buffer.
const PixelDepth = 3

// Raster is a width by height grid of words.
type Raster struct {
	// Label is used to identify the raster in error messages
	Label string

	width  int
	height int

	readOnly bool

	// row major. the word at (x, y) is at index y*width+x
	data []word.Word
}

func checkDimensions(width, height int) error {
	if width > word.MaxDimension || height > word.MaxDimension {
		return curated.Errorf(OversizedImage, width, height, word.MaxDimension)
	}
	if width <= 0 || height <= 0 {
		return curated.Errorf(InvalidImage, fmt.Sprintf("dimensions must be positive (%dx%d)", width, height))
	}
	return nil
}

// NewRaster creates a zero-filled raster of the specified dimensions.
func NewRaster(label string, width, height int) (*Raster, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	return &Raster{
		Label:  label,
		width:  width,
		height: height,
		data:   make([]word.Word, width*height),
	}, nil
}

// NewRasterFromPixels creates a raster from a buffer of pixels, each of
// which is PixelDepth bytes long. The length of the buffer must be exactly
// width*height*PixelDepth.
func NewRasterFromPixels(label string, width, height int, pix []uint8) (*Raster, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	if len(pix) != width*height*PixelDepth {
		return nil, curated.Errorf(InvalidImage, fmt.Sprintf("pixel buffer is %d bytes, wanted %d", len(pix), width*height*PixelDepth))
	}

	r := &Raster{
		Label:  label,
		width:  width,
		height: height,
		data:   make([]word.Word, width*height),
	}

	for i := range r.data {
		p := pix[i*PixelDepth:]
		r.data[i] = word.FromBytes(p[0], p[1], p[2])
	}

	return r, nil
}

// Width of the raster.
func (r *Raster) Width() int {
	return r.width
}

// Height of the raster.
func (r *Raster) Height() int {
	return r.height
}

// Len returns the number of words in the raster.
func (r *Raster) Len() int {
	return len(r.data)
}

// SetReadOnly prevents any further calls to Set() from succeeding.
func (r *Raster) SetReadOnly() {
	r.readOnly = true
}

// ReadOnly returns true if the raster cannot be written to.
func (r *Raster) ReadOnly() bool {
	return r.readOnly
}

// Contains returns true if the coordinate is inside the raster.
func (r *Raster) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < r.width && y < r.height
}

func (r *Raster) outOfBounds(x, y int) error {
	return curated.Errorf(AddressOutOfBounds, x, y, r.Label, r.width, r.height)
}

// Get returns the word at the coordinate.
func (r *Raster) Get(x, y int) (word.Word, error) {
	if !r.Contains(x, y) {
		return 0, r.outOfBounds(x, y)
	}
	return r.data[y*r.width+x], nil
}

// Peek returns the word at the coordinate and true. If the coordinate is
// outside the raster the function returns false. Peek is the non-failing
// equivalent of Get().
func (r *Raster) Peek(x, y int) (word.Word, bool) {
	if !r.Contains(x, y) {
		return 0, false
	}
	return r.data[y*r.width+x], true
}

// Set the word at the coordinate.
func (r *Raster) Set(x, y int, w word.Word) error {
	if r.readOnly {
		return curated.Errorf(ReadOnlyRaster, r.Label)
	}
	if !r.Contains(x, y) {
		return r.outOfBounds(x, y)
	}
	r.data[y*r.width+x] = w & word.Mask
	return nil
}

// Next returns the coordinate n positions after (x, y) in raster order. The
// returned coordinate may be outside the raster.
func (r *Raster) Next(x, y int, n int) (int, int) {
	x += n
	if x >= r.width {
		y += x / r.width
		x %= r.width
	}
	return x, y
}

// Index returns the linear index of the coordinate in raster order. The
// coordinate is not checked.
func (r *Raster) Index(x, y int) int {
	return y*r.width + x
}

// Coords is the inverse of Index().
func (r *Raster) Coords(idx int) (int, int) {
	return idx % r.width, idx / r.width
}

// Pixels returns the raster as a buffer of pixels, PixelDepth bytes per
// pixel.
func (r *Raster) Pixels() []uint8 {
	pix := make([]uint8, 0, len(r.data)*PixelDepth)
	for _, w := range r.data {
		b0, b1, b2 := w.Bytes()
		pix = append(pix, b0, b1, b2)
	}
	return pix
}

// Clone creates a copy of the raster. The copy is never read-only.
func (r *Raster) Clone() *Raster {
	n := &Raster{
		Label:  r.Label,
		width:  r.width,
		height: r.height,
		data:   make([]word.Word, len(r.data)),
	}
	copy(n.data, r.data)
	return n
}

// Equal returns true if both rasters have the same dimensions and content.
// The label is not compared.
func (r *Raster) Equal(o *Raster) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.width != o.width || r.height != o.height {
		return false
	}
	for i := range r.data {
		if r.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// String returns a hex dump of the top-left corner of the raster.
func (r *Raster) String() string {
	const maxRows = 16
	const maxCols = 8

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s %dx%d\n", r.Label, r.width, r.height))
	for y := 0; y < r.height && y < maxRows; y++ {
		s.WriteString(fmt.Sprintf("%4d |", y))
		for x := 0; x < r.width && x < maxCols; x++ {
			s.WriteString(fmt.Sprintf(" %06x", uint32(r.data[y*r.width+x])))
		}
		if r.width > maxCols {
			s.WriteString(" ...")
		}
		s.WriteString("\n")
	}
	if r.height > maxRows {
		s.WriteString("     ...\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}
