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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/aryansw/chroma-vm/hardware/memory"
)

// Run is a chained digest of rasters.
type Run struct {
	digest [sha1.Size]byte
}

// NewRun is the preferred method of initialisation for the Run type.
func NewRun() *Run {
	return &Run{}
}

// Hash implements the Digest interface.
func (dig *Run) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Run) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
}

// Add a raster to the digest. A nil raster is allowed and produces a
// different hash to any raster.
func (dig *Run) Add(r *memory.Raster) {
	// room for the previous digest, the dimensions and the pixels
	n := len(dig.digest) + 8
	if r != nil {
		n += r.Len() * memory.PixelDepth
	}

	data := make([]byte, 0, n)
	data = append(data, dig.digest[:]...)

	if r == nil {
		data = binary.BigEndian.AppendUint32(data, 0)
		data = binary.BigEndian.AppendUint32(data, 0)
	} else {
		data = binary.BigEndian.AppendUint32(data, uint32(r.Width()))
		data = binary.BigEndian.AppendUint32(data, uint32(r.Height()))
		data = append(data, r.Pixels()...)
	}

	dig.digest = sha1.Sum(data)
}

// Result returns the hash of a program and output raster pair. The output
// raster may be nil.
func Result(program *memory.Raster, output *memory.Raster) string {
	dig := NewRun()
	dig.Add(program)
	dig.Add(output)
	return dig.Hash()
}
