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

// Error patterns for the curated package.
const (
	OversizedImage     = "memory: oversized image (%dx%d): maximum dimension is %d"
	InvalidImage       = "memory: invalid image: %s"
	AddressOutOfBounds = "memory: address out of bounds: (%d,%d) is outside %s (%dx%d)"
	ReadOnlyRaster     = "memory: %s is read-only"
)
