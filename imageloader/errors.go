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

package imageloader

// Error patterns for the curated package.
const (
	LoadError         = "imageloader: %v"
	UnsupportedScheme = "imageloader: unsupported URL scheme (%s)"
	UnexpectedHash    = "imageloader: unexpected hash value for %s"
	UnsupportedFormat = "imageloader: unsupported format (%s)"
	DecodeError       = "imageloader: %s: %v"
	EncodeError       = "imageloader: %s: %v"
)
