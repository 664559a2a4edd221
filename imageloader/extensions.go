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

import (
	"path/filepath"
	"strings"
)

// FileExtensions is the list of file extensions that can be loaded.
var FileExtensions = [...]string{".PNG", ".GIF", ".JPG", ".JPEG", ".BMP", ".TIF", ".TIFF", ".WEBP"}

// Format of an encoded image.
type Format string

// List of formats that can be used with Encode() and Save().
const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// FormatFromFilename returns the encoding format for a filename, based on
// the file extension. Returns false if the extension is not recognised.
func FormatFromFilename(filename string) (Format, bool) {
	switch strings.ToUpper(filepath.Ext(filename)) {
	case ".PNG":
		return PNG, true
	case ".BMP":
		return BMP, true
	case ".TIF", ".TIFF":
		return TIFF, true
	}
	return "", false
}

// IsImageFile returns true if the filename has an extension that can be
// loaded.
func IsImageFile(filename string) bool {
	ext := strings.ToUpper(filepath.Ext(filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}
