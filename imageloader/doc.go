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

// Package imageloader converts between image files and memory rasters.
//
// Images are loaded with the Loader type. A Loader can load from a local
// file or from an http/https URL. The SHA-1 hash of the loaded data is
// recorded and, if the Hash field was set before loading, checked.
//
//	ld := imageloader.NewLoader("fib.png")
//	err := ld.Load()
//	raster, err := ld.Raster(memory.LabelProgram)
//
// PNG, GIF and JPEG images are decoded by the standard library. BMP, TIFF and
// WebP images are decoded by the golang.org/x/image packages. Lossy formats
// are accepted but are unlikely to be useful as programs.
//
// Each pixel contributes its red, green and blue channels to a word. The
// alpha channel is discarded. Images with transparency should be avoided
// because the colour of a transparent pixel is not well defined.
//
// Rasters are saved with the Save() function. The format is chosen by the
// file extension: PNG, BMP or TIFF.
package imageloader
