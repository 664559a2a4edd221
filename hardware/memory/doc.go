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

// Package memory implements the raster memory of the VM. A raster is a
// bounds-checked two dimensional grid of words, one word per pixel of an
// image. There are three rasters in a running machine:
//
//	program   read-write, also the instruction stream
//	input     read-only, optional
//	output    created on demand, same dimensions as program
//
// The three rasters are bundled by the Memory type. The CPU accesses memory
// through the Bus interface, which only ever addresses the program raster.
// This means that the program and its data share a single address space and
// that a program can modify itself.
//
//	CPU ---- bus ---- PROGRAM
//	              \
//	               \- (alloc) ---- OUTPUT
//
//	                  INPUT
//
// Coordinates are (x, y) pairs with 0 <= x < width and 0 <= y < height. The
// raster order of a grid is left to right and then top to bottom. The Next()
// function advances a coordinate in raster order.
//
// Neither dimension of a raster can exceed word.MaxDimension. Oversized
// images are rejected when the raster is created.
package memory
