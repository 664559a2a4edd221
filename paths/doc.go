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

// Package paths contains functions to prepare paths for chroma resources.
//
// The ResourcePath() function returns the correct path to the resource
// directory/file specified in the arguments. It handles the creation of
// directories as required but does not create the file.
//
// For development builds the resource path is a hidden directory, .chroma,
// in the current working directory. Release builds use the user's
// configuration directory as returned by os.UserConfigDir(). Build release
// binaries with the "release" build tag.
//
// The UniqueFilename() function creates a filename that is unique to the
// second. It is used for program images added to the regression database and
// for profiling output.
package paths
