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

// Package digest is used to create mathematical hashes of the machine state.
// Hashes are used by the regression package to check that a program behaves
// in the same way from one version of chroma to the next.
//
// The Run type creates a hash of the rasters at the end of a run. The Trace
// type creates a hash of every instruction executed during a run. Both types
// chain their hashes: each new hash includes the previous hash value.
//
// Both types implement the Digest interface.
package digest
