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

// Package modalflag wraps the flag package of the standard library so that a
// command line can select a mode of operation, with each mode having its own
// set of flags and its own sub-modes.
//
// The chroma command line is a good example. The top level selects one of
// RUN, DISASM, ASM, DEBUG, REGRESS, PERFORMANCE or VERSION, with RUN as the
// default. The REGRESS mode then selects one of RUN, LIST, DELETE or ADD.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG", "REGRESS")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "REGRESS":
//		md.NewMode()
//		md.AddSubModes("RUN", "LIST")
//		verbose := md.AddBool("verbose", false, "output more detail")
//		...
//	}
//
// Flags are added with the AddBool(), AddInt() etc. functions before the call
// to Parse(). Arguments that are neither flags nor a listed sub-mode are
// returned by RemainingArgs() and GetArg().
//
// Sub-mode comparisons are case insensitive. The first sub-mode added is the
// default and is selected when the first argument after the flags does not
// name a sub-mode.
//
// Help is printed to the Output writer when the -help flag is encountered.
// Parse() returns ParseHelp in that case and the caller should end the
// program without printing anything further.
package modalflag
