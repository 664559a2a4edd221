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

// Package debugger implements an interactive debugger for the virtual
// machine. The debugger is driven by commands typed into a terminal (see the
// terminal package). Commands are case insensitive. The HELP command lists
// the available commands.
//
// Execution can be stepped one instruction at a time or run until a
// breakpoint is reached. Breakpoints are set on the coordinates of the
// instruction pointer. Every step is recorded so that execution can be
// wound back with the BACK command.
//
// Pressing return on an empty line repeats the previous command. This makes
// stepping through a program one instruction at a time very easy.
package debugger
