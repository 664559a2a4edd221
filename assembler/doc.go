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

// Package assembler converts a text representation of a program into a
// program image.
//
// The syntax is line based. Each line is made up of an optional label, an
// optional instruction or directive and an optional comment. Comments begin
// with a semi-colon and continue to the end of the line.
//
//	; count down from ten
//	        ldl r1, 10
//	        ldl r2, 1
//	        la  r3, loop
//	loop:   sub r1, r1, r2
//	        jif r1, r3
//	        halt
//
// Mnemonics are those of the Definitions table in the instructions package.
// Registers are named r0 to r31. The instruction pointer register r31 can
// also be named ip. A register in square brackets refers to the word at the
// address held by the register.
//
// Immediate values are twelve bits and can be written in decimal or in
// hexadecimal with the 0x prefix. The x and y coordinates of a label can be
// used as immediate values with x(label) and y(label).
//
// The la pseudo-instruction loads the address of a label into a register. It
// assembles as a ldh instruction followed by a ldl instruction.
//
// Directives:
//
//	.width N        width of the program image. default 16. must appear
//	                before the first instruction
//	.word v, ...    raw words. values can be numbers or labels. a label
//	                assembles as the address of the label
//
// The height of the program image is the smallest height that can contain
// every assembled word. Unused cells are filled with halt instructions.
package assembler
