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

// Package instructions defines the instruction set of the CPU and the
// decoding of a word into an instruction.
//
// Every opcode is described by a Definition. The Definitions table is the
// single source of truth for the instruction set: the decoder, the encoder,
// the disassembler and the assembler all consult it.
//
// Instruction words are treated as 24 bit fields, with bit 0 being the most
// significant bit of the first byte:
//
//	bits  0-5    raw opcode
//	bits  6-11   first operand
//	bits 12-17   second operand
//	bits 18-23   third operand
//
// An operand field is a dereference flag (the high bit of the field) followed
// by a five bit register index. The LoadLow and LoadHigh instructions take a
// single register operand in bits 6-11 and a 12 bit immediate value in bits
// 12-23.
//
// The raw opcode is reduced modulo the number of opcodes before being looked
// up. This means that every word decodes to some instruction and that
// decoding never fails.
package instructions
