// Copyright © 2025 LMVC8 authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package disassembler does a linear walk of an opcode stream, producing one
// node per byte offset.
package disassembler

import "github.com/Zitronenjoghurt/LMVC8/pkg/cpu"

// Node is one row of a disassembly listing: either the instruction decoded
// at Offset, or a trailing operand byte belonging to the instruction before
// it.
type Node struct {
	Offset      int
	Instruction cpu.Instruction
	Operand     byte
	isInstr     bool
}

// IsInstruction reports whether this node is an instruction row, as opposed
// to one of its trailing operand-byte rows.
func (n Node) IsInstruction() bool {
	return n.isInstr
}

// Walk decodes image as a linear opcode stream starting at offset 0. Each
// instruction produces one Instruction node followed by byte_count-1 Byte
// nodes for its trailing operand bytes. A final instruction whose operand
// bytes run past the end of image is truncated at the image boundary.
func Walk(image []byte) []Node {
	var nodes []Node
	for i := 0; i < len(image); {
		instr := cpu.Decode(image[i])
		count := cpu.ByteCount(instr)

		nodes = append(nodes, Node{Offset: i, Instruction: instr, isInstr: true})
		for j := 1; j < count && i+j < len(image); j++ {
			nodes = append(nodes, Node{Offset: i + j, Operand: image[i+j]})
		}
		i += count
	}
	return nodes
}
