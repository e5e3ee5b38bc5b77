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

package cpu

import "github.com/Zitronenjoghurt/LMVC8/pkg/registers"

// Opcode-space layout. NoOp, Halt, the LoadR8 block and the Push/Pop block
// sit at fixed addresses; everything else follows the LoadR8 block and the
// Pop block in definition order. An opcode byte with no entry decodes to
// NoOp (decodeTable's zero value).
const (
	opNoOp      = 0x00
	opHalt      = 0x10
	opLoadR8Lo  = 0x20
	opPushLo    = 0x80
	opPopLo     = 0x84
)

var r8Order = []registers.R8{
	registers.A8, registers.B8, registers.C8, registers.D8,
	registers.E8, registers.H8, registers.L8, registers.HL8,
}

var r16Order = []registers.R16{
	registers.BC16, registers.DE16, registers.HL16, registers.SP16,
}

var r16sOrder = []registers.R16S{
	registers.AF16S, registers.BC16S, registers.DE16S, registers.HL16S,
}

var decodeTable [256]Instruction
var encodeTable = map[Instruction]uint8{}

func assign(op uint8, instr Instruction) uint8 {
	decodeTable[op] = instr
	encodeTable[instr] = op
	return op + 1
}

func init() {
	decodeTable[opNoOp] = Instruction{Kind: KindNoOp}
	encodeTable[Instruction{Kind: KindNoOp}] = opNoOp
	decodeTable[opHalt] = Instruction{Kind: KindHalt}
	encodeTable[Instruction{Kind: KindHalt}] = opHalt

	op := uint8(opLoadR8Lo)
	for _, t := range r8Order {
		for _, s := range r8Order {
			if t == s {
				continue
			}
			op = assign(op, Instruction{Kind: KindLoadR8, R8T: t, R8: s})
		}
	}

	for _, x := range r8Order {
		op = assign(op, Instruction{Kind: KindAddR8, R8: x})
	}
	for _, x := range r8Order {
		op = assign(op, Instruction{Kind: KindSubR8, R8: x})
	}
	for _, x := range r16Order {
		op = assign(op, Instruction{Kind: KindAddR16, R16: x})
	}
	for _, x := range r16Order {
		op = assign(op, Instruction{Kind: KindSubR16, R16: x})
	}
	for _, t := range r16Order {
		for _, s := range r16Order {
			if t == s {
				continue
			}
			op = assign(op, Instruction{Kind: KindLoadR16, R16T: t, R16: s})
		}
	}

	op = opPushLo
	for _, x := range r16sOrder {
		op = assign(op, Instruction{Kind: KindPush, R16S: x})
	}
	op = opPopLo
	for _, x := range r16sOrder {
		op = assign(op, Instruction{Kind: KindPop, R16S: x})
	}

	op = opPopLo + uint8(len(r16sOrder))
	for _, x := range r8Order {
		op = assign(op, Instruction{Kind: KindLoadR8i, R8: x})
	}
	for _, x := range r16Order {
		op = assign(op, Instruction{Kind: KindLoadR16i, R16: x})
	}
	for _, x := range r8Order {
		op = assign(op, Instruction{Kind: KindIncR8, R8: x})
	}
	for _, x := range r8Order {
		op = assign(op, Instruction{Kind: KindDecR8, R8: x})
	}
	for _, x := range r16Order {
		op = assign(op, Instruction{Kind: KindIncR16, R16: x})
	}
	for _, x := range r16Order {
		op = assign(op, Instruction{Kind: KindDecR16, R16: x})
	}

	op = assign(op, Instruction{Kind: KindEnableInterrupts})
	op = assign(op, Instruction{Kind: KindDisableInterrupts})
	op = assign(op, Instruction{Kind: KindCall})
	_ = assign(op, Instruction{Kind: KindReturn})
}

// Decode maps an opcode byte to its instruction. Opcode bytes with no
// assigned instruction decode to NoOp.
func Decode(opcode uint8) Instruction {
	return decodeTable[opcode]
}

// Encode is the inverse of Decode, used by anything that assembles opcode
// streams for tests. ok is false for an Instruction that was never assigned
// an opcode.
func Encode(instr Instruction) (opcode uint8, ok bool) {
	opcode, ok = encodeTable[instr]
	return opcode, ok
}
