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

// Kind names an instruction variant. The zero value, KindNoOp, is also what
// an unrecognized opcode byte decodes to (deliberate robustness, not a
// fault).
type Kind uint8

const (
	KindNoOp Kind = iota
	KindHalt
	KindAddR8
	KindSubR8
	KindAddR16
	KindSubR16
	KindLoadR8
	KindLoadR16
	KindLoadR8i
	KindLoadR16i
	KindIncR8
	KindDecR8
	KindIncR16
	KindDecR16
	KindPush
	KindPop
	KindEnableInterrupts
	KindDisableInterrupts
	KindCall
	KindReturn
)

var kindNames = [...]string{
	"NOP", "HALT", "ADD", "SUB", "ADDW", "SUBW", "LD", "LDW", "LDI", "LDWI",
	"INC", "DEC", "INCW", "DECW", "PUSH", "POP", "EI", "DI", "CALL", "RET",
}

// String returns the Kind's mnemonic.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "NOP"
}

// Instruction is a decoded opcode: a Kind plus whichever operand fields that
// Kind uses. Unused fields are left at their zero value.
type Instruction struct {
	Kind Kind

	R8  registers.R8  // AddR8, SubR8, LoadR8i, IncR8, DecR8, and LoadR8's source
	R8T registers.R8  // LoadR8's target

	R16  registers.R16 // AddR16, SubR16, LoadR16i, IncR16, DecR16, and LoadR16's source
	R16T registers.R16 // LoadR16's target

	R16S registers.R16S // Push, Pop
}

// ByteCount returns the number of opcode-stream bytes this instruction
// occupies: the opcode itself plus any trailing immediate/address bytes.
func ByteCount(instr Instruction) int {
	switch instr.Kind {
	case KindLoadR8i:
		return 2
	case KindLoadR16i, KindCall:
		return 3
	default:
		return 1
	}
}

// IsBranchEligible reports whether this instruction can alter control flow
// beyond the linear opcode stream.
func IsBranchEligible(instr Instruction) bool {
	switch instr.Kind {
	case KindCall, KindReturn:
		return true
	default:
		return false
	}
}
