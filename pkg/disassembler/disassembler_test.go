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

package disassembler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zitronenjoghurt/LMVC8/pkg/cpu"
	"github.com/Zitronenjoghurt/LMVC8/pkg/disassembler"
	"github.com/Zitronenjoghurt/LMVC8/pkg/registers"
)

func opcode(t *testing.T, instr cpu.Instruction) byte {
	t.Helper()
	op, ok := cpu.Encode(instr)
	require.True(t, ok)
	return op
}

func TestWalkSingleByteInstructionsProduceOneNodeEach(t *testing.T) {
	noop := opcode(t, cpu.Instruction{Kind: cpu.KindNoOp})
	halt := opcode(t, cpu.Instruction{Kind: cpu.KindHalt})

	nodes := disassembler.Walk([]byte{noop, halt})
	require.Len(t, nodes, 2)
	assert.True(t, nodes[0].IsInstruction())
	assert.Equal(t, cpu.KindNoOp, nodes[0].Instruction.Kind)
	assert.True(t, nodes[1].IsInstruction())
	assert.Equal(t, cpu.KindHalt, nodes[1].Instruction.Kind)
}

func TestWalkEmitsTrailingByteNodesForImmediates(t *testing.T) {
	loadAi := opcode(t, cpu.Instruction{Kind: cpu.KindLoadR8i, R8: registers.A8})

	nodes := disassembler.Walk([]byte{loadAi, 0x42})
	require.Len(t, nodes, 2)
	assert.True(t, nodes[0].IsInstruction())
	assert.False(t, nodes[1].IsInstruction())
	assert.Equal(t, byte(0x42), nodes[1].Operand)
	assert.Equal(t, 1, nodes[1].Offset)
}

func TestWalkHandlesThreeByteInstructions(t *testing.T) {
	loadBCi := opcode(t, cpu.Instruction{Kind: cpu.KindLoadR16i, R16: registers.BC16})

	nodes := disassembler.Walk([]byte{loadBCi, 0x34, 0x12})
	require.Len(t, nodes, 3)
	assert.True(t, nodes[0].IsInstruction())
	assert.False(t, nodes[1].IsInstruction())
	assert.False(t, nodes[2].IsInstruction())
}

func TestWalkTruncatesAtImageBoundary(t *testing.T) {
	loadBCi := opcode(t, cpu.Instruction{Kind: cpu.KindLoadR16i, R16: registers.BC16})

	nodes := disassembler.Walk([]byte{loadBCi, 0x34})
	require.Len(t, nodes, 2)
}

func TestWalkAdvancesOffsetsContiguously(t *testing.T) {
	noop := opcode(t, cpu.Instruction{Kind: cpu.KindNoOp})
	loadAi := opcode(t, cpu.Instruction{Kind: cpu.KindLoadR8i, R8: registers.A8})

	nodes := disassembler.Walk([]byte{noop, loadAi, 0x01, noop})
	offsets := make([]int, len(nodes))
	for i, n := range nodes {
		offsets[i] = n.Offset
	}
	assert.Equal(t, []int{0, 1, 2, 3}, offsets)
}
