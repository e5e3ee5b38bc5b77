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

package registers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Zitronenjoghurt/LMVC8/pkg/alu"
	"github.com/Zitronenjoghurt/LMVC8/pkg/registers"
	"github.com/Zitronenjoghurt/LMVC8/pkg/types"
)

type fakeBus struct {
	mem map[uint16]types.Byte
}

func newFakeBus() *fakeBus {
	return &fakeBus{mem: map[uint16]types.Byte{}}
}

func (f *fakeBus) Read(addr types.Address) types.Byte {
	return f.mem[addr.Value()]
}

func (f *fakeBus) Write(addr types.Address, value types.Byte) {
	f.mem[addr.Value()] = value
}

func TestR8PlainRegistersArePure(t *testing.T) {
	var r registers.Registers
	bus := newFakeBus()
	r.SetR8(bus, registers.B8, types.NewByte(0x42))
	assert.Equal(t, uint8(0x42), r.GetR8(bus, registers.B8).Value())
	assert.Len(t, bus.mem, 0)
}

func TestR8HLGoesThroughBus(t *testing.T) {
	var r registers.Registers
	bus := newFakeBus()
	r.SetR16(registers.HL16, types.NewWord(0x8000))
	r.SetR8(bus, registers.HL8, types.NewByte(0x71))
	assert.Equal(t, uint8(0x71), bus.mem[0x8000].Value())
	assert.Equal(t, uint8(0x71), r.GetR8(bus, registers.HL8).Value())
}

func TestR16Composition(t *testing.T) {
	var r registers.Registers
	r.SetR16(registers.BC16, types.NewWord(0x1234))
	assert.Equal(t, uint8(0x12), r.B().Value())
	assert.Equal(t, uint8(0x34), r.C().Value())
	assert.Equal(t, uint16(0x1234), r.GetR16(registers.BC16).Value())
}

func TestR16SAFUsesFlagByte(t *testing.T) {
	var r registers.Registers
	var flags alu.Flags
	r.SetR16S(registers.AF16S, &flags, types.NewWord(0x7501))
	assert.Equal(t, uint8(0x75), r.A().Value())
	assert.Equal(t, uint8(0x01), flags.Bits())
	assert.Equal(t, uint16(0x7501), r.GetR16S(registers.AF16S, flags).Value())
}

func TestIncrementDecrementR16(t *testing.T) {
	var r registers.Registers
	r.SetR16(registers.HL16, types.NewWord(0xFFFF))
	r.IncrementR16(registers.HL16)
	assert.Equal(t, uint16(0), r.GetR16(registers.HL16).Value())
	r.DecrementR16(registers.HL16)
	assert.Equal(t, uint16(0xFFFF), r.GetR16(registers.HL16).Value())
}

func TestResetClearsEverything(t *testing.T) {
	var r registers.Registers
	r.SetR16(registers.BC16, types.NewWord(0x1234))
	r.Reset()
	assert.Equal(t, uint16(0), r.GetR16(registers.BC16).Value())
}
