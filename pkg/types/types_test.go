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

package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Zitronenjoghurt/LMVC8/pkg/types"
)

func TestByteAddWraps(t *testing.T) {
	for a := 0; a < 256; a += 17 {
		for b := 0; b < 256; b += 23 {
			result, carry := types.NewByte(uint8(a)).Add(types.NewByte(uint8(b)))
			assert.Equal(t, uint8((a+b)%256), result.Value())
			assert.Equal(t, a+b >= 256, carry)
		}
	}
}

func TestByteSubBorrow(t *testing.T) {
	result, borrow := types.NewByte(0).Sub(types.NewByte(1))
	assert.Equal(t, uint8(0xFF), result.Value())
	assert.True(t, borrow)
	assert.True(t, result.IsNegative())
}

func TestByteIncrementDecrementRoundTrip(t *testing.T) {
	b := types.NewByte(0xFF)
	next, carry := b.Increment()
	assert.Equal(t, uint8(0), next.Value())
	assert.True(t, carry)
	assert.True(t, next.IsZero())

	prev, borrow := next.Decrement()
	assert.Equal(t, uint8(0xFF), prev.Value())
	assert.True(t, borrow)
}

func TestWordAddWraps(t *testing.T) {
	result, carry := types.NewWord(0xFFFF).Add(types.NewWord(1))
	assert.Equal(t, uint16(0), result.Value())
	assert.True(t, carry)
}

func TestWordFromLEAndBytes(t *testing.T) {
	w := types.FromLE(types.NewByte(0x34), types.NewByte(0x12))
	assert.Equal(t, uint16(0x1234), w.Value())
	assert.Equal(t, uint8(0x34), w.LowByte().Value())
	assert.Equal(t, uint8(0x12), w.HighByte().Value())
}

func TestWordIsNegative(t *testing.T) {
	assert.True(t, types.NewWord(0x8000).IsNegative())
	assert.False(t, types.NewWord(0x7FFF).IsNegative())
}

func TestAddressOffset(t *testing.T) {
	a := types.NewAddress(0x8010)
	assert.Equal(t, uint16(0x10), a.Offset(types.NewAddress(0x8000)).Value())
}

func TestAddressInRange(t *testing.T) {
	a := types.NewAddress(0xFFFB)
	assert.True(t, a.InRange(types.NewAddress(0xFFFB), types.NewAddress(0xFFFD)))
	assert.False(t, a.InRange(types.NewAddress(0xFFFE), types.NewAddress(0xFFFF)))
}
