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

package interrupt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Zitronenjoghurt/LMVC8/pkg/interrupt"
)

func TestFirstSetPicksLowestBit(t *testing.T) {
	pending := interrupt.Timer | interrupt.Input
	first, ok := pending.FirstSet()
	assert.True(t, ok)
	assert.Equal(t, interrupt.Timer, first)
}

func TestFirstSetNoneEmpty(t *testing.T) {
	_, ok := interrupt.Flags(0).FirstSet()
	assert.False(t, ok)
}

func TestVectors(t *testing.T) {
	assert.Equal(t, uint16(0x0040), interrupt.Timer.Vector().Value())
	assert.Equal(t, uint16(0x0048), interrupt.Input.Vector().Value())
}

func TestByteRoundTrip(t *testing.T) {
	f := interrupt.Input
	assert.Equal(t, f, interrupt.FromByte(f.Byte()))
}
