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

// Package ram holds the console's 32 KiB of read/write working memory.
package ram

import "github.com/Zitronenjoghurt/LMVC8/pkg/types"

// Capacity is the fixed size of RAM: 32 KiB.
const Capacity = 0x8000

// RAM is a zero-initialised, word-address-mapped 32 KiB read/write region.
type RAM struct {
	data [Capacity]uint8
}

// New returns a freshly zeroed RAM.
func New() *RAM {
	return &RAM{}
}

// Read returns the byte at addr, which must already be rebased into
// [0, Capacity).
func (r *RAM) Read(addr types.Address) types.Byte {
	return types.NewByte(r.data[addr.Value()])
}

// Write stores value at addr, which must already be rebased into
// [0, Capacity).
func (r *RAM) Write(addr types.Address, value types.Byte) {
	r.data[addr.Value()] = value.Value()
}

// Reset zeroes the entire region.
func (r *RAM) Reset() {
	for i := range r.data {
		r.data[i] = 0
	}
}
