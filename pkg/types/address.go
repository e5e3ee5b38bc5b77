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

package types

// Address is a Word used to index the 64 KiB bus space.
type Address Word

// NewAddress wraps a raw value into an Address.
func NewAddress(v uint16) Address {
	return Address(v)
}

// AddressFromWord converts a Word to an Address.
func AddressFromWord(w Word) Address {
	return Address(w)
}

// Value returns the underlying uint16.
func (a Address) Value() uint16 {
	return uint16(a)
}

// Word returns the Address as a plain Word.
func (a Address) Word() Word {
	return Word(a)
}

// InRange reports whether a falls within [low, high] inclusive.
func (a Address) InRange(low, high Address) bool {
	return a >= low && a <= high
}

// Offset returns a-base; used when rebasing an address into a sub-region.
func (a Address) Offset(base Address) Address {
	return Address(uint16(a) - uint16(base))
}
