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

// Word is a 16-bit unsigned value with wrapping arithmetic and little-endian
// byte composition.
type Word uint16

// NewWord wraps a raw value into a Word.
func NewWord(v uint16) Word {
	return Word(v)
}

// FromLE composes a Word from a low and a high byte.
func FromLE(low, high Byte) Word {
	return Word(uint16(high)<<8 | uint16(low))
}

// Value returns the underlying uint16.
func (w Word) Value() uint16 {
	return uint16(w)
}

// LowByte returns the least-significant byte.
func (w Word) LowByte() Byte {
	return Byte(w & 0x00FF)
}

// HighByte returns the most-significant byte.
func (w Word) HighByte() Byte {
	return Byte(w >> 8)
}

// IsZero reports whether the word is 0x0000.
func (w Word) IsZero() bool {
	return w == 0
}

// IsNegative reports whether bit 15 is set.
func (w Word) IsNegative() bool {
	return w&0x8000 != 0
}

// Add returns w+other wrapped to 16 bits and whether the addition carried
// out of bit 15.
func (w Word) Add(other Word) (Word, bool) {
	sum := uint32(w) + uint32(other)
	return Word(sum), sum > 0xFFFF
}

// Sub returns w-other wrapped to 16 bits and whether the subtraction
// borrowed (i.e. other > w).
func (w Word) Sub(other Word) (Word, bool) {
	diff := int32(w) - int32(other)
	return Word(diff), diff < 0
}

// Increment returns w+1 and the carry flag from Add.
func (w Word) Increment() (Word, bool) {
	return w.Add(1)
}

// Decrement returns w-1 and the borrow flag from Sub.
func (w Word) Decrement() (Word, bool) {
	return w.Sub(1)
}
