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

// Package types provides the fixed-width integer values LMVC8 operates on:
// Byte (8-bit), Word (16-bit) and Address (a Word restricted to the 64 KiB
// bus range).
package types

// Byte is an 8-bit unsigned value with wrapping arithmetic.
type Byte uint8

// NewByte wraps a raw value into a Byte.
func NewByte(v uint8) Byte {
	return Byte(v)
}

// Value returns the underlying uint8.
func (b Byte) Value() uint8 {
	return uint8(b)
}

// IsZero reports whether the byte is 0x00.
func (b Byte) IsZero() bool {
	return b == 0
}

// IsNegative reports whether bit 7 is set.
func (b Byte) IsNegative() bool {
	return b&0x80 != 0
}

// Add returns a+b wrapped to 8 bits and whether the addition carried out of
// bit 7.
func (b Byte) Add(other Byte) (Byte, bool) {
	sum := uint16(b) + uint16(other)
	return Byte(sum), sum > 0xFF
}

// Sub returns a-b wrapped to 8 bits and whether the subtraction borrowed
// (i.e. b > a).
func (b Byte) Sub(other Byte) (Byte, bool) {
	diff := int16(b) - int16(other)
	return Byte(diff), diff < 0
}

// Increment returns b+1 and the carry flag from Add.
func (b Byte) Increment() (Byte, bool) {
	return b.Add(1)
}

// Decrement returns b-1 and the borrow flag from Sub.
func (b Byte) Decrement() (Byte, bool) {
	return b.Sub(1)
}
