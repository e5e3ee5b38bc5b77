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

// Package alu implements the byte/word arithmetic unit: add and subtract
// with Zero/Carry/Negative/Overflow flags.
package alu

// Flags holds the four ALU status bits as a packed byte, compatible with
// the AF stack-pair encoding (low byte of AF).
type Flags uint8

const (
	// FlagZero is set when the most recent result was zero.
	FlagZero Flags = 1 << 0
	// FlagCarry is set when the most recent operation carried/borrowed out
	// of the top bit.
	FlagCarry Flags = 1 << 1
	// FlagNegative is set when the top bit of the most recent result is 1.
	FlagNegative Flags = 1 << 2
	// FlagOverflow is set on signed overflow.
	FlagOverflow Flags = 1 << 3
)

// Bits returns the flags packed into a single byte.
func (f Flags) Bits() uint8 {
	return uint8(f)
}

// FromBits unpacks a byte into Flags, keeping only the four defined bits.
func FromBits(b uint8) Flags {
	return Flags(b) & (FlagZero | FlagCarry | FlagNegative | FlagOverflow)
}

// IsZero reports whether FlagZero is set.
func (f Flags) IsZero() bool { return f&FlagZero != 0 }

// IsCarry reports whether FlagCarry is set.
func (f Flags) IsCarry() bool { return f&FlagCarry != 0 }

// IsNegative reports whether FlagNegative is set.
func (f Flags) IsNegative() bool { return f&FlagNegative != 0 }

// IsOverflow reports whether FlagOverflow is set.
func (f Flags) IsOverflow() bool { return f&FlagOverflow != 0 }

func (f Flags) set(flag Flags, on bool) Flags {
	if on {
		return f | flag
	}
	return f &^ flag
}
