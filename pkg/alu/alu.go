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

package alu

import "github.com/Zitronenjoghurt/LMVC8/pkg/types"

// ALU is the console's arithmetic logic unit. It is stateless apart from
// the flags produced by its most recent operation.
type ALU struct {
	flags Flags
}

// Flags returns the flags produced by the most recent operation.
func (a *ALU) Flags() Flags {
	return a.flags
}

// SetFlags overwrites the flag state directly, used when AF is popped off
// the stack.
func (a *ALU) SetFlags(f Flags) {
	a.flags = f
}

// AddBytes computes x+y, updates the flags and returns the result. The new
// flags are read back through Flags.
func (a *ALU) AddBytes(x, y types.Byte) types.Byte {
	result, carry := x.Add(y)
	overflow := byteAddOverflow(x, y, result)
	a.updateFlags(result.IsZero(), carry, result.IsNegative(), overflow)
	return result
}

// SubBytes computes x-y, updates the flags and returns the result. The new
// flags are read back through Flags.
func (a *ALU) SubBytes(x, y types.Byte) types.Byte {
	result, carry := x.Sub(y)
	overflow := byteSubOverflow(x, y, result)
	a.updateFlags(result.IsZero(), carry, result.IsNegative(), overflow)
	return result
}

// AddWords computes a+b for 16-bit operands.
func (a *ALU) AddWords(x, y types.Word) types.Word {
	result, carry := x.Add(y)
	overflow := wordAddOverflow(x, y, result)
	a.updateFlags(result.IsZero(), carry, result.IsNegative(), overflow)
	return result
}

// SubWords computes a-b for 16-bit operands.
func (a *ALU) SubWords(x, y types.Word) types.Word {
	result, carry := x.Sub(y)
	overflow := wordSubOverflow(x, y, result)
	a.updateFlags(result.IsZero(), carry, result.IsNegative(), overflow)
	return result
}

func (a *ALU) updateFlags(zero, carry, negative, overflow bool) {
	a.flags = a.flags.set(FlagZero, zero)
	a.flags = a.flags.set(FlagCarry, carry)
	a.flags = a.flags.set(FlagNegative, negative)
	a.flags = a.flags.set(FlagOverflow, overflow)
}

// Signed overflow on add: operands share a sign and the result's sign
// differs from theirs. Signed overflow on sub: operands differ in sign and
// the result's sign differs from the minuend's. Same shape at both widths,
// just checked against the sign bit of the relevant width.
func byteAddOverflow(x, y, result types.Byte) bool {
	a, b, r := x.Value(), y.Value(), result.Value()
	return (^(a^b)&(a^r))&0x80 != 0
}

func byteSubOverflow(x, y, result types.Byte) bool {
	a, b, r := x.Value(), y.Value(), result.Value()
	return ((a^b)&(a^r))&0x80 != 0
}

func wordAddOverflow(x, y, result types.Word) bool {
	a, b, r := x.Value(), y.Value(), result.Value()
	return (^(a^b)&(a^r))&0x8000 != 0
}

func wordSubOverflow(x, y, result types.Word) bool {
	a, b, r := x.Value(), y.Value(), result.Value()
	return ((a^b)&(a^r))&0x8000 != 0
}
