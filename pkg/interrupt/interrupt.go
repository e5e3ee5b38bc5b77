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

// Package interrupt defines the two memory-mapped interrupt flag bytes (IE,
// IA) and their vector table.
package interrupt

import "github.com/Zitronenjoghurt/LMVC8/pkg/types"

const (
	// VectorTimer is the PC the CPU jumps to when the Timer interrupt is
	// serviced.
	VectorTimer types.Word = 0x0040
	// VectorInput is the PC the CPU jumps to when the Input interrupt is
	// serviced.
	VectorInput types.Word = 0x0048
)

// Flags packs the Timer/Input interrupt bits, used for both IE (enable
// mask) and IA (active) registers.
type Flags uint8

const (
	// Timer marks the periodic timer interrupt.
	Timer Flags = 1 << 0
	// Input marks the input-controller interrupt.
	Input Flags = 1 << 1
)

// FromByte unpacks a bus byte into Flags.
func FromByte(b types.Byte) Flags {
	return Flags(b.Value())
}

// Byte packs Flags back into a bus byte.
func (f Flags) Byte() types.Byte {
	return types.NewByte(uint8(f))
}

// Set returns f with the given bits set.
func (f Flags) Set(bits Flags) Flags {
	return f | bits
}

// FirstSet returns the lowest-index pending bit and true, or 0/false if
// nothing is pending.
func (f Flags) FirstSet() (Flags, bool) {
	if f == 0 {
		return 0, false
	}
	lowest := f & (-f)
	return lowest, true
}

// Vector returns the ISR entry point for a single-bit Flags value.
func (f Flags) Vector() types.Word {
	switch f {
	case Timer:
		return VectorTimer
	case Input:
		return VectorInput
	default:
		return 0
	}
}
