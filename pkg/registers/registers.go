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

// Package registers implements the general-purpose register file and its
// three virtual views: r8, r16, and r16s (stack pairs).
package registers

import (
	"github.com/Zitronenjoghurt/LMVC8/pkg/alu"
	"github.com/Zitronenjoghurt/LMVC8/pkg/types"
)

// Bus is the minimal surface registers needs from the bus: a read/write
// pair, used only for the R8::HL indirect view.
type Bus interface {
	Read(addr types.Address) types.Byte
	Write(addr types.Address, value types.Byte)
}

// R8 selects a byte-wide register view.
type R8 uint8

// Byte-wide register selectors. HL is not a physical register: it reads and
// writes through the bus at the address formed by H:L.
const (
	A8 R8 = iota
	B8
	C8
	D8
	E8
	H8
	L8
	HL8
)

// ACC is the accumulator used by AddR8/SubR8.
const ACC = A8

// R16 selects a word-wide register view.
type R16 uint8

// Word-wide register selectors.
const (
	BC16 R16 = iota
	DE16
	HL16
	SP16
)

// ACC16 is the 16-bit accumulator used by AddR16/SubR16.
const ACC16 = BC16

// R16S selects a stack-pair register view. AF is only reachable through
// this family.
type R16S uint8

// Stack-pair selectors.
const (
	AF16S R16S = iota
	BC16S
	DE16S
	HL16S
)

// Registers is the general-purpose register file: A, B, C, D, E, H, L and
// SP.
type Registers struct {
	a, b, c, d, e, h, l types.Byte
	sp                  types.Word
}

// GetR8 reads a byte-wide register. For HL8 it performs a bus read at
// address H:L, costing a bus cycle.
func (r *Registers) GetR8(bus Bus, reg R8) types.Byte {
	switch reg {
	case A8:
		return r.a
	case B8:
		return r.b
	case C8:
		return r.c
	case D8:
		return r.d
	case E8:
		return r.e
	case H8:
		return r.h
	case L8:
		return r.l
	default:
		return bus.Read(types.AddressFromWord(r.GetR16(HL16)))
	}
}

// SetR8 writes a byte-wide register. For HL8 it performs a bus write at
// address H:L, costing a bus cycle.
func (r *Registers) SetR8(bus Bus, reg R8, value types.Byte) {
	switch reg {
	case A8:
		r.a = value
	case B8:
		r.b = value
	case C8:
		r.c = value
	case D8:
		r.d = value
	case E8:
		r.e = value
	case H8:
		r.h = value
	case L8:
		r.l = value
	default:
		bus.Write(types.AddressFromWord(r.GetR16(HL16)), value)
	}
}

// IncrementR8 reads, increments and writes back a byte-wide register (two
// bus accesses for HL8).
func (r *Registers) IncrementR8(bus Bus, reg R8) {
	before := r.GetR8(bus, reg)
	next, _ := before.Increment()
	r.SetR8(bus, reg, next)
}

// DecrementR8 reads, decrements and writes back a byte-wide register (two
// bus accesses for HL8).
func (r *Registers) DecrementR8(bus Bus, reg R8) {
	before := r.GetR8(bus, reg)
	prev, _ := before.Decrement()
	r.SetR8(bus, reg, prev)
}

// GetR16 reads a word-wide register. BC/DE/HL compose high=first letter,
// low=second letter.
func (r *Registers) GetR16(reg R16) types.Word {
	switch reg {
	case BC16:
		return types.FromLE(r.c, r.b)
	case DE16:
		return types.FromLE(r.e, r.d)
	case HL16:
		return types.FromLE(r.l, r.h)
	default:
		return r.sp
	}
}

// SetR16 writes a word-wide register.
func (r *Registers) SetR16(reg R16, value types.Word) {
	switch reg {
	case BC16:
		r.b, r.c = value.HighByte(), value.LowByte()
	case DE16:
		r.d, r.e = value.HighByte(), value.LowByte()
	case HL16:
		r.h, r.l = value.HighByte(), value.LowByte()
	default:
		r.sp = value
	}
}

// IncrementR16 adds 1 to a word-wide register.
func (r *Registers) IncrementR16(reg R16) {
	next, _ := r.GetR16(reg).Increment()
	r.SetR16(reg, next)
}

// DecrementR16 subtracts 1 from a word-wide register.
func (r *Registers) DecrementR16(reg R16) {
	prev, _ := r.GetR16(reg).Decrement()
	r.SetR16(reg, prev)
}

// GetR16S reads a stack-pair register. AF reads A as the high byte and the
// ALU flag byte as the low byte.
func (r *Registers) GetR16S(reg R16S, flags alu.Flags) types.Word {
	switch reg {
	case AF16S:
		return types.FromLE(types.NewByte(flags.Bits()), r.a)
	case BC16S:
		return types.FromLE(r.c, r.b)
	case DE16S:
		return types.FromLE(r.e, r.d)
	default:
		return types.FromLE(r.l, r.h)
	}
}

// SetR16S writes a stack-pair register. AF replaces A with the high byte
// and the flag byte wholesale with the low byte.
func (r *Registers) SetR16S(reg R16S, flags *alu.Flags, value types.Word) {
	switch reg {
	case AF16S:
		r.a = value.HighByte()
		*flags = alu.FromBits(value.LowByte().Value())
	case BC16S:
		r.b, r.c = value.HighByte(), value.LowByte()
	case DE16S:
		r.d, r.e = value.HighByte(), value.LowByte()
	default:
		r.h, r.l = value.HighByte(), value.LowByte()
	}
}

// Reset zeroes the entire register file.
func (r *Registers) Reset() {
	*r = Registers{}
}

// A returns the accumulator, for snapshot/debug purposes.
func (r *Registers) A() types.Byte { return r.a }

// B returns B, for snapshot/debug purposes.
func (r *Registers) B() types.Byte { return r.b }

// C returns C, for snapshot/debug purposes.
func (r *Registers) C() types.Byte { return r.c }

// D returns D, for snapshot/debug purposes.
func (r *Registers) D() types.Byte { return r.d }

// E returns E, for snapshot/debug purposes.
func (r *Registers) E() types.Byte { return r.e }

// H returns H, for snapshot/debug purposes.
func (r *Registers) H() types.Byte { return r.h }

// L returns L, for snapshot/debug purposes.
func (r *Registers) L() types.Byte { return r.l }

// SP returns the stack pointer, for snapshot/debug purposes.
func (r *Registers) SP() types.Word { return r.sp }
