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

// Package bus decodes the 64 KiB address space into ROM, RAM, the input
// controller and the two interrupt flag SFRs, accounting bus cycles per
// access.
package bus

import (
	"github.com/Zitronenjoghurt/LMVC8/pkg/inputctl"
	"github.com/Zitronenjoghurt/LMVC8/pkg/interrupt"
	"github.com/Zitronenjoghurt/LMVC8/pkg/ram"
	"github.com/Zitronenjoghurt/LMVC8/pkg/rom"
	"github.com/Zitronenjoghurt/LMVC8/pkg/types"
)

// Address map.
const (
	romLow   = 0x0000
	romHigh  = 0x7FFF
	ramLow   = 0x8000
	ramHigh  = 0xFFFA
	icLow    = 0xFFFB
	icHigh   = 0xFFFD
	addrIA   = 0xFFFE
	addrIE   = 0xFFFF
)

// Bus owns the console's memory-mapped devices and the per-step cycle
// accumulator. It is the sole site of address decoding: adding a device
// means extending read/write and the device list below.
type Bus struct {
	rom *rom.ROM
	ram *ram.RAM
	ic  inputctl.Controller

	ia, ie     interrupt.Flags
	stepCycles uint64
}

// New builds a Bus around an already-loaded ROM and fresh RAM.
func New(r *rom.ROM) *Bus {
	return &Bus{rom: r, ram: ram.New()}
}

// Tick increments the step cycle counter by one.
func (b *Bus) Tick() {
	b.stepCycles++
}

// Read decodes addr and returns the byte there. Every access outside the
// two interrupt SFRs ticks the bus first.
func (b *Bus) Read(addr types.Address) types.Byte {
	if !isSFR(addr) {
		b.Tick()
	}

	switch {
	case addr.InRange(romLow, romHigh):
		return b.rom.Read(addr.Offset(romLow))
	case addr.InRange(ramLow, ramHigh):
		return b.ram.Read(addr.Offset(ramLow))
	case addr.InRange(icLow, icHigh):
		return b.ic.Read(addr.Offset(icLow))
	case addr.Value() == addrIA:
		return b.ia.Byte()
	default: // addrIE
		return b.ie.Byte()
	}
}

// Write decodes addr and stores value there. Every access outside the two
// interrupt SFRs ticks the bus first. Writes to ROM are silently dropped.
func (b *Bus) Write(addr types.Address, value types.Byte) {
	if !isSFR(addr) {
		b.Tick()
	}

	switch {
	case addr.InRange(romLow, romHigh):
		b.rom.Write(addr.Offset(romLow), value)
	case addr.InRange(ramLow, ramHigh):
		b.ram.Write(addr.Offset(ramLow), value)
	case addr.InRange(icLow, icHigh):
		b.ic.Write(addr.Offset(icLow), value)
	case addr.Value() == addrIA:
		b.ia = interrupt.FromByte(value)
	default: // addrIE
		b.ie = interrupt.FromByte(value)
	}
}

// TakeStepCycles returns the accumulated cycle count since the last call
// and resets it to zero.
func (b *Bus) TakeStepCycles() uint64 {
	cycles := b.stepCycles
	b.stepCycles = 0
	return cycles
}

// Input forwards an operator input event to the controller and raises the
// Input interrupt.
func (b *Bus) Input(in inputctl.Input) {
	b.ic.Receive(in)
	b.ia = b.ia.Set(interrupt.Input)
}

// IE returns the interrupt enable mask.
func (b *Bus) IE() interrupt.Flags { return b.ie }

// IA returns the active interrupt flags.
func (b *Bus) IA() interrupt.Flags { return b.ia }

// Reset zeroes RAM and the step cycle counter. ROM, the input controller's
// latched flags and the IE/IA registers are left untouched; a new ROM is
// installed only through SetROM.
func (b *Bus) Reset() {
	b.ram.Reset()
	b.stepCycles = 0
}

// SetROM installs a new ROM image, used when a cartridge is loaded.
func (b *Bus) SetROM(r *rom.ROM) {
	b.rom = r
}

func isSFR(addr types.Address) bool {
	return addr.Value() == addrIA || addr.Value() == addrIE
}
