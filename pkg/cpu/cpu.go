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

// Package cpu implements the fetch/decode/execute pipeline, its instruction
// set and opcode table, and interrupt servicing.
package cpu

import (
	"github.com/Zitronenjoghurt/LMVC8/pkg/alu"
	"github.com/Zitronenjoghurt/LMVC8/pkg/interrupt"
	"github.com/Zitronenjoghurt/LMVC8/pkg/registers"
	"github.com/Zitronenjoghurt/LMVC8/pkg/types"
)

// resetSP is the stack pointer value after Reset: the last word below the
// interrupt SFRs.
const resetSP = 0xFFFA

// Bus is everything the CPU needs from the memory bus: reads/writes for
// operands, cycle ticking, and the two interrupt SFRs.
type Bus interface {
	Read(addr types.Address) types.Byte
	Write(addr types.Address, value types.Byte)
	Tick()
	TakeStepCycles() uint64
	IE() interrupt.Flags
	IA() interrupt.Flags
}

// CPU is the console's processor: the general-purpose register file, the
// ALU, the program counter, the interrupt master enable flag, and the last
// fetched opcode (kept for inspection/disassembly).
type CPU struct {
	registers registers.Registers
	alu       alu.ALU
	pc        types.Word
	ime       bool
	ir        types.Byte
}

// New returns a CPU in its reset state.
func New() *CPU {
	c := &CPU{}
	c.Reset()
	return c
}

// Reset clears the register file and ALU flags, parks the stack pointer at
// its default, disables interrupts, and sets PC to the start of ROM.
func (c *CPU) Reset() {
	c.registers.Reset()
	c.registers.SetR16(registers.SP16, types.NewWord(resetSP))
	c.alu.SetFlags(0)
	c.pc = 0
	c.ime = false
	c.ir = 0
}

// Step services a pending interrupt if one is enabled and active, then
// fetches, decodes and executes one instruction. It returns the number of
// bus cycles the step consumed and whether the executed instruction was
// Halt.
func (c *CPU) Step(bus Bus) (cycles uint64, halted bool) {
	c.serviceInterrupt(bus)

	opcode := c.fetchByte(bus)
	c.ir = opcode

	instr := Decode(opcode.Value())
	bus.Tick()

	halted = c.execute(bus, instr)
	return bus.TakeStepCycles(), halted
}

func (c *CPU) serviceInterrupt(bus Bus) {
	if !c.ime {
		return
	}
	pending := bus.IE() & bus.IA()
	bit, ok := pending.FirstSet()
	if !ok {
		return
	}
	c.ime = false
	c.pushWord(bus, c.pc)
	c.pc = bit.Vector()
}

func (c *CPU) execute(bus Bus, instr Instruction) bool {
	switch instr.Kind {
	case KindNoOp:
		// intentionally a no-op
	case KindHalt:
		return true
	case KindAddR8:
		x := c.registers.GetR8(bus, registers.ACC)
		y := c.registers.GetR8(bus, instr.R8)
		c.registers.SetR8(bus, registers.ACC, c.alu.AddBytes(x, y))
	case KindSubR8:
		x := c.registers.GetR8(bus, registers.ACC)
		y := c.registers.GetR8(bus, instr.R8)
		c.registers.SetR8(bus, registers.ACC, c.alu.SubBytes(x, y))
	case KindAddR16:
		x := c.registers.GetR16(registers.ACC16)
		y := c.registers.GetR16(instr.R16)
		c.registers.SetR16(registers.ACC16, c.alu.AddWords(x, y))
	case KindSubR16:
		x := c.registers.GetR16(registers.ACC16)
		y := c.registers.GetR16(instr.R16)
		c.registers.SetR16(registers.ACC16, c.alu.SubWords(x, y))
	case KindLoadR8:
		c.registers.SetR8(bus, instr.R8T, c.registers.GetR8(bus, instr.R8))
	case KindLoadR16:
		c.registers.SetR16(instr.R16T, c.registers.GetR16(instr.R16))
	case KindLoadR8i:
		c.registers.SetR8(bus, instr.R8, c.fetchByte(bus))
	case KindLoadR16i:
		c.registers.SetR16(instr.R16, c.fetchWord(bus))
	case KindIncR8:
		c.registers.IncrementR8(bus, instr.R8)
	case KindDecR8:
		c.registers.DecrementR8(bus, instr.R8)
	case KindIncR16:
		c.registers.IncrementR16(instr.R16)
	case KindDecR16:
		c.registers.DecrementR16(instr.R16)
	case KindPush:
		c.pushWord(bus, c.registers.GetR16S(instr.R16S, c.alu.Flags()))
	case KindPop:
		flags := c.alu.Flags()
		c.registers.SetR16S(instr.R16S, &flags, c.popWord(bus))
		c.alu.SetFlags(flags)
	case KindEnableInterrupts:
		c.ime = true
	case KindDisableInterrupts:
		c.ime = false
	case KindCall:
		target := c.fetchWord(bus)
		c.pushWord(bus, c.pc)
		c.pc = target
	case KindReturn:
		c.pc = c.popWord(bus)
	}
	return false
}

func (c *CPU) fetchByte(bus Bus) types.Byte {
	v := bus.Read(types.AddressFromWord(c.pc))
	c.pc, _ = c.pc.Increment()
	return v
}

// fetchWord reads two opcode-stream bytes as a little-endian immediate.
func (c *CPU) fetchWord(bus Bus) types.Word {
	low := c.fetchByte(bus)
	high := c.fetchByte(bus)
	return types.FromLE(low, high)
}

// pushWord stores a return address or stack-pair value high byte first,
// then low byte, so the matching popWord reads them back in reverse order:
// low byte first, then high byte.
func (c *CPU) pushWord(bus Bus, w types.Word) {
	c.pushByte(bus, w.HighByte())
	c.pushByte(bus, w.LowByte())
}

func (c *CPU) popWord(bus Bus) types.Word {
	low := c.popByte(bus)
	high := c.popByte(bus)
	return types.FromLE(low, high)
}

// pushByte writes at SP and then decrements it; popByte increments SP and
// then reads. A word push therefore leaves its low byte at the lower
// address and the matching pop walks back up through it.
func (c *CPU) pushByte(bus Bus, value types.Byte) {
	bus.Write(types.AddressFromWord(c.registers.GetR16(registers.SP16)), value)
	c.registers.DecrementR16(registers.SP16)
}

func (c *CPU) popByte(bus Bus) types.Byte {
	c.registers.IncrementR16(registers.SP16)
	return bus.Read(types.AddressFromWord(c.registers.GetR16(registers.SP16)))
}

// PC returns the program counter.
func (c *CPU) PC() types.Word { return c.pc }

// IME reports whether interrupts are currently enabled at the CPU level.
func (c *CPU) IME() bool { return c.ime }

// IR returns the last fetched opcode byte, for inspection.
func (c *CPU) IR() types.Byte { return c.ir }

// Registers exposes the register file for snapshotting.
func (c *CPU) Registers() *registers.Registers { return &c.registers }

// Flags returns the ALU's current flag state, for snapshotting.
func (c *CPU) Flags() alu.Flags { return c.alu.Flags() }
