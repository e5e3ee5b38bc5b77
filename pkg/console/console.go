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

// Package console composes the CPU and Bus into the single-step and
// step-to-halt driver the rest of the emulator is built on.
package console

import (
	"github.com/Zitronenjoghurt/LMVC8/pkg/bus"
	"github.com/Zitronenjoghurt/LMVC8/pkg/cpu"
	"github.com/Zitronenjoghurt/LMVC8/pkg/inputctl"
	"github.com/Zitronenjoghurt/LMVC8/pkg/log"
	"github.com/Zitronenjoghurt/LMVC8/pkg/rom"
)

// StepResult is what one Console.Step produces: the bus cycles it consumed
// and whether the retired instruction was Halt.
type StepResult struct {
	Cycles uint64
	Halt   bool
}

// Console owns a CPU and the Bus it executes against. It is the unit the
// emulator worker drives; nothing outside the worker should hold a mutable
// reference to one while it is running.
type Console struct {
	cpu *cpu.CPU
	bus *bus.Bus
}

// New builds a Console around an empty ROM image.
func New() *Console {
	r, err := rom.New(nil)
	if err != nil {
		// An empty image can never exceed capacity; this would indicate a
		// broken build.
		panic(err)
	}
	return &Console{cpu: cpu.New(), bus: bus.New(r)}
}

// Step runs one CPU fetch/decode/execute cycle, including interrupt
// servicing.
func (c *Console) Step() StepResult {
	cycles, halt := c.cpu.Step(c.bus)
	return StepResult{Cycles: cycles, Halt: halt}
}

// StepTillHalt runs Step repeatedly until a Halt instruction retires,
// returning the total cycle count.
func (c *Console) StepTillHalt() uint64 {
	var total uint64
	for {
		result := c.Step()
		total += result.Cycles
		if result.Halt {
			return total
		}
	}
}

// LoadCartridge validates and installs a new ROM image, resetting the CPU
// and RAM first. On a validation failure the Console is left untouched.
func (c *Console) LoadCartridge(image []byte) error {
	r, err := rom.New(image)
	if err != nil {
		log.Logf("console: cartridge load rejected: %v", err)
		return err
	}
	c.cpu.Reset()
	c.bus.Reset()
	c.bus.SetROM(r)
	return nil
}

// Reset zeroes CPU state and RAM. ROM and the input controller's latched
// flags are left untouched.
func (c *Console) Reset() {
	c.cpu.Reset()
	c.bus.Reset()
}

// Input forwards an operator input event to the bus, raising the Input
// interrupt.
func (c *Console) Input(in inputctl.Input) {
	c.bus.Input(in)
}

// PC returns the current program counter, for inspection.
func (c *Console) PC() uint16 {
	return c.cpu.PC().Value()
}

// CPU exposes the CPU for snapshotting and debugger inspection.
func (c *Console) CPU() *cpu.CPU { return c.cpu }

// Bus exposes the bus, for inspecting memory.
func (c *Console) Bus() *bus.Bus { return c.bus }
