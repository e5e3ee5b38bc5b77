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

package emulator

import (
	"sync"
	"time"

	"github.com/Zitronenjoghurt/LMVC8/pkg/cpu"
)

// CPUSnapshot is a read-only copy of the CPU's visible state, safe to hand
// to the consumer without aliasing the live register file.
type CPUSnapshot struct {
	A, B, C, D, E, H, L uint8
	SP                  uint16
	PC                  uint16
	Flags               uint8
	IME                 bool
}

func snapshotCPU(c *cpu.CPU) CPUSnapshot {
	regs := c.Registers()
	return CPUSnapshot{
		A: regs.A().Value(), B: regs.B().Value(), C: regs.C().Value(),
		D: regs.D().Value(), E: regs.E().Value(), H: regs.H().Value(), L: regs.L().Value(),
		SP:    regs.SP().Value(),
		PC:    c.PC().Value(),
		Flags: c.Flags().Bits(),
		IME:   c.IME(),
	}
}

// State is the published-once-per-frame view of the worker, read by the
// consumer through Facade.WithState.
type State struct {
	CPUSnapshot     CPUSnapshot
	IsRunning       bool
	IsHalting       bool
	CyclesPerSecond uint64
	LastFrameMicros int64
	LastFrameCycles uint64
	Breakpoints     []uint16
	NanosPerCycle   float64
}

// sharedState is the mutual-exclusion cell the worker writes to once per
// frame and the consumer reads from; both sides use TryLock so that neither
// ever blocks on the other.
type sharedState struct {
	mu    sync.Mutex
	state State
}

func (s *sharedState) publish(frameCycles uint64, frameElapsed time.Duration, running, halting bool, cps uint64, breakpoints []uint16, snap CPUSnapshot) bool {
	if !s.mu.TryLock() {
		return false
	}
	defer s.mu.Unlock()

	nanosPerCycle := 0.0
	if cps > 0 {
		nanosPerCycle = float64(time.Second.Nanoseconds()) / float64(cps)
	}

	s.state = State{
		CPUSnapshot:     snap,
		IsRunning:       running,
		IsHalting:       halting,
		CyclesPerSecond: cps,
		LastFrameMicros: frameElapsed.Microseconds(),
		LastFrameCycles: frameCycles,
		Breakpoints:     breakpoints,
		NanosPerCycle:   nanosPerCycle,
	}
	return true
}

func (s *sharedState) read(fn func(State)) bool {
	if !s.mu.TryLock() {
		return false
	}
	defer s.mu.Unlock()
	fn(s.state)
	return true
}
