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

// Package debugger tracks breakpoint addresses and inspects a Console's
// program counter against them once per step.
package debugger

import (
	"sort"

	"github.com/Zitronenjoghurt/LMVC8/pkg/console"
)

// Event is something the debugger noticed while inspecting a step.
type Event int

const (
	// EventBreakpoint fires when the inspected Console's PC matches a set
	// breakpoint.
	EventBreakpoint Event = iota
)

// Debugger holds the set of breakpoint addresses for a Console. It does not
// own or reference the Console itself; the worker passes one in on each
// inspection.
type Debugger struct {
	breakpoints map[uint16]struct{}
}

// New returns an empty Debugger.
func New() *Debugger {
	return &Debugger{breakpoints: make(map[uint16]struct{})}
}

// SetBreakpoint adds addr to the breakpoint set.
func (d *Debugger) SetBreakpoint(addr uint16) {
	d.breakpoints[addr] = struct{}{}
}

// RemoveBreakpoint removes addr from the breakpoint set.
func (d *Debugger) RemoveBreakpoint(addr uint16) {
	delete(d.breakpoints, addr)
}

// Breakpoints returns the current breakpoint addresses, sorted for
// deterministic snapshotting.
func (d *Debugger) Breakpoints() []uint16 {
	addrs := make([]uint16, 0, len(d.breakpoints))
	for a := range d.breakpoints {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}

// Inspect reports the events raised by c's current PC, which is the address
// of the next instruction to execute. The worker calls this after every
// step and stops its step loop on a Breakpoint event, so the run pauses in
// the same frame, before the breakpointed instruction executes.
func (d *Debugger) Inspect(c *console.Console) []Event {
	if _, hit := d.breakpoints[c.PC()]; hit {
		return []Event{EventBreakpoint}
	}
	return nil
}
