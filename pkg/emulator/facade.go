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

// Package emulator is the consumer-facing facade around the background
// worker that owns a Console: a command queue in, an event queue out, and a
// try-locked snapshot of worker state.
package emulator

import "github.com/Zitronenjoghurt/LMVC8/pkg/inputctl"

// commandQueueCapacity bounds the otherwise-unbounded command/event queues.
// A real unbounded MPSC queue isn't a Go channel primitive; a buffer this
// generous never fills under normal use (the worker drains one command per
// frame, 60 times a second) and Send below blocks only in the pathological
// case of a consumer firing thousands of commands between frames.
const commandQueueCapacity = 4096

// Facade is the consumer-side handle to a running emulator worker. Spawn
// one with New; release it with Close.
type Facade struct {
	commands chan Command
	events   chan Event
	shared   *sharedState
	done     chan struct{}
}

// New spawns a worker goroutine driving a fresh, empty Console and returns
// the facade to control it.
func New() *Facade {
	f := &Facade{
		commands: make(chan Command, commandQueueCapacity),
		events:   make(chan Event, commandQueueCapacity),
		shared:   &sharedState{},
		done:     make(chan struct{}),
	}

	w := newWorker(f.commands, f.events, f.shared)
	go func() {
		w.run()
		close(f.done)
	}()

	return f
}

// PollEvent returns the next queued event and true, or a zero Event and
// false if none is waiting. Non-blocking.
func (f *Facade) PollEvent() (Event, bool) {
	select {
	case e, ok := <-f.events:
		return e, ok
	default:
		return Event{}, false
	}
}

// Run enqueues a command resuming frame execution.
func (f *Facade) Run() { f.send(runCommand()) }

// Pause enqueues a command suspending frame execution.
func (f *Facade) Pause() { f.send(pauseCommand()) }

// Step enqueues a single-step command; the worker only honors it while
// neither running nor halted.
func (f *Facade) Step() { f.send(stepCommand()) }

// Reset enqueues a command resetting CPU state and RAM.
func (f *Facade) Reset() { f.send(resetCommand()) }

// SetClockSpeed enqueues a command updating the pacing target; it takes
// effect starting the next frame.
func (f *Facade) SetClockSpeed(cyclesPerSecond uint64) {
	f.send(setClockSpeedCommand(cyclesPerSecond))
}

// LoadCartridge enqueues a cartridge load; CartridgeLoadSuccess or
// CartridgeLoadFailed is later reported through PollEvent.
func (f *Facade) LoadCartridge(image []byte) { f.send(loadCommand(image)) }

// Input enqueues an operator input event.
func (f *Facade) Input(in inputctl.Input) { f.send(inputCommand(in)) }

// SetBreakpoint enqueues a breakpoint addition.
func (f *Facade) SetBreakpoint(addr uint16) { f.send(setBreakpointCommand(addr)) }

// RemoveBreakpoint enqueues a breakpoint removal.
func (f *Facade) RemoveBreakpoint(addr uint16) { f.send(removeBreakpointCommand(addr)) }

// WithState try-locks the shared snapshot and invokes fn with a copy of it.
// It returns false without calling fn if the worker is mid-publish.
func (f *Facade) WithState(fn func(State)) bool {
	return f.shared.read(fn)
}

// Close enqueues Shutdown and blocks until the worker has finished its
// current frame and exited.
func (f *Facade) Close() {
	f.send(shutdownCommand())
	<-f.done
}

func (f *Facade) send(cmd Command) {
	f.commands <- cmd
}
