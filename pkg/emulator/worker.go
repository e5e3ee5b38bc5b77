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
	"time"

	"github.com/Zitronenjoghurt/LMVC8/pkg/console"
	"github.com/Zitronenjoghurt/LMVC8/pkg/debugger"
	"github.com/Zitronenjoghurt/LMVC8/pkg/log"
)

// FramesPerSecond is the worker's frame pacing target.
const FramesPerSecond = 60

// DefaultCyclesPerSecond is the out-of-the-box clock speed, chosen only to
// satisfy "at least FramesPerSecond"; callers are expected to tune it with
// SetClockSpeed for the cartridge they're running.
const DefaultCyclesPerSecond = 600_000_000

var frameTime = time.Second / FramesPerSecond

// pausedSleep is how long the worker idles between frames while paused or
// halted, so it isn't spinning a CPU core for nothing.
const pausedSleep = 10 * time.Millisecond

// worker owns a Console exclusively for its lifetime and drives it one
// frame at a time, pacing itself to FramesPerSecond.
type worker struct {
	console  *console.Console
	debugger *debugger.Debugger

	commands <-chan Command
	events   chan<- Event
	shared   *sharedState

	running         bool
	halt            bool
	cyclesPerSecond uint64
}

func newWorker(commands <-chan Command, events chan<- Event, shared *sharedState) *worker {
	return &worker{
		console:         console.New(),
		debugger:        debugger.New(),
		commands:        commands,
		events:          events,
		shared:          shared,
		cyclesPerSecond: DefaultCyclesPerSecond,
	}
}

// run is the worker's goroutine entrypoint. It loops until a Shutdown
// command is handled.
func (w *worker) run() {
	for {
		frameStart := time.Now()

		var frameCycles uint64
		if w.running && !w.halt {
			frameCycles = w.runFrame()
		}

		if w.pollCommand() {
			w.send(Event{Kind: EventShutdown, Console: w.console})
			return
		}
		w.publish(frameCycles, time.Since(frameStart))

		elapsed := time.Since(frameStart)
		sleep := frameTime - elapsed
		if !w.running || w.halt {
			sleep = pausedSleep
		}
		if sleep > 0 {
			time.Sleep(sleep)
		}
	}
}

// runFrame steps the console until the frame's cycle budget is spent, a
// Halt retires, or a breakpoint pauses the run. Commands, Pause included,
// are handled only after it returns. It returns the cycles actually
// consumed.
func (w *worker) runFrame() uint64 {
	budget := w.cyclesPerSecond / FramesPerSecond
	var consumed uint64
	for w.running && !w.halt && consumed < budget {
		result := w.console.Step()
		consumed += result.Cycles
		if result.Halt {
			w.halt = true
			break
		}
		for _, ev := range w.debugger.Inspect(w.console) {
			if ev == debugger.EventBreakpoint {
				w.running = false
			}
		}
	}
	return consumed
}

// pollCommand handles at most one queued command, non-blockingly. It
// returns true if the command was Shutdown.
func (w *worker) pollCommand() bool {
	select {
	case cmd, ok := <-w.commands:
		if !ok {
			return false
		}
		return w.handle(cmd)
	default:
		return false
	}
}

func (w *worker) handle(cmd Command) bool {
	switch cmd.Kind {
	case CmdLoad:
		if err := w.console.LoadCartridge(cmd.Image); err != nil {
			w.send(Event{Kind: EventCartridgeLoadFailed, Err: err})
		} else {
			w.halt = false
			w.running = false
			w.send(Event{Kind: EventCartridgeLoadSuccess})
		}
	case CmdStep:
		if !w.running && !w.halt {
			result := w.console.Step()
			if result.Halt {
				w.halt = true
			}
		}
	case CmdReset:
		w.console.Reset()
		w.halt = false
	case CmdRun:
		if !w.halt {
			w.running = true
		}
	case CmdPause:
		w.running = false
	case CmdShutdown:
		return true
	case CmdInput:
		w.console.Input(cmd.Input)
	case CmdSetClockSpeed:
		w.cyclesPerSecond = cmd.ClockSpeed
	case CmdSetBreakpoint:
		w.debugger.SetBreakpoint(cmd.Address)
	case CmdRemoveBreakpoint:
		w.debugger.RemoveBreakpoint(cmd.Address)
	default:
		log.Logf("emulator: worker received unknown command kind %d", cmd.Kind)
	}
	return false
}

// send is a non-blocking publish to the event channel: if the consumer
// isn't draining it, the message is dropped rather than stalling the
// worker.
func (w *worker) send(e Event) {
	select {
	case w.events <- e:
	default:
		log.Logf("emulator: dropped event %d, consumer not draining", e.Kind)
	}
}

func (w *worker) publish(frameCycles uint64, frameElapsed time.Duration) {
	w.shared.publish(
		frameCycles,
		frameElapsed,
		w.running,
		w.halt,
		w.cyclesPerSecond,
		w.debugger.Breakpoints(),
		snapshotCPU(w.console.CPU()),
	)
}
