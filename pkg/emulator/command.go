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

import "github.com/Zitronenjoghurt/LMVC8/pkg/inputctl"

// CommandKind tags a Command's payload.
type CommandKind int

const (
	CmdLoad CommandKind = iota
	CmdStep
	CmdReset
	CmdRun
	CmdPause
	CmdShutdown
	CmdInput
	CmdSetClockSpeed
	CmdSetBreakpoint
	CmdRemoveBreakpoint
)

// Command is one message on the consumer-to-worker queue.
type Command struct {
	Kind       CommandKind
	Image      []byte
	Input      inputctl.Input
	ClockSpeed uint64
	Address    uint16
}

func loadCommand(image []byte) Command         { return Command{Kind: CmdLoad, Image: image} }
func stepCommand() Command                     { return Command{Kind: CmdStep} }
func resetCommand() Command                    { return Command{Kind: CmdReset} }
func runCommand() Command                      { return Command{Kind: CmdRun} }
func pauseCommand() Command                    { return Command{Kind: CmdPause} }
func shutdownCommand() Command                 { return Command{Kind: CmdShutdown} }
func inputCommand(in inputctl.Input) Command   { return Command{Kind: CmdInput, Input: in} }
func setClockSpeedCommand(cps uint64) Command {
	return Command{Kind: CmdSetClockSpeed, ClockSpeed: cps}
}
func setBreakpointCommand(addr uint16) Command { return Command{Kind: CmdSetBreakpoint, Address: addr} }
func removeBreakpointCommand(addr uint16) Command {
	return Command{Kind: CmdRemoveBreakpoint, Address: addr}
}
