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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	cli "github.com/urfave/cli/v2"

	"github.com/Zitronenjoghurt/LMVC8/pkg/disassembler"
	"github.com/Zitronenjoghurt/LMVC8/pkg/emulator"
)

func main() {
	romFlag := &cli.StringFlag{
		Name:     "rom",
		Aliases:  []string{"r"},
		Usage:    "cartridge image to load",
		Required: true,
	}

	app := &cli.App{
		Name:    "lmvc8",
		Usage:   "Run and inspect LMVC8 cartridges",
		Version: "v0.0.1",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run a cartridge until halt or interrupt",
				Flags: []cli.Flag{
					romFlag,
					&cli.Uint64Flag{
						Name:    "clock-speed",
						Aliases: []string{"c"},
						Usage:   "target cycles per second",
						Value:   emulator.DefaultCyclesPerSecond,
					},
					&cli.StringSliceFlag{
						Name:    "breakpoint",
						Aliases: []string{"b"},
						Usage:   "address (hex, e.g. 0x0040) to break at; repeatable",
					},
					&cli.BoolFlag{
						Name:  "headless",
						Usage: "don't print CPU state after each poll",
					},
				},
				Action: runCartridge,
			},
			{
				Name:   "disasm",
				Usage:  "print a linear disassembly of a cartridge",
				Flags:  []cli.Flag{romFlag},
				Action: disasmCartridge,
			},
		},
	}

	for _, cmd := range app.Commands {
		sort.Sort(cli.FlagsByName(cmd.Flags))
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCartridge(c *cli.Context) error {
	image, err := os.ReadFile(c.String("rom"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading rom: %v", err), 1)
	}

	breakpoints, err := parseBreakpoints(c.StringSlice("breakpoint"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	headless := c.Bool("headless")

	f := emulator.New()
	defer f.Close()

	f.SetClockSpeed(c.Uint64("clock-speed"))
	for _, addr := range breakpoints {
		f.SetBreakpoint(addr)
	}

	f.LoadCartridge(image)
	if err := awaitLoad(f); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	f.Run()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-sigs:
			return nil
		case <-ticker.C:
			if ev, ok := f.PollEvent(); ok && ev.Kind == emulator.EventShutdown {
				return nil
			}
			if !headless {
				printState(f)
			}
			if halted := isHalted(f); halted {
				return nil
			}
		}
	}
}

func disasmCartridge(c *cli.Context) error {
	image, err := os.ReadFile(c.String("rom"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading rom: %v", err), 1)
	}

	for _, node := range disassembler.Walk(image) {
		if node.IsInstruction() {
			fmt.Printf("%04X  %s\n", node.Offset, node.Instruction.Kind)
		} else {
			fmt.Printf("%04X    %02X\n", node.Offset, node.Operand)
		}
	}
	return nil
}

func awaitLoad(f *emulator.Facade) error {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if ev, ok := f.PollEvent(); ok {
			switch ev.Kind {
			case emulator.EventCartridgeLoadSuccess:
				return nil
			case emulator.EventCartridgeLoadFailed:
				return ev.Err
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	return fmt.Errorf("timed out waiting for cartridge load")
}

func isHalted(f *emulator.Facade) bool {
	var halted bool
	f.WithState(func(s emulator.State) { halted = s.IsHalting })
	return halted
}

func printState(f *emulator.Facade) {
	f.WithState(func(s emulator.State) {
		spew.Printf("%+v\n", s.CPUSnapshot)
	})
}

func parseBreakpoints(raw []string) ([]uint16, error) {
	addrs := make([]uint16, 0, len(raw))
	for _, r := range raw {
		v, err := strconv.ParseUint(r, 0, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid breakpoint address %q: %w", r, err)
		}
		addrs = append(addrs, uint16(v))
	}
	return addrs, nil
}
