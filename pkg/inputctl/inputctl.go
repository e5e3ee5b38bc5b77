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

// Package inputctl implements the memory-mapped input controller: a
// touchX/touchY/flags latch fed by discrete ConsoleInput events.
package inputctl

import "github.com/Zitronenjoghurt/LMVC8/pkg/types"

// Button bits within the flags byte.
const (
	Up uint8 = 1 << iota
	Down
	Left
	Right
	A
	B
	Start
	Touch
)

// Input is a single operator input event delivered to the controller.
type Input struct {
	Button uint8 // one of Up, Down, Left, Right, A, B, Start, Touch
	X, Y   uint8 // only meaningful when Button == Touch
}

// Controller is the three-byte memory-mapped input latch: touchX, touchY,
// flags.
type Controller struct {
	touchX uint8
	touchY uint8
	flags  uint8
}

// Receive latches in the event, setting the corresponding flag bit and, for
// Touch, the coordinate pair.
func (c *Controller) Receive(in Input) {
	c.flags |= in.Button
	if in.Button == Touch {
		c.touchX = in.X
		c.touchY = in.Y
	}
}

// Read returns one of the three registers by offset: 0=touchX, 1=touchY,
// 2=flags.
func (c *Controller) Read(offset types.Address) types.Byte {
	switch offset.Value() {
	case 0:
		return types.NewByte(c.touchX)
	case 1:
		return types.NewByte(c.touchY)
	default:
		return types.NewByte(c.flags)
	}
}

// Write stores one of the three registers by offset: 0=touchX, 1=touchY,
// 2=flags.
func (c *Controller) Write(offset types.Address, value types.Byte) {
	switch offset.Value() {
	case 0:
		c.touchX = value.Value()
	case 1:
		c.touchY = value.Value()
	default:
		c.flags = value.Value()
	}
}
