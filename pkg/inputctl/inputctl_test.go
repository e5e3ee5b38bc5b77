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

package inputctl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Zitronenjoghurt/LMVC8/pkg/inputctl"
	"github.com/Zitronenjoghurt/LMVC8/pkg/types"
)

func TestReceiveSetsFlagBit(t *testing.T) {
	var c inputctl.Controller
	c.Receive(inputctl.Input{Button: inputctl.A})
	assert.Equal(t, inputctl.A, c.Read(types.NewAddress(2)).Value())
}

func TestReceiveTouchStoresCoordinates(t *testing.T) {
	var c inputctl.Controller
	c.Receive(inputctl.Input{Button: inputctl.Touch, X: 12, Y: 34})
	assert.Equal(t, uint8(12), c.Read(types.NewAddress(0)).Value())
	assert.Equal(t, uint8(34), c.Read(types.NewAddress(1)).Value())
	assert.Equal(t, inputctl.Touch, c.Read(types.NewAddress(2)).Value())
}

func TestMultipleButtonsAccumulate(t *testing.T) {
	var c inputctl.Controller
	c.Receive(inputctl.Input{Button: inputctl.Up})
	c.Receive(inputctl.Input{Button: inputctl.Start})
	assert.Equal(t, inputctl.Up|inputctl.Start, c.Read(types.NewAddress(2)).Value())
}
