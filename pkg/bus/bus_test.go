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

package bus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zitronenjoghurt/LMVC8/pkg/bus"
	"github.com/Zitronenjoghurt/LMVC8/pkg/inputctl"
	"github.com/Zitronenjoghurt/LMVC8/pkg/interrupt"
	"github.com/Zitronenjoghurt/LMVC8/pkg/rom"
	"github.com/Zitronenjoghurt/LMVC8/pkg/types"
)

func newBus(t *testing.T, image []byte) *bus.Bus {
	t.Helper()
	r, err := rom.New(image)
	require.NoError(t, err)
	return bus.New(r)
}

func TestReadROMAndRAM(t *testing.T) {
	b := newBus(t, []byte{0xAB})
	assert.Equal(t, uint8(0xAB), b.Read(types.NewAddress(0)).Value())

	b.Write(types.NewAddress(0x8000), types.NewByte(0x11))
	assert.Equal(t, uint8(0x11), b.Read(types.NewAddress(0x8000)).Value())
}

func TestWritesToROMAreDropped(t *testing.T) {
	b := newBus(t, []byte{0xAB})
	b.Write(types.NewAddress(0), types.NewByte(0xFF))
	assert.Equal(t, uint8(0xAB), b.Read(types.NewAddress(0)).Value())
}

func TestNonSFRAccessTicksBus(t *testing.T) {
	b := newBus(t, nil)
	b.Read(types.NewAddress(0x8000))
	assert.Equal(t, uint64(1), b.TakeStepCycles())
}

func TestSFRAccessIsFree(t *testing.T) {
	b := newBus(t, nil)
	b.Read(types.NewAddress(0xFFFE))
	b.Read(types.NewAddress(0xFFFF))
	assert.Equal(t, uint64(0), b.TakeStepCycles())
}

func TestTakeStepCyclesResets(t *testing.T) {
	b := newBus(t, nil)
	b.Read(types.NewAddress(0x8000))
	b.TakeStepCycles()
	assert.Equal(t, uint64(0), b.TakeStepCycles())
}

func TestInputSetsIAInputBit(t *testing.T) {
	b := newBus(t, nil)
	b.Input(inputctl.Input{Button: inputctl.A})
	assert.True(t, b.IA()&interrupt.Input != 0)
}

func TestInputControllerAddressRange(t *testing.T) {
	b := newBus(t, nil)
	b.Input(inputctl.Input{Button: inputctl.Touch, X: 5, Y: 6})
	assert.Equal(t, uint8(5), b.Read(types.NewAddress(0xFFFB)).Value())
	assert.Equal(t, uint8(6), b.Read(types.NewAddress(0xFFFC)).Value())
	assert.True(t, b.Read(types.NewAddress(0xFFFD)).Value()&inputctl.Touch != 0)
}

func TestIEIAWriteReadBack(t *testing.T) {
	b := newBus(t, nil)
	b.Write(types.NewAddress(0xFFFF), types.NewByte(uint8(interrupt.Timer|interrupt.Input)))
	assert.Equal(t, interrupt.Timer|interrupt.Input, b.IE())
}

func TestResetZeroesRAMNotROM(t *testing.T) {
	b := newBus(t, []byte{0xCD})
	b.Write(types.NewAddress(0x8000), types.NewByte(0x99))
	b.Reset()
	assert.Equal(t, uint8(0), b.Read(types.NewAddress(0x8000)).Value())
	assert.Equal(t, uint8(0xCD), b.Read(types.NewAddress(0)).Value())
}

func TestIAWriteAcknowledgesInterrupt(t *testing.T) {
	b := newBus(t, nil)
	b.Input(inputctl.Input{Button: inputctl.A})
	b.Write(types.NewAddress(0xFFFE), types.NewByte(0))
	assert.Equal(t, interrupt.Flags(0), b.IA())
}
