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

package rom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zitronenjoghurt/LMVC8/pkg/rom"
	"github.com/Zitronenjoghurt/LMVC8/pkg/types"
)

func TestNewZeroPadsShortImage(t *testing.T) {
	image := []byte{0x01, 0x02, 0x03}
	r, err := rom.New(image)
	require.NoError(t, err)

	for i, want := range image {
		assert.Equal(t, want, r.Read(types.NewAddress(uint16(i))).Value())
	}
	assert.Equal(t, uint8(0), r.Read(types.NewAddress(3)).Value())
	assert.Equal(t, uint8(0), r.Read(types.NewAddress(rom.Capacity-1)).Value())
}

func TestNewRejectsOversizedImage(t *testing.T) {
	image := make([]byte, rom.Capacity+1)
	_, err := rom.New(image)
	require.ErrorIs(t, err, rom.ErrROMSizeExceeded)
}

func TestNewAcceptsExactCapacity(t *testing.T) {
	image := make([]byte, rom.Capacity)
	image[rom.Capacity-1] = 0xAB
	r, err := rom.New(image)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xAB), r.Read(types.NewAddress(rom.Capacity-1)).Value())
}

func TestWriteIsIgnored(t *testing.T) {
	r, err := rom.New([]byte{0x10})
	require.NoError(t, err)
	r.Write(types.NewAddress(0), types.NewByte(0xFF))
	assert.Equal(t, uint8(0x10), r.Read(types.NewAddress(0)).Value())
}
