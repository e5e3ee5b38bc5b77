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

// Package rom holds the cartridge's read-only 32 KiB image.
package rom

import (
	"errors"
	"fmt"

	"github.com/Zitronenjoghurt/LMVC8/pkg/types"
)

// Capacity is the fixed size of a ROM image: 32 KiB.
const Capacity = 0x8000

// ErrROMSizeExceeded is returned by New when the supplied image is larger
// than Capacity.
var ErrROMSizeExceeded = errors.New("rom: image exceeds capacity")

// ROM is a read-only, word-address-mapped 32 KiB image, zero-padded out to
// Capacity.
type ROM struct {
	data [Capacity]uint8
}

// New builds a ROM from image, zero-padding short images. It fails with
// ErrROMSizeExceeded when image is longer than Capacity.
func New(image []uint8) (*ROM, error) {
	if len(image) > Capacity {
		return nil, fmt.Errorf("%w: got %d bytes, capacity is %d", ErrROMSizeExceeded, len(image), Capacity)
	}
	r := &ROM{}
	copy(r.data[:], image)
	return r, nil
}

// Read returns the byte at addr, which must already be rebased into
// [0, Capacity).
func (r *ROM) Read(addr types.Address) types.Byte {
	return types.NewByte(r.data[addr.Value()])
}

// Write is a no-op: ROM writes are silently dropped.
func (r *ROM) Write(addr types.Address, value types.Byte) {}
