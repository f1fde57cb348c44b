package native

import (
	"github.com/childebao/j2objc"
	"github.com/childebao/j2objc/errors"
)

// Heap is an in-process memory region backed by an ordinary byte slice.
// It implements j2objc.Memory with strict bounds checking, so array
// contents can be staged for native call sites without a real foreign
// memory behind them.
type Heap struct {
	buf []byte
}

// NewHeap allocates a zeroed region of size bytes.
func NewHeap(size uint32) *Heap {
	return &Heap{buf: make([]byte, size)}
}

// Read returns the length bytes starting at offset. The returned slice
// views the region directly and stays valid until the next Write; callers
// that need a stable copy must make one.
func (h *Heap) Read(offset uint32, length uint32) ([]byte, error) {
	end := uint64(offset) + uint64(length)
	if end > uint64(len(h.buf)) {
		return nil, errors.RegionOutOfRange(offset, length, h.Size())
	}
	return h.buf[offset:end:end], nil
}

// Write copies data into the region starting at offset.
func (h *Heap) Write(offset uint32, data []byte) error {
	end := uint64(offset) + uint64(len(data))
	if end > uint64(len(h.buf)) {
		return errors.RegionOutOfRange(offset, uint32(len(data)), h.Size())
	}
	copy(h.buf[offset:], data)
	return nil
}

// Size returns the region size in bytes.
func (h *Heap) Size() uint32 {
	return uint32(len(h.buf))
}

// Compile-time check that Heap implements j2objc.Memory
var _ j2objc.Memory = (*Heap)(nil)
