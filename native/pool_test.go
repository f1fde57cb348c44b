package native

import (
	"bytes"
	"testing"

	"github.com/childebao/j2objc/array"
)

func TestScratchSizing(t *testing.T) {
	small := getBuf(16)
	if len(*small) != 16 {
		t.Fatalf("len = %d, want 16", len(*small))
	}
	putBuf(small)

	large := getBuf(poolInitCap * 4)
	if len(*large) != poolInitCap*4 {
		t.Fatalf("len = %d, want %d", len(*large), poolInitCap*4)
	}
	putBuf(large)

	// Oversized scratch must not be retained.
	huge := getBuf(poolMaxCap + 1)
	putBuf(huge)
	putBuf(nil)
}

// A recycled scratch buffer still carries the previous layout's bytes.
// Storing booleans must overwrite every slot, not just the true ones.
func TestScratchReuseIsClean(t *testing.T) {
	dirty := getBuf(8)
	for i := range *dirty {
		(*dirty)[i] = 0xFF
	}
	putBuf(dirty)

	heap := NewHeap(8)
	a := array.BooleansFrom([]bool{true, false, true, false, true, false, true, false})
	if err := Store(heap, 0, a); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	data, err := heap.Read(0, 8)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	want := []byte{1, 0, 1, 0, 1, 0, 1, 0}
	if !bytes.Equal(data, want) {
		t.Fatalf("layout = % x, want % x", data, want)
	}
}
