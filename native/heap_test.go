package native

import (
	stderrors "errors"
	"testing"

	"github.com/childebao/j2objc/errors"
)

func TestHeapReadWrite(t *testing.T) {
	h := NewHeap(16)

	if h.Size() != 16 {
		t.Fatalf("Size() = %d, want 16", h.Size())
	}

	if err := h.Write(4, []byte{1, 2, 3}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := h.Read(4, 3)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	for i, want := range []byte{1, 2, 3} {
		if data[i] != want {
			t.Fatalf("data[%d] = %d, want %d", i, data[i], want)
		}
	}

	// The region starts zeroed.
	data, err = h.Read(0, 4)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	for i, b := range data {
		if b != 0 {
			t.Fatalf("fresh region byte %d = %d, want 0", i, b)
		}
	}
}

func TestHeapBounds(t *testing.T) {
	h := NewHeap(16)

	tests := []struct {
		name   string
		offset uint32
		length uint32
		valid  bool
	}{
		{"full region", 0, 16, true},
		{"interior", 4, 8, true},
		{"empty at end", 16, 0, true},
		{"empty beyond end", 17, 0, false},
		{"end past size", 14, 3, false},
		{"offset past size", 20, 1, false},
		{"length past size", 0, 17, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, rerr := h.Read(tt.offset, tt.length)
			werr := h.Write(tt.offset, make([]byte, tt.length))
			if tt.valid {
				if rerr != nil {
					t.Fatalf("Read(%d, %d) failed: %v", tt.offset, tt.length, rerr)
				}
				if werr != nil {
					t.Fatalf("Write(%d, %d bytes) failed: %v", tt.offset, tt.length, werr)
				}
			} else {
				if !stderrors.Is(rerr, errors.ErrOutOfRange) {
					t.Fatalf("Read(%d, %d) = %v, want out-of-range", tt.offset, tt.length, rerr)
				}
				if !stderrors.Is(werr, errors.ErrOutOfRange) {
					t.Fatalf("Write(%d, %d bytes) = %v, want out-of-range", tt.offset, tt.length, werr)
				}
			}
		})
	}
}

func TestHeapOffsetOverflow(t *testing.T) {
	h := NewHeap(16)

	// offset+length exceeds uint32; the end arithmetic must not wrap.
	if _, err := h.Read(0xFFFFFFFF, 2); !stderrors.Is(err, errors.ErrOutOfRange) {
		t.Fatalf("Read near uint32 max = %v, want out-of-range", err)
	}
	if err := h.Write(0xFFFFFFFE, []byte{1, 2, 3}); !stderrors.Is(err, errors.ErrOutOfRange) {
		t.Fatalf("Write near uint32 max = %v, want out-of-range", err)
	}
}

func TestHeapErrorPayload(t *testing.T) {
	h := NewHeap(8)

	_, err := h.Read(6, 4)
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("Read error %v is not structured", err)
	}
	if e.Phase != errors.PhaseNative {
		t.Fatalf("Phase = %q, want native", e.Phase)
	}
	if e.Index != 6 || e.Length != 8 {
		t.Fatalf("payload offset=%d size=%d, want 6 and 8", e.Index, e.Length)
	}
}
