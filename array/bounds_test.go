package array

import (
	stderrors "errors"
	"testing"

	"github.com/childebao/j2objc/errors"
)

func TestCheckIndex(t *testing.T) {
	tests := []struct {
		name   string
		index  int
		length int
		ok     bool
	}{
		{"first", 0, 3, true},
		{"last", 2, 3, true},
		{"past end", 3, 3, false},
		{"far past end", 100, 3, false},
		{"negative", -1, 3, false},
		{"zero length", 0, 0, false},
		{"zero length negative", -1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckIndex(tt.index, tt.length)
			if tt.ok && err != nil {
				t.Fatalf("CheckIndex(%d, %d) = %v, want nil", tt.index, tt.length, err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatalf("CheckIndex(%d, %d) = nil, want out-of-range", tt.index, tt.length)
				}
				if !stderrors.Is(err, errors.ErrOutOfRange) {
					t.Fatalf("Expected out-of-range kind, got %v", err)
				}
			}
		})
	}
}

func TestCheckIndexPayload(t *testing.T) {
	err := CheckIndex(5, 3)

	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("Expected *errors.Error, got %T", err)
	}
	if e.Index != 5 || e.Length != 3 {
		t.Fatalf("Expected index=5 length=3, got index=%d length=%d", e.Index, e.Length)
	}
	if e.Phase != errors.PhaseAccess {
		t.Fatalf("Expected access phase, got %s", e.Phase)
	}
}

func TestCheckCopy(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		length   int
		ok       bool
	}{
		{"exact fit", 3, 3, true},
		{"extra room", 5, 3, true},
		{"too small", 2, 3, false},
		{"empty into empty", 0, 0, true},
		{"empty into some", 4, 0, true},
		{"some into empty", 0, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCopy(tt.capacity, tt.length)
			if tt.ok && err != nil {
				t.Fatalf("CheckCopy(%d, %d) = %v, want nil", tt.capacity, tt.length, err)
			}
			if !tt.ok && !stderrors.Is(err, errors.ErrOutOfRange) {
				t.Fatalf("CheckCopy(%d, %d) = %v, want out-of-range", tt.capacity, tt.length, err)
			}
		})
	}
}

func TestCheckRange(t *testing.T) {
	tests := []struct {
		name   string
		pos    int
		n      int
		length int
		ok     bool
	}{
		{"whole array", 0, 3, 3, true},
		{"inner range", 1, 1, 3, true},
		{"empty at start", 0, 0, 3, true},
		{"empty at end", 3, 0, 3, true},
		{"empty array empty range", 0, 0, 0, true},
		{"negative pos", -1, 1, 3, false},
		{"negative count", 0, -1, 3, false},
		{"runs past end", 2, 2, 3, false},
		{"pos past end", 4, 0, 3, false},
		{"huge count", 0, int(^uint(0) >> 1), 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkRange(tt.pos, tt.n, tt.length)
			if tt.ok && err != nil {
				t.Fatalf("checkRange(%d, %d, %d) = %v, want nil", tt.pos, tt.n, tt.length, err)
			}
			if !tt.ok && !stderrors.Is(err, errors.ErrOutOfRange) {
				t.Fatalf("checkRange(%d, %d, %d) = %v, want out-of-range", tt.pos, tt.n, tt.length, err)
			}
		})
	}
}
