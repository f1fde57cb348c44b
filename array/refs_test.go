package array

import (
	stderrors "errors"
	"testing"

	"github.com/childebao/j2objc/errors"
)

func TestRefsContract(t *testing.T) {
	a := NewRefs[string](3)

	if a.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", a.Len())
	}
	if v, err := a.Get(0); err != nil || v != "" {
		t.Fatalf("Get(0) = %q, %v, want zero value", v, err)
	}

	stored, err := a.Set(1, "hello")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if stored != "hello" {
		t.Fatalf("Set returned %q, want the assigned value", stored)
	}
	if v, _ := a.Get(1); v != "hello" {
		t.Fatalf("Get(1) = %q after Set", v)
	}

	if _, err := a.Get(3); !stderrors.Is(err, errors.ErrOutOfRange) {
		t.Fatalf("Get(3) = %v, want out-of-range", err)
	}
	if _, err := a.Set(-1, "x"); !stderrors.Is(err, errors.ErrOutOfRange) {
		t.Fatalf("Set(-1) = %v, want out-of-range", err)
	}
}

func TestRefsCopyTo(t *testing.T) {
	a := RefsFrom([]string{"a", "b", "c"})

	short := make([]string, 2)
	if err := a.CopyTo(short); !stderrors.Is(err, errors.ErrOutOfRange) {
		t.Fatalf("CopyTo(short) = %v, want out-of-range", err)
	}

	dst := make([]string, 4)
	if err := a.CopyTo(dst); err != nil {
		t.Fatalf("CopyTo failed: %v", err)
	}
	for i, want := range []string{"a", "b", "c", ""} {
		if dst[i] != want {
			t.Fatalf("dst[%d] = %q, want %q", i, dst[i], want)
		}
	}
}

func TestRefsFromDeepCopies(t *testing.T) {
	src := []int{1, 2}
	a := RefsFrom(src)

	src[0] = 99
	if v, _ := a.Get(0); v != 1 {
		t.Fatalf("Refs aliases its source: Get(0) = %d", v)
	}
}

// Jagged arrays are reference arrays whose elements are primitive arrays.
func TestJaggedComposition(t *testing.T) {
	rows := NewRefs[*Of[int32]](2)

	if row, _ := rows.Get(0); row != nil {
		t.Fatal("Unassigned row is not nil")
	}

	_, _ = rows.Set(0, IntsFrom([]int32{1, 2, 3}))
	_, _ = rows.Set(1, NewInts(1))

	row, err := rows.Get(0)
	if err != nil {
		t.Fatalf("Get(0) failed: %v", err)
	}
	if row.Len() != 3 {
		t.Fatalf("Row 0 length = %d, want 3", row.Len())
	}
	if v, _ := row.Get(2); v != 3 {
		t.Fatalf("rows[0][2] = %d, want 3", v)
	}

	// Rows are shared by reference: mutation through one handle is
	// visible through the other.
	_, _ = row.Set(0, 42)
	again, _ := rows.Get(0)
	if v, _ := again.Get(0); v != 42 {
		t.Fatalf("rows[0][0] = %d after aliased write, want 42", v)
	}
}

func TestCopyRefsRange(t *testing.T) {
	src := RefsFrom([]string{"p", "q", "r", "s"})
	dst := NewRefs[string](4)

	if err := CopyRefs(src, 1, dst, 0, 2); err != nil {
		t.Fatalf("CopyRefs failed: %v", err)
	}
	got := make([]string, 4)
	_ = dst.CopyTo(got)
	for i, want := range []string{"q", "r", "", ""} {
		if got[i] != want {
			t.Fatalf("dst[%d] = %q, want %q", i, got[i], want)
		}
	}

	if err := CopyRefs(src, 3, dst, 0, 2); !stderrors.Is(err, errors.ErrOutOfRange) {
		t.Fatalf("CopyRefs with bad range = %v, want out-of-range", err)
	}
}
