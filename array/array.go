package array

// Elem is the closed set of primitive element types in the emulated
// language's array family: boolean, byte, char, short, int, long, float
// and double, at their host representations.
type Elem interface {
	bool | int8 | uint16 | int16 | int32 | int64 | float32 | float64
}

// Of is a fixed-length array of E elements. The backing storage is owned
// exclusively by the instance, sized exactly to the length fixed at
// construction, and is never exposed by reference: every import and export
// is a value copy. Identity follows the pointer, so two arrays holding
// equal elements remain distinct instances.
//
// Of has no internal synchronization. Concurrent reads are safe; any
// concurrent mutation requires external coordination by the caller.
type Of[E Elem] struct {
	elems []E
}

// New allocates an array of length elements, each set to the natural zero
// of E (0 for numeric kinds, false for boolean, the null character for
// char). Like the make built-in it panics on a negative length;
// construction itself never fails.
func New[E Elem](length int) *Of[E] {
	return &Of[E]{elems: make([]E, length)}
}

// FromSlice builds an array of len(src) elements holding a copy of src.
// The array never aliases src: later mutation of either side is invisible
// to the other.
func FromSlice[E Elem](src []E) *Of[E] {
	elems := make([]E, len(src))
	copy(elems, src)
	return &Of[E]{elems: elems}
}

// Adopt wraps src as the array's own storage without copying. The caller
// hands over ownership of src and must not read or mutate it afterwards;
// use FromSlice when the source slice stays live on the caller's side.
func Adopt[E Elem](src []E) *Of[E] {
	return &Of[E]{elems: src}
}

// Len returns the element count fixed at construction. It never changes
// for the lifetime of the instance.
func (a *Of[E]) Len() int {
	return len(a.elems)
}

// Kind reports the element kind of this array.
func (a *Of[E]) Kind() Kind {
	return KindOf[E]()
}

// Get returns the element at index. Fails with an out-of-range error for
// any index outside [0, Len()); a failed read has no side effect.
func (a *Of[E]) Get(index int) (E, error) {
	if err := CheckIndex(index, len(a.elems)); err != nil {
		var zero E
		return zero, err
	}
	return a.elems[index], nil
}

// Set stores value at index and returns the stored value, matching the
// value of an assignment expression in the source language. Fails with an
// out-of-range error for any index outside [0, Len()) without mutating
// anything.
func (a *Of[E]) Set(index int, value E) (E, error) {
	if err := CheckIndex(index, len(a.elems)); err != nil {
		var zero E
		return zero, err
	}
	a.elems[index] = value
	return value, nil
}

// CopyTo copies the entire array into dst starting at dst[0]. The
// destination must declare room for every element: the copy fails iff
// len(dst) < Len(). On success dst[:Len()] equals the element sequence and
// anything beyond is left untouched. The capacity direction is the source
// environment's own copy-out rule; see CheckCopy.
func (a *Of[E]) CopyTo(dst []E) error {
	if err := CheckCopy(len(dst), len(a.elems)); err != nil {
		return err
	}
	copy(dst, a.elems)
	return nil
}

// Copy moves n elements from src starting at srcPos into dst starting at
// dstPos, the bulk range transfer of the source language. Both ranges are
// validated before any element moves, so a failed copy mutates nothing.
// src and dst may be the same array; overlapping ranges behave as if the
// elements were staged through a temporary.
func Copy[E Elem](src *Of[E], srcPos int, dst *Of[E], dstPos int, n int) error {
	if err := checkRange(srcPos, n, len(src.elems)); err != nil {
		return err
	}
	if err := checkRange(dstPos, n, len(dst.elems)); err != nil {
		return err
	}
	copy(dst.elems[dstPos:dstPos+n], src.elems[srcPos:srcPos+n])
	return nil
}
