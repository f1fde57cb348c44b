package array

// Refs is a fixed-length array of reference elements: boxed objects, other
// arrays, any value the translated type system passes by reference. It
// carries the identical bounds and copy contract as Of; element copies
// move references, never the referents.
//
// Composing Refs with Of yields jagged arrays the way the source language
// builds them: Refs[*Of[int32]] is a translated int[][], each row an
// independently owned one-dimensional array.
type Refs[T any] struct {
	elems []T
}

// NewRefs allocates an array of length nil (zero-valued) references.
// Panics on a negative length, like the make built-in.
func NewRefs[T any](length int) *Refs[T] {
	return &Refs[T]{elems: make([]T, length)}
}

// RefsFrom builds an array holding a copy of the references in src. Only
// the reference cells are copied; the referents stay shared.
func RefsFrom[T any](src []T) *Refs[T] {
	elems := make([]T, len(src))
	copy(elems, src)
	return &Refs[T]{elems: elems}
}

// Len returns the element count fixed at construction.
func (r *Refs[T]) Len() int {
	return len(r.elems)
}

// Get returns the reference at index, or an out-of-range failure.
func (r *Refs[T]) Get(index int) (T, error) {
	if err := CheckIndex(index, len(r.elems)); err != nil {
		var zero T
		return zero, err
	}
	return r.elems[index], nil
}

// Set stores value at index and returns it, mirroring assignment-expression
// semantics. Fails without mutating on an invalid index.
func (r *Refs[T]) Set(index int, value T) (T, error) {
	if err := CheckIndex(index, len(r.elems)); err != nil {
		var zero T
		return zero, err
	}
	r.elems[index] = value
	return value, nil
}

// CopyTo copies every reference into dst starting at dst[0], under the
// same inverted capacity rule as Of.CopyTo: fails iff len(dst) < Len().
func (r *Refs[T]) CopyTo(dst []T) error {
	if err := CheckCopy(len(dst), len(r.elems)); err != nil {
		return err
	}
	copy(dst, r.elems)
	return nil
}

// CopyRefs moves n references from src starting at srcPos into dst
// starting at dstPos, with the same range validation and overlap behavior
// as Copy.
func CopyRefs[T any](src *Refs[T], srcPos int, dst *Refs[T], dstPos int, n int) error {
	if err := checkRange(srcPos, n, len(src.elems)); err != nil {
		return err
	}
	if err := checkRange(dstPos, n, len(dst.elems)); err != nil {
		return err
	}
	copy(dst.elems[dstPos:dstPos+n], src.elems[srcPos:srcPos+n])
	return nil
}
