package array

// Numeric is the subset of Elem that supports arithmetic compound
// mutation. Boolean is excluded at the type level rather than rejected at
// runtime.
type Numeric interface {
	int8 | uint16 | int16 | int32 | int64 | float32 | float64
}

// The four compound helpers below emulate the prefix and postfix ++/--
// operators applied to an array element. Each performs one bounds check
// covering the whole read-modify-write, so translated compound assignments
// cost a single validation instead of a get/set pair. The step is atomic
// only with respect to that bounds check: the helpers are not safe against
// concurrent mutation of the same index, exactly like the rest of the
// array surface.
//
// Overflow follows the element type's native rule on the host: two's
// complement wraparound for the integer kinds, IEEE 754 for the floating
// kinds. No extra checking is layered on.

// Incr adds one to the element at index and returns the updated value
// (prefix increment).
func Incr[E Numeric](a *Of[E], index int) (E, error) {
	if err := CheckIndex(index, len(a.elems)); err != nil {
		var zero E
		return zero, err
	}
	a.elems[index]++
	return a.elems[index], nil
}

// Decr subtracts one from the element at index and returns the updated
// value (prefix decrement).
func Decr[E Numeric](a *Of[E], index int) (E, error) {
	if err := CheckIndex(index, len(a.elems)); err != nil {
		var zero E
		return zero, err
	}
	a.elems[index]--
	return a.elems[index], nil
}

// PostIncr adds one to the element at index but returns the value it held
// before the update (postfix increment).
func PostIncr[E Numeric](a *Of[E], index int) (E, error) {
	if err := CheckIndex(index, len(a.elems)); err != nil {
		var zero E
		return zero, err
	}
	prior := a.elems[index]
	a.elems[index] = prior + 1
	return prior, nil
}

// PostDecr subtracts one from the element at index but returns the value
// it held before the update (postfix decrement).
func PostDecr[E Numeric](a *Of[E], index int) (E, error) {
	if err := CheckIndex(index, len(a.elems)); err != nil {
		var zero E
		return zero, err
	}
	prior := a.elems[index]
	a.elems[index] = prior - 1
	return prior, nil
}
