package array

import "github.com/childebao/j2objc/errors"

// CheckIndex validates a single-element index against an array length.
// Valid iff 0 <= index < length. Pure function with no shared state; safe
// to call from any number of goroutines.
func CheckIndex(index, length int) error {
	if index < 0 || index >= length {
		return errors.OutOfRange(errors.PhaseAccess, index, length)
	}
	return nil
}

// CheckCopy validates that a destination declaring capacity slots can
// receive an array of length elements. Valid iff capacity >= length: the
// whole array must fit in what the caller declared. The direction is
// deliberate emulation of the source environment's copy-out semantics and
// must not be flipped to a partial-copy check.
func CheckCopy(capacity, length int) error {
	if capacity < length {
		return errors.CapacityExceeded(capacity, length)
	}
	return nil
}

// checkRange validates the [pos, pos+n) range against an array length.
// Written as pos > length-n so that a huge n cannot overflow the addition.
func checkRange(pos, n, length int) error {
	if pos < 0 || n < 0 || pos > length-n {
		return errors.New(errors.PhaseCopy, errors.KindOutOfRange).
			Index(pos, length).
			Detail("range out of range: position %d count %d for array containing %d elements", pos, n, length).
			Build()
	}
	return nil
}
