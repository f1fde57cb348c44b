// Package array emulates the fixed-length, strongly-typed arrays of the
// source language on top of host-native contiguous storage.
//
// Code translated from the source language must observe exactly the array
// behavior of its original environment: immutable length, bounds-checked
// element access, typed storage, and instance identity. This package is
// that contract, with the storage held as an ordinary Go slice sized
// exactly to the array length.
//
// # Element Kinds
//
// One array variant exists per primitive element type, each with its
// natural host layout:
//
//	Kind      Go element  Bytes  Zero value
//	─────────────────────────────────────────
//	boolean   bool        1      false
//	byte      int8        1      0
//	char      uint16      2      0
//	short     int16       2      0
//	int       int32       4      0
//	long      int64       8      0
//	float     float32     4      0
//	double    float64     8      0
//
// All variants are instantiations of the one generic type Of, so the
// structural guarantees cannot drift between element types. The named
// aliases (Ints, Doubles, ...) exist for translated code's readability.
//
// # The Contract
//
//	a := array.IntsFrom([]int32{1, 2, 3})
//	n := a.Len()            // 3, fixed forever
//	v, err := a.Get(1)      // 2, nil
//	v, err = a.Set(1, 7)    // 7, nil: returns the assigned value
//	v, err = a.Get(5)       // 0, out-of-range error carrying index 5 and length 3
//
// Compound mutation helpers cover the translated ++/-- operators in a
// single bounds-checked step:
//
//	v, err := array.PostIncr(a, 1) // returns 7, stores 8
//	v, err = array.Incr(a, 1)      // stores 9, returns 9
//
// # Bulk Copies
//
// CopyTo exports the whole array into a caller-supplied buffer. The
// destination must declare capacity for every element; a destination
// shorter than the array is an out-of-range failure. The direction (array
// length must fit the declared capacity) reproduces the source
// environment's copy-out rule and is intentionally not a partial copy.
//
//	dst := make([]int32, a.Len())
//	err := a.CopyTo(dst)
//
// Copy transfers an element range between two arrays (or within one, with
// overlap handled) under the source language's range-check rules.
//
// # Identity and Aliasing
//
// Arrays are identified by pointer. Construction always deep-copies
// (FromSlice) or zero-fills (New); no constructor or operation ever shares
// storage with the caller, so the backing buffer cannot be reached or
// freed from outside its owning instance.
//
// # Thread Safety
//
// Instances carry no locks. Concurrent reads of one array are safe;
// concurrent mutation of the same array requires external serialization by
// the caller, or the result is a data race. The bounds-check functions are
// stateless and safe everywhere.
//
// # Errors
//
// Every failure from this package is the single out-of-range kind defined
// in the errors package, carrying the offending index and the array
// length. Failures are deterministic, never logged here, and never leave a
// partially applied mutation behind.
package array
