// Package j2objc provides a Go emulation of the JRE's fixed-length typed
// arrays over host-native storage.
//
// This library reproduces the runtime array model that translated Java code
// expects: arrays of a fixed length chosen at construction, strict per-access
// bounds checking with structured out-of-range errors, type-pure element
// storage for all eight primitive types, and deep-copy interop with native
// memory regions.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	j2objc/              Root package with the core Memory interface
//	├── array/           Typed fixed-length arrays and compound mutation helpers
//	├── native/          Heap and WASM linear-memory regions plus the element codec
//	├── currency/        Canonicalizing currency registry backed by locale lookups
//	├── errors/          Structured error types for debugging
//	└── cmd/arraylab/    Interactive playground for exercising arrays
//
// # Quick Start
//
// Construct an array, mutate it, and export its contents:
//
//	a := array.DoublesFrom([]float64{1.0, 2.0, 3.0})
//
//	prior, err := array.PostIncr(a, 1) // prior == 2.0, a[1] == 3.0
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out := make([]float64, a.Len())
//	if err := a.CopyTo(out); err != nil {
//	    log.Fatal(err)
//	}
//
// Every element access is bounds-checked. A rejected access reports the
// offending index and the array length and leaves the array untouched:
//
//	_, err = a.Get(5)
//	// [access] out_of_range: index out of range: 5 for array containing 3 elements
//
// # Element Model
//
// Each Java primitive type maps to a fixed host representation:
//
//	boolean  bool     1 byte
//	byte     int8     1 byte
//	char     uint16   2 bytes
//	short    int16    2 bytes
//	int      int32    4 bytes
//	long     int64    8 bytes
//	float    float32  4 bytes
//	double   float64  8 bytes
//
// Arrays are type-pure: an int32 array can never hold anything but int32
// values, enforced by the type system rather than by runtime tagging.
//
// # Native Interop
//
// The native package moves array contents across the Memory interface using
// the platform's little-endian element layout, so an exported array is
// directly consumable by native call sites. Both directions are deep copies;
// an array never aliases a native region.
//
// # Thread Safety
//
// Arrays carry no internal synchronization. Concurrent reads are safe;
// any concurrent mutation requires external synchronization by the caller.
// The currency Registry is safe for concurrent use.
package j2objc
