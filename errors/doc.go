// Package errors provides structured error types for the emulation layer.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Out-of-range failures carry the offending index and the length
// it was checked against, so callers can reconstruct the exception message
// the source environment would have produced.
//
// Use the convenience constructors for the common patterns:
//
//	err := errors.OutOfRange(errors.PhaseAccess, 5, 3)
//	err := errors.CapacityExceeded(2, 3)
//
// or the Builder for anything richer:
//
//	err := errors.New(errors.PhaseLookup, errors.KindInvalidArgument).
//		Code("de_DE").
//		Detail("unsupported country").
//		Build()
//
// All errors implement the standard error interface and support errors.Is
// and errors.As. The exported match targets treat empty fields as wildcards:
//
//	if errors.Is(err, errors.ErrOutOfRange) { ... }
package errors
