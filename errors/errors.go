package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which part of the emulation layer the error occurred in
type Phase string

const (
	PhaseAccess Phase = "access" // single-element reads, writes, compound mutation
	PhaseCopy   Phase = "copy"   // bulk export and range copies
	PhaseAlloc  Phase = "alloc"  // array construction
	PhaseNative Phase = "native" // native memory regions
	PhaseLookup Phase = "lookup" // canonicalization registry
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfRange      Kind = "out_of_range"
	KindInvalidArgument Kind = "invalid_argument"
	KindUnsupported     Kind = "unsupported"
)

// Match targets for errors.Is. Empty fields act as wildcards, so
// errors.Is(err, ErrOutOfRange) matches an out-of-range error from any phase.
var (
	ErrOutOfRange      = &Error{Kind: KindOutOfRange}
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrUnsupported     = &Error{Kind: KindUnsupported}
)

// Error is the structured error type used throughout the emulation layer.
// Index and Length carry the offending index and the array (or region)
// length for out-of-range failures; Code carries the key involved in a
// registry lookup failure.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Code   string
	Index  int
	Length int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Code != "" {
		b.WriteString(" for ")
		b.WriteString(e.Code)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Empty Phase or Kind in the
// target act as wildcards.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	if t.Kind != "" && t.Kind != e.Kind {
		return false
	}
	return true
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Index sets the offending index and the length it was checked against
func (b *Builder) Index(index, length int) *Builder {
	b.err.Index = index
	b.err.Length = length
	return b
}

// Code sets the registry key involved in the failure
func (b *Builder) Code(code string) *Builder {
	b.err.Code = code
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OutOfRange creates the failure raised for an index outside [0, length).
// The message mirrors the exception text translated code expects to observe.
func OutOfRange(phase Phase, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfRange,
		Index:  index,
		Length: length,
		Detail: fmt.Sprintf("index out of range: %d for array containing %d elements", index, length),
	}
}

// CapacityExceeded creates the failure raised when a copy destination's
// declared capacity cannot hold an array's full length. The capacity is
// recorded as Index, the array length as Length.
func CapacityExceeded(capacity, length int) *Error {
	return &Error{
		Phase:  PhaseCopy,
		Kind:   KindOutOfRange,
		Index:  capacity,
		Length: length,
		Detail: fmt.Sprintf("destination capacity %d cannot hold %d elements", capacity, length),
	}
}

// RegionOutOfRange creates the failure raised when a native memory access
// falls outside a region of the given size.
func RegionOutOfRange(offset, length, size uint32) *Error {
	return &Error{
		Phase:  PhaseNative,
		Kind:   KindOutOfRange,
		Index:  int(offset),
		Length: int(size),
		Detail: fmt.Sprintf("region access out of range: offset=%d length=%d size=%d", offset, length, size),
	}
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidArgument,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
