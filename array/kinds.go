package array

import "fmt"

// Kind identifies one primitive element type of the emulated language.
type Kind uint8

const (
	KindBoolean Kind = iota
	KindByte
	KindChar
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
)

var kindNames = [...]string{
	KindBoolean: "boolean",
	KindByte:    "byte",
	KindChar:    "char",
	KindShort:   "short",
	KindInt:     "int",
	KindLong:    "long",
	KindFloat:   "float",
	KindDouble:  "double",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// TypeName returns the display name of the array type, e.g. "int[]".
func (k Kind) TypeName() string {
	return k.String() + "[]"
}

// ElemSize returns the storage footprint of one element in bytes. This is
// the exported buffer layout contract: a variant's native representation
// uses exactly these slot widths.
func (k Kind) ElemSize() int {
	switch k {
	case KindBoolean, KindByte:
		return 1
	case KindChar, KindShort:
		return 2
	case KindInt, KindFloat:
		return 4
	case KindLong, KindDouble:
		return 8
	default:
		return 0
	}
}

// KindOf reports the Kind of element type E.
func KindOf[E Elem]() Kind {
	var zero E
	switch any(zero).(type) {
	case bool:
		return KindBoolean
	case int8:
		return KindByte
	case uint16:
		return KindChar
	case int16:
		return KindShort
	case int32:
		return KindInt
	case int64:
		return KindLong
	case float32:
		return KindFloat
	case float64:
		return KindDouble
	default:
		// Elem's type set is closed; only reachable if the constraint grows
		// without this switch keeping up.
		panic(fmt.Sprintf("array: unhandled element type %T", zero))
	}
}
