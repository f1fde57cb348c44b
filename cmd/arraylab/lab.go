package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/childebao/j2objc/array"
	"github.com/childebao/j2objc/errors"
	"github.com/childebao/j2objc/native"
)

// labArray erases the element type so one script runner and one TUI can
// drive any variant.
type labArray interface {
	Kind() array.Kind
	Len() int
	Get(index int) (string, error)
	Set(index int, raw string) (string, error)
	Incr(index int) (string, error)
	Decr(index int) (string, error)
	PostIncr(index int) (string, error)
	PostDecr(index int) (string, error)
	Export(offset uint32) (string, error)
	Elems() []string
}

func newLabArray(kindName string, length int, initValues string) (labArray, error) {
	switch kindName {
	case "boolean":
		return newBoolArray(length, initValues)
	case "byte":
		return newNumArray(length, initValues, parseSigned[int8](8), formatSigned[int8])
	case "char":
		return newNumArray(length, initValues, parseChar, formatChar)
	case "short":
		return newNumArray(length, initValues, parseSigned[int16](16), formatSigned[int16])
	case "int":
		return newNumArray(length, initValues, parseSigned[int32](32), formatSigned[int32])
	case "long":
		return newNumArray(length, initValues, parseSigned[int64](64), formatSigned[int64])
	case "float":
		return newNumArray(length, initValues, parseFloat[float32](32), formatFloat[float32](32))
	case "double":
		return newNumArray(length, initValues, parseFloat[float64](64), formatFloat[float64](64))
	default:
		return nil, errors.InvalidArgument(errors.PhaseAlloc, fmt.Sprintf("unknown element kind %q", kindName))
	}
}

// apply executes one script operation against arr and renders the outcome.
func apply(arr labArray, op string) (string, error) {
	parts := strings.Split(op, ":")
	switch parts[0] {
	case "get":
		index, err := opIndex(parts, 2)
		if err != nil {
			return "", err
		}
		v, err := arr.Get(index)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("get[%d] -> %s", index, v), nil

	case "set":
		index, err := opIndex(parts, 3)
		if err != nil {
			return "", err
		}
		stored, err := arr.Set(index, parts[2])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("set[%d] = %s", index, stored), nil

	case "incr":
		index, err := opIndex(parts, 2)
		if err != nil {
			return "", err
		}
		v, err := arr.Incr(index)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("incr[%d] -> %s", index, v), nil

	case "decr":
		index, err := opIndex(parts, 2)
		if err != nil {
			return "", err
		}
		v, err := arr.Decr(index)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("decr[%d] -> %s", index, v), nil

	case "postincr":
		index, err := opIndex(parts, 2)
		if err != nil {
			return "", err
		}
		v, err := arr.PostIncr(index)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("postincr[%d] -> %s", index, v), nil

	case "postdecr":
		index, err := opIndex(parts, 2)
		if err != nil {
			return "", err
		}
		v, err := arr.PostDecr(index)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("postdecr[%d] -> %s", index, v), nil

	case "export":
		var offset uint64
		if len(parts) == 2 {
			var err error
			offset, err = strconv.ParseUint(parts[1], 0, 32)
			if err != nil {
				return "", errors.New(errors.PhaseNative, errors.KindInvalidArgument).
					Cause(err).
					Detail("cannot parse offset %q", parts[1]).
					Build()
			}
		}
		hex, err := arr.Export(uint32(offset))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("export@%d -> %s", offset, hex), nil

	case "len":
		return fmt.Sprintf("len -> %d", arr.Len()), nil

	default:
		return "", errors.Unsupported(errors.PhaseAccess, fmt.Sprintf("unknown operation %q", parts[0]))
	}
}

func opIndex(parts []string, want int) (int, error) {
	if len(parts) != want {
		return 0, errors.InvalidArgument(errors.PhaseAccess, fmt.Sprintf("%s needs %d fields", parts[0], want))
	}
	index, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, errors.New(errors.PhaseAccess, errors.KindInvalidArgument).
			Cause(err).
			Detail("cannot parse index %q", parts[1]).
			Build()
	}
	return index, nil
}

// numArray drives one numeric variant.
type numArray[E array.Numeric] struct {
	arr    *array.Of[E]
	parse  func(string) (E, error)
	format func(E) string
}

func newNumArray[E array.Numeric](length int, initValues string, parse func(string) (E, error), format func(E) string) (*numArray[E], error) {
	if initValues == "" {
		if length < 0 {
			return nil, errors.InvalidArgument(errors.PhaseAlloc, fmt.Sprintf("negative length %d", length))
		}
		return &numArray[E]{arr: array.New[E](length), parse: parse, format: format}, nil
	}

	parts := strings.Split(initValues, ",")
	elems := make([]E, len(parts))
	for i, p := range parts {
		v, err := parse(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.New(errors.PhaseAlloc, errors.KindInvalidArgument).
				Cause(err).
				Detail("cannot parse initial element %q", p).
				Build()
		}
		elems[i] = v
	}
	return &numArray[E]{arr: array.FromSlice(elems), parse: parse, format: format}, nil
}

func (t *numArray[E]) Kind() array.Kind { return t.arr.Kind() }
func (t *numArray[E]) Len() int         { return t.arr.Len() }

func (t *numArray[E]) Get(index int) (string, error) {
	v, err := t.arr.Get(index)
	if err != nil {
		return "", err
	}
	return t.format(v), nil
}

func (t *numArray[E]) Set(index int, raw string) (string, error) {
	v, err := t.parse(raw)
	if err != nil {
		return "", errors.New(errors.PhaseAccess, errors.KindInvalidArgument).
			Cause(err).
			Detail("cannot parse %q as %s", raw, t.arr.Kind()).
			Build()
	}
	stored, err := t.arr.Set(index, v)
	if err != nil {
		return "", err
	}
	return t.format(stored), nil
}

func (t *numArray[E]) Incr(index int) (string, error) {
	v, err := array.Incr(t.arr, index)
	if err != nil {
		return "", err
	}
	return t.format(v), nil
}

func (t *numArray[E]) Decr(index int) (string, error) {
	v, err := array.Decr(t.arr, index)
	if err != nil {
		return "", err
	}
	return t.format(v), nil
}

func (t *numArray[E]) PostIncr(index int) (string, error) {
	v, err := array.PostIncr(t.arr, index)
	if err != nil {
		return "", err
	}
	return t.format(v), nil
}

func (t *numArray[E]) PostDecr(index int) (string, error) {
	v, err := array.PostDecr(t.arr, index)
	if err != nil {
		return "", err
	}
	return t.format(v), nil
}

func (t *numArray[E]) Export(offset uint32) (string, error) {
	return exportHex(t.arr, offset)
}

func (t *numArray[E]) Elems() []string {
	elems := make([]string, t.arr.Len())
	for i := range elems {
		v, _ := t.arr.Get(i)
		elems[i] = t.format(v)
	}
	return elems
}

// boolArray drives the boolean variant, which has no compound mutation.
type boolArray struct {
	arr *array.Of[bool]
}

func newBoolArray(length int, initValues string) (*boolArray, error) {
	if initValues == "" {
		if length < 0 {
			return nil, errors.InvalidArgument(errors.PhaseAlloc, fmt.Sprintf("negative length %d", length))
		}
		return &boolArray{arr: array.New[bool](length)}, nil
	}

	parts := strings.Split(initValues, ",")
	elems := make([]bool, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseBool(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.New(errors.PhaseAlloc, errors.KindInvalidArgument).
				Cause(err).
				Detail("cannot parse initial element %q", p).
				Build()
		}
		elems[i] = v
	}
	return &boolArray{arr: array.FromSlice(elems)}, nil
}

func (b *boolArray) Kind() array.Kind { return b.arr.Kind() }
func (b *boolArray) Len() int         { return b.arr.Len() }

func (b *boolArray) Get(index int) (string, error) {
	v, err := b.arr.Get(index)
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(v), nil
}

func (b *boolArray) Set(index int, raw string) (string, error) {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return "", errors.New(errors.PhaseAccess, errors.KindInvalidArgument).
			Cause(err).
			Detail("cannot parse %q as boolean", raw).
			Build()
	}
	stored, err := b.arr.Set(index, v)
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(stored), nil
}

func (b *boolArray) Incr(index int) (string, error) {
	return "", errors.Unsupported(errors.PhaseAccess, "increment of boolean[] elements")
}

func (b *boolArray) Decr(index int) (string, error) {
	return "", errors.Unsupported(errors.PhaseAccess, "decrement of boolean[] elements")
}

func (b *boolArray) PostIncr(index int) (string, error) {
	return "", errors.Unsupported(errors.PhaseAccess, "increment of boolean[] elements")
}

func (b *boolArray) PostDecr(index int) (string, error) {
	return "", errors.Unsupported(errors.PhaseAccess, "decrement of boolean[] elements")
}

func (b *boolArray) Export(offset uint32) (string, error) {
	return exportHex(b.arr, offset)
}

func (b *boolArray) Elems() []string {
	elems := make([]string, b.arr.Len())
	for i := range elems {
		v, _ := b.arr.Get(i)
		elems[i] = strconv.FormatBool(v)
	}
	return elems
}

// exportHex stages the array in a fresh heap region at offset and renders
// the raw bytes a native consumer would observe.
func exportHex[E array.Elem](arr *array.Of[E], offset uint32) (string, error) {
	byteLen := uint64(arr.Len()) * uint64(arr.Kind().ElemSize())
	if uint64(offset)+byteLen > math.MaxUint32 {
		return "", errors.InvalidArgument(errors.PhaseNative, "export region exceeds the addressable range")
	}
	h := native.NewHeap(offset + uint32(byteLen))
	if err := native.Store(h, offset, arr); err != nil {
		return "", err
	}
	data, err := h.Read(offset, uint32(byteLen))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("% x", data), nil
}

func parseSigned[E int8 | int16 | int32 | int64](bits int) func(string) (E, error) {
	return func(s string) (E, error) {
		v, err := strconv.ParseInt(s, 0, bits)
		return E(v), err
	}
}

func formatSigned[E int8 | int16 | int32 | int64](v E) string {
	return strconv.FormatInt(int64(v), 10)
}

func parseChar(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	return uint16(v), err
}

func formatChar(v uint16) string {
	return strconv.FormatUint(uint64(v), 10)
}

func parseFloat[E float32 | float64](bits int) func(string) (E, error) {
	return func(s string) (E, error) {
		v, err := strconv.ParseFloat(s, bits)
		return E(v), err
	}
}

func formatFloat[E float32 | float64](bits int) func(E) string {
	return func(v E) string {
		return strconv.FormatFloat(float64(v), 'g', -1, bits)
	}
}
