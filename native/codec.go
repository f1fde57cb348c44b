package native

import (
	"encoding/binary"
	"math"

	"go.uber.org/zap"

	"github.com/childebao/j2objc"
	"github.com/childebao/j2objc/array"
	"github.com/childebao/j2objc/errors"
)

// Store writes the full contents of a into mem starting at offset, laid
// out element by element in the fixed little-endian slot width of the
// array's kind. The write is a deep copy: the region never aliases the
// array. A region violation fails before any byte is written.
func Store[E array.Elem](mem j2objc.Memory, offset uint32, a *array.Of[E]) error {
	elems := make([]E, a.Len())
	if err := a.CopyTo(elems); err != nil {
		return err
	}
	buf := getBuf(len(elems) * array.KindOf[E]().ElemSize())
	defer putBuf(buf)
	marshal(*buf, elems)
	if err := mem.Write(offset, *buf); err != nil {
		return err
	}
	Logger().Debug("stored array to native region",
		zap.Stringer("kind", a.Kind()),
		zap.Uint32("offset", offset),
		zap.Int("count", a.Len()))
	return nil
}

// Load builds a new array of count elements read from mem starting at
// offset, the deep-copy import direction: the array owns fresh storage
// and later region writes are invisible to it.
func Load[E array.Elem](mem j2objc.Memory, offset uint32, count int) (*array.Of[E], error) {
	if count < 0 {
		return nil, errors.New(errors.PhaseNative, errors.KindInvalidArgument).
			Detail("negative element count %d", count).
			Build()
	}
	elemSize := uint64(array.KindOf[E]().ElemSize())
	if uint64(count) > math.MaxUint32/elemSize {
		return nil, errors.New(errors.PhaseNative, errors.KindOutOfRange).
			Index(int(offset), int(mem.Size())).
			Detail("region read of %d %d-byte elements exceeds addressable size %d",
				count, elemSize, mem.Size()).
			Build()
	}
	data, err := mem.Read(offset, uint32(uint64(count)*elemSize))
	if err != nil {
		return nil, err
	}
	a := array.Adopt(unmarshal[E](data, count))
	Logger().Debug("loaded array from native region",
		zap.Stringer("kind", a.Kind()),
		zap.Uint32("offset", offset),
		zap.Int("count", count))
	return a, nil
}

// marshal lays elems out with the element kind's slot width. Booleans
// occupy one byte each (0 or 1); multi-byte kinds are little-endian;
// floats are stored as their IEEE-754 bit patterns.
func marshal[E array.Elem](buf []byte, elems []E) {
	switch src := any(elems).(type) {
	case []bool:
		for i, v := range src {
			if v {
				buf[i] = 1
			} else {
				buf[i] = 0
			}
		}
	case []int8:
		for i, v := range src {
			buf[i] = byte(v)
		}
	case []uint16:
		for i, v := range src {
			binary.LittleEndian.PutUint16(buf[i*2:], v)
		}
	case []int16:
		for i, v := range src {
			binary.LittleEndian.PutUint16(buf[i*2:], uint16(v))
		}
	case []int32:
		for i, v := range src {
			binary.LittleEndian.PutUint32(buf[i*4:], uint32(v))
		}
	case []int64:
		for i, v := range src {
			binary.LittleEndian.PutUint64(buf[i*8:], uint64(v))
		}
	case []float32:
		for i, v := range src {
			binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
		}
	case []float64:
		for i, v := range src {
			binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
		}
	}
}

// unmarshal is the inverse of marshal. Any nonzero byte decodes as true
// for booleans.
func unmarshal[E array.Elem](data []byte, count int) []E {
	elems := make([]E, count)
	switch dst := any(elems).(type) {
	case []bool:
		for i := range dst {
			dst[i] = data[i] != 0
		}
	case []int8:
		for i := range dst {
			dst[i] = int8(data[i])
		}
	case []uint16:
		for i := range dst {
			dst[i] = binary.LittleEndian.Uint16(data[i*2:])
		}
	case []int16:
		for i := range dst {
			dst[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
		}
	case []int32:
		for i := range dst {
			dst[i] = int32(binary.LittleEndian.Uint32(data[i*4:]))
		}
	case []int64:
		for i := range dst {
			dst[i] = int64(binary.LittleEndian.Uint64(data[i*8:]))
		}
	case []float32:
		for i := range dst {
			dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
		}
	case []float64:
		for i := range dst {
			dst[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
		}
	}
	return elems
}
