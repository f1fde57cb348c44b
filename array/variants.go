package array

// The named variants below mirror the source language's array family. Each
// is the generic array instantiated at its element type, so every variant
// shares one implementation of the contract; the constructors pin the
// natural zero value and give translated code the type names it expects.
type (
	Booleans = Of[bool]
	Bytes    = Of[int8]
	Chars    = Of[uint16]
	Shorts   = Of[int16]
	Ints     = Of[int32]
	Longs    = Of[int64]
	Floats   = Of[float32]
	Doubles  = Of[float64]
)

// NewBooleans allocates a false-initialized boolean array.
func NewBooleans(length int) *Booleans { return New[bool](length) }

// NewBytes allocates a zero-initialized byte array.
func NewBytes(length int) *Bytes { return New[int8](length) }

// NewChars allocates a char array initialized to the null character.
func NewChars(length int) *Chars { return New[uint16](length) }

// NewShorts allocates a zero-initialized short array.
func NewShorts(length int) *Shorts { return New[int16](length) }

// NewInts allocates a zero-initialized int array.
func NewInts(length int) *Ints { return New[int32](length) }

// NewLongs allocates a zero-initialized long array.
func NewLongs(length int) *Longs { return New[int64](length) }

// NewFloats allocates a zero-initialized float array.
func NewFloats(length int) *Floats { return New[float32](length) }

// NewDoubles allocates a zero-initialized double array.
func NewDoubles(length int) *Doubles { return New[float64](length) }

// BooleansFrom builds a boolean array copying src.
func BooleansFrom(src []bool) *Booleans { return FromSlice(src) }

// BytesFrom builds a byte array copying src.
func BytesFrom(src []int8) *Bytes { return FromSlice(src) }

// CharsFrom builds a char array copying src.
func CharsFrom(src []uint16) *Chars { return FromSlice(src) }

// ShortsFrom builds a short array copying src.
func ShortsFrom(src []int16) *Shorts { return FromSlice(src) }

// IntsFrom builds an int array copying src.
func IntsFrom(src []int32) *Ints { return FromSlice(src) }

// LongsFrom builds a long array copying src.
func LongsFrom(src []int64) *Longs { return FromSlice(src) }

// FloatsFrom builds a float array copying src.
func FloatsFrom(src []float32) *Floats { return FromSlice(src) }

// DoublesFrom builds a double array copying src.
func DoublesFrom(src []float64) *Doubles { return FromSlice(src) }
