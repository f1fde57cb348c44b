package native

import "sync"

const (
	// Pool limits to prevent memory bloat
	poolMaxCap  = 64 * 1024 // max scratch bytes retained
	poolInitCap = 256
)

// byte scratch pool for staging element layouts
var bufPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, poolInitCap)
		return &buf
	},
}

func getBuf(n int) *[]byte {
	buf := bufPool.Get().(*[]byte)
	if cap(*buf) < n {
		*buf = make([]byte, n)
	} else {
		*buf = (*buf)[:n]
	}
	return buf
}

func putBuf(buf *[]byte) {
	if buf == nil || cap(*buf) > poolMaxCap {
		return // reject oversized
	}
	*buf = (*buf)[:0]
	bufPool.Put(buf)
}
