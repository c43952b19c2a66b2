package simdescape

import (
	"sync"

	"github.com/biggeezerdevelopment/simdescape/internal/buffer"
)

// Buffer is the append-only sink escapers write into.
type Buffer = buffer.Buffer

// NewBuffer returns an empty Buffer with capacity bytes preallocated.
func NewBuffer(capacity int) *Buffer {
	return buffer.New(capacity)
}

// Buffers larger than this are handed to the caller instead of being pooled.
const maxPooledBuffer = 64 * 1024

var bufferPool = sync.Pool{
	New: func() interface{} {
		return buffer.New(256)
	},
}

// EscapeString returns the escaped form of s.
func EscapeString(s string) string {
	b := bufferPool.Get().(*Buffer)
	b.Reset()
	b.Grow(len(s) + len(s)/8)

	Escape(s, b)

	var out string
	if b.Cap() > maxPooledBuffer {
		out = b.TakeString()
	} else {
		out = b.String()
	}
	bufferPool.Put(b)
	return out
}

// AppendEscape appends the escaped form of s to dst and returns the
// extended slice.
func AppendEscape(dst []byte, s string) []byte {
	b := buffer.From(dst)
	Escape(s, b)
	return b.Bytes()
}
