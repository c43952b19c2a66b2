// Package buffer provides the append-only byte sink the escapers write into.
package buffer

import (
	"slices"
	"unsafe"
)

// Buffer accumulates escaped output. The zero value is an empty buffer
// ready to use. A Buffer must not be appended to from more than one
// goroutine at a time.
type Buffer struct {
	buf []byte
}

// New returns an empty buffer with at least capacity bytes preallocated.
func New(capacity int) *Buffer {
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// From returns a buffer that appends to p. The buffer takes ownership of p.
func From(p []byte) *Buffer {
	return &Buffer{buf: p}
}

// Append copies p to the end of the buffer.
func (b *Buffer) Append(p []byte) {
	b.buf = append(b.buf, p...)
}

// AppendString copies s to the end of the buffer.
func (b *Buffer) AppendString(s string) {
	b.buf = append(b.buf, s...)
}

// Write implements io.Writer. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteString implements io.StringWriter. It never fails.
func (b *Buffer) WriteString(s string) (int, error) {
	b.buf = append(b.buf, s...)
	return len(s), nil
}

// Grow makes room for at least n more bytes without another allocation.
func (b *Buffer) Grow(n int) {
	if n > 0 {
		b.buf = slices.Grow(b.buf, n)
	}
}

func (b *Buffer) Len() int {
	return len(b.buf)
}

func (b *Buffer) Cap() int {
	return cap(b.buf)
}

// Bytes returns the accumulated contents. The slice aliases the buffer and is
// only valid until the next append or Reset.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// String returns a copy of the accumulated contents.
func (b *Buffer) String() string {
	return string(b.buf)
}

// TakeString hands the accumulated contents back as a string without
// copying. The buffer forgets its storage and is left empty.
func (b *Buffer) TakeString() string {
	if len(b.buf) == 0 {
		b.buf = nil
		return ""
	}
	s := unsafe.String(unsafe.SliceData(b.buf), len(b.buf))
	b.buf = nil
	return s
}

// Reset empties the buffer but keeps its capacity.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}
