package scanner

import (
	"math/bits"
	"unsafe"

	"github.com/biggeezerdevelopment/simdescape/internal/buffer"
)

// maskFunc compares one chunk starting at p against the signal bytes and
// returns a bitmask with bit k set when byte k of the chunk is a signal byte.
// It must read exactly one chunk and nothing beyond it.
type maskFunc func(p *byte) uint32

// scanVector drives a chunk kernel over s. Full chunks go through mask; the
// remainder shorter than width is finished by the portable scanner with the
// pending run carried over.
func scanVector(s string, buf *buffer.Buffer, width int, mask maskFunc) {
	start, i := 0, 0
	if len(s) >= width {
		base := unsafe.Pointer(unsafe.StringData(s))
		for ; i+width <= len(s); i += width {
			m := mask((*byte)(unsafe.Add(base, i)))
			for m != 0 {
				j := i + bits.TrailingZeros32(m)
				m &= m - 1
				buf.AppendString(s[start:j])
				buf.AppendString(Entities[classTable[s[j]]])
				start = j + 1
			}
		}
	}
	portableFrom(s, start, i, buf)
}
