package scanner

import "github.com/biggeezerdevelopment/simdescape/internal/buffer"

// SWAR masks: one bit per byte lane of a 64-bit word
const (
	lsb = 0x0101010101010101
	msb = 0x8080808080808080
)

// Signal bytes broadcast to every lane
const (
	quotWord uint64 = lsb * '"'
	ampWord  uint64 = lsb * '&'
	aposWord uint64 = lsb * '\''
	ltWord   uint64 = lsb * '<'
	gtWord   uint64 = lsb * '>'
)

// Portable escapes s eight bytes at a time. Words without a signal byte are
// skipped in one step; words with one are classified byte by byte.
func Portable(s string, buf *buffer.Buffer) {
	portableFrom(s, 0, 0, buf)
}

// portableFrom resumes escaping at offset i with the unflushed run starting
// at start. The vector tiers hand their tail over through it.
func portableFrom(s string, start, i int, buf *buffer.Buffer) {
	for ; i+WordSize <= len(s); i += WordSize {
		if !hasSignal(loadWord(s, i)) {
			continue
		}
		for j := i; j < i+WordSize; j++ {
			if c := classTable[s[j]]; c != NoEscape {
				buf.AppendString(s[start:j])
				buf.AppendString(Entities[c])
				start = j + 1
			}
		}
	}

	for ; i < len(s); i++ {
		if c := classTable[s[i]]; c != NoEscape {
			buf.AppendString(s[start:i])
			buf.AppendString(Entities[c])
			start = i + 1
		}
	}
	buf.AppendString(s[start:])
}

// loadWord reads s[i:i+8] as a little-endian word.
func loadWord(s string, i int) uint64 {
	_ = s[i+7]
	return uint64(s[i]) | uint64(s[i+1])<<8 | uint64(s[i+2])<<16 | uint64(s[i+3])<<24 |
		uint64(s[i+4])<<32 | uint64(s[i+5])<<40 | uint64(s[i+6])<<48 | uint64(s[i+7])<<56
}

// zeroLanes sets the high bit of every zero lane of x. Lanes above a zero
// lane may also be set, so only the "any" answer is exact.
func zeroLanes(x uint64) uint64 {
	return (x - lsb) &^ x
}

// hasSignal reports whether any byte of w is a signal byte.
func hasSignal(w uint64) bool {
	return (zeroLanes(w^quotWord)|
		zeroLanes(w^ampWord)|
		zeroLanes(w^aposWord)|
		zeroLanes(w^ltWord)|
		zeroLanes(w^gtWord))&msb != 0
}
