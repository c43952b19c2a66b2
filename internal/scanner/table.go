package scanner

// Chunk sizes for the vector tiers
const (
	AVX2ChunkSize = 32 // 256-bit vectors
	SSE2ChunkSize = 16 // 128-bit vectors
	WordSize      = 8  // portable SWAR word
)

// Class is the escape class of a single byte: either one of the entity
// indices or NoEscape.
type Class uint8

const (
	ClassQuot Class = iota // "
	ClassAmp               // &
	ClassApos              // '
	ClassLt                // <
	ClassGt                // >

	// NoEscape marks bytes that are copied verbatim.
	NoEscape
)

// Entities holds the replacement text, indexed by Class.
var Entities = [NoEscape]string{
	ClassQuot: "&quot;",
	ClassAmp:  "&amp;",
	ClassApos: "&#039;",
	ClassLt:   "&lt;",
	ClassGt:   "&gt;",
}

// SignalBytes lists the bytes that need substitution, indexed by Class.
var SignalBytes = [NoEscape]byte{
	ClassQuot: '"',
	ClassAmp:  '&',
	ClassApos: '\'',
	ClassLt:   '<',
	ClassGt:   '>',
}

// Lookup table for byte classification (256 bytes, cache-friendly)
var classTable = buildClassTable()

func buildClassTable() (t [256]Class) {
	for i := range t {
		t[i] = NoEscape
	}
	for c, b := range SignalBytes {
		t[b] = Class(c)
	}
	return t
}

// Classify returns the escape class of b. Bytes >= 0x80 never escape, so
// UTF-8 continuation bytes always pass through.
func Classify(b byte) Class {
	return classTable[b]
}

// Escapes reports whether c substitutes an entity.
func (c Class) Escapes() bool {
	return c < NoEscape
}

// Entity returns the replacement for c, or "" for NoEscape.
func (c Class) Entity() string {
	if c >= NoEscape {
		return ""
	}
	return Entities[c]
}
