package scanner

import "github.com/biggeezerdevelopment/simdescape/internal/buffer"

// Func appends the escaped form of s to buf. Implementations keep no state
// and must produce output byte-identical to Reference.
type Func func(s string, buf *buffer.Buffer)

// Reference is the byte-at-a-time escaper the other tiers are verified
// against. It is never selected for dispatch.
func Reference(s string, buf *buffer.Buffer) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := Classify(s[i])
		if c == NoEscape {
			continue
		}
		buf.AppendString(s[start:i])
		buf.AppendString(Entities[c])
		start = i + 1
	}
	buf.AppendString(s[start:])
}
