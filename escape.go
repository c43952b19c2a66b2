// Package simdescape escapes text for safe inclusion in HTML and XML markup.
//
// The five characters " & ' < > are replaced by &quot; &amp; &#039; &lt; and
// &gt;. Every other byte is copied unchanged, so multi-byte UTF-8 sequences
// pass through intact.
//
// The escaper is chosen once per process from the CPU's capabilities (AVX2,
// then SSE2, then a portable word-at-a-time scanner) and can be replaced with
// RegisterEscapeFunc or UseTier. All built-in tiers produce identical output.
package simdescape

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/biggeezerdevelopment/simdescape/internal/scanner"
)

var (
	// ErrUnsupportedTier is returned when a tier is unknown or the CPU cannot run it.
	ErrUnsupportedTier = errors.New("escape tier not supported")
)

// EscapeFunc appends the escaped form of s to buf. It must be safe for
// concurrent use with distinct buffers.
type EscapeFunc = scanner.Func

// Tier identifies a built-in escaper.
type Tier = scanner.Tier

const (
	TierPortable = scanner.TierPortable // word-at-a-time scanner, always available
	TierSSE2     = scanner.TierSSE2     // 16-byte vector scanner
	TierAVX2     = scanner.TierAVX2     // 32-byte vector scanner
)

const (
	unresolvedName = "unresolved"
	customName     = "custom"
)

// escaper is what the dispatch slot points at. Values are never mutated
// after publication, so a single atomic pointer load always yields a
// complete implementation.
type escaper struct {
	name string
	fn   EscapeFunc
}

var active atomic.Pointer[escaper]

// unresolved is set in init: its fn refers back to it.
var unresolved *escaper

func init() {
	unresolved = &escaper{name: unresolvedName, fn: resolve}
	resetSlot()
}

func resetSlot() {
	if t, ok := scanner.Static(); ok {
		publish(t)
		return
	}
	active.Store(unresolved)
}

// resolve runs on the first call through an unresolved slot: it detects the
// best tier, publishes it and escapes with it. The slot is only replaced if
// it is still unresolved, so an override stored in the meantime survives.
func resolve(s string, buf *Buffer) {
	e := newEscaper(scanner.Best())
	if !active.CompareAndSwap(unresolved, e) {
		if cur := active.Load(); cur != unresolved {
			e = cur
		}
	}
	e.fn(s, buf)
}

func publish(t Tier) {
	active.Store(newEscaper(t))
}

func newEscaper(t Tier) *escaper {
	fn, ok := scanner.Lookup(t)
	if !ok {
		t = scanner.TierPortable
		fn = scanner.Portable
	}
	return &escaper{name: t.String(), fn: fn}
}

// Escape appends the escaped form of s to buf using the active escaper.
func Escape(s string, buf *Buffer) {
	active.Load().fn(s, buf)
}

// RegisterEscapeFunc replaces the active escaper for the whole process.
// Calls that load the slot after the store use fn; calls already running
// finish with the escaper they started with. fn must not be nil.
func RegisterEscapeFunc(fn EscapeFunc) {
	if fn == nil {
		panic("simdescape: RegisterEscapeFunc called with nil function")
	}
	active.Store(&escaper{name: customName, fn: fn})
}

// UseTier publishes a built-in tier as the active escaper.
func UseTier(t Tier) error {
	switch t {
	case TierPortable, TierSSE2, TierAVX2:
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedTier, t)
	}
	if !scanner.Supported(t) {
		return fmt.Errorf("%w: %s", ErrUnsupportedTier, t)
	}
	publish(t)
	return nil
}

// ParseTier maps a tier name such as "avx2" to its Tier.
func ParseTier(name string) (Tier, error) {
	t, ok := scanner.ParseTier(name)
	if !ok || t == scanner.TierReference {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedTier, name)
	}
	return t, nil
}

// ResetEscapeFunc drops any override. The next call detects the CPU's best
// tier again.
func ResetEscapeFunc() {
	resetSlot()
}

// ActiveTier names the escaper currently published: a tier name, "custom"
// after RegisterEscapeFunc, or "unresolved" before the first call.
func ActiveTier() string {
	return active.Load().name
}

// Tiers lists the built-in tiers this CPU supports, widest first.
func Tiers() []Tier {
	return scanner.Available()
}
