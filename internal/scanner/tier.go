package scanner

// Tier identifies one built-in escaper.
type Tier uint8

const (
	TierPortable Tier = iota
	TierSSE2
	TierAVX2

	// TierReference is the verification baseline. It is never selected
	// for dispatch.
	TierReference
)

// precedence is the probe order used by Best: widest vector first.
var precedence = [...]Tier{TierAVX2, TierSSE2, TierPortable}

var tierNames = [...]string{
	TierPortable:  "portable",
	TierSSE2:      "sse2",
	TierAVX2:      "avx2",
	TierReference: "reference",
}

func (t Tier) String() string {
	if int(t) < len(tierNames) {
		return tierNames[t]
	}
	return "unknown"
}

// ParseTier maps a tier name back to its Tier.
func ParseTier(name string) (Tier, bool) {
	for t, n := range tierNames {
		if n == name {
			return Tier(t), true
		}
	}
	return 0, false
}

// Width returns the number of bytes the tier tests per step.
func (t Tier) Width() int {
	switch t {
	case TierAVX2:
		return AVX2ChunkSize
	case TierSSE2:
		return SSE2ChunkSize
	case TierPortable:
		return WordSize
	default:
		return 1
	}
}

// Supported reports whether the running CPU can execute t.
func Supported(t Tier) bool {
	switch t {
	case TierAVX2:
		return hasAVX2()
	case TierSSE2:
		return hasSSE2()
	case TierPortable, TierReference:
		return true
	default:
		return false
	}
}

// Lookup returns the escaper for t if the CPU supports it.
func Lookup(t Tier) (Func, bool) {
	if !Supported(t) {
		return nil, false
	}
	switch t {
	case TierAVX2:
		return AVX2, true
	case TierSSE2:
		return SSE2, true
	case TierPortable:
		return Portable, true
	case TierReference:
		return Reference, true
	}
	return nil, false
}

// Best returns the widest tier the CPU supports. It never fails: without
// vector support it returns TierPortable.
func Best() Tier {
	for _, t := range precedence {
		if Supported(t) {
			return t
		}
	}
	return TierPortable
}

// Static reports the tier the build target guarantees, if any. When ok is
// true no runtime detection is needed.
func Static() (t Tier, ok bool) {
	if guaranteedAVX2 {
		return TierAVX2, true
	}
	return 0, false
}

// Available lists the supported dispatchable tiers, widest first.
func Available() []Tier {
	tiers := make([]Tier, 0, len(precedence))
	for _, t := range precedence {
		if Supported(t) {
			tiers = append(tiers, t)
		}
	}
	return tiers
}
