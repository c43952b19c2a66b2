package simdescape

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biggeezerdevelopment/simdescape/internal/scanner"
)

func TestEscapeString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"lt", "<", "&lt;"},
		{"all signals", "\"&<>'", "&quot;&amp;&lt;&gt;&#039;"},
		{"clean", "abcdefghijklmnopqrstuvwxyz", "abcdefghijklmnopqrstuvwxyz"},
		{"json", `{"title": "ok"}`, "{&quot;title&quot;: &quot;ok&quot;}"},
		{"punctuation", "!#$%()*+,-.:;=?_^", "!#$%()*+,-.:;=?_^"},
		{"kanji", "漢字はエスケープしないはずだよ", "漢字はエスケープしないはずだよ"},
		{
			"html",
			"<html><body><h1>Hello, world</h1></body></html>",
			"&lt;html&gt;&lt;body&gt;&lt;h1&gt;Hello, world&lt;/h1&gt;&lt;/body&gt;&lt;/html&gt;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeString(tt.input))

			buf := NewBuffer(0)
			Escape(tt.input, buf)
			assert.Equal(t, tt.expected, buf.String())

			assert.Equal(t, "x"+tt.expected, string(AppendEscape([]byte("x"), tt.input)))
		})
	}
}

func TestEscapeString_Large(t *testing.T) {
	// Large enough that the pooled buffer outgrows the pool limit.
	in := strings.Repeat("<p>&amp;</p>", maxPooledBuffer/4)
	want := strings.NewReplacer("<", "&lt;", ">", "&gt;", "&", "&amp;").Replace(in)

	got := EscapeString(in)
	assert.Equal(t, want, got)

	// The result must not be overwritten by later pooled calls.
	for i := 0; i < 8; i++ {
		_ = EscapeString(strings.Repeat("'", maxPooledBuffer))
	}
	assert.Equal(t, want, got)
}

func TestAppendEscape_ReusesStorage(t *testing.T) {
	dst := make([]byte, 0, 64)
	out := AppendEscape(dst, "a<b")
	require.Equal(t, "a&lt;b", string(out))
	assert.Same(t, &dst[:1][0], &out[0], "must append in place when capacity allows")

	out = AppendEscape(out[:0], "")
	assert.Empty(t, out)
}

func TestDispatch_Resolves(t *testing.T) {
	t.Cleanup(ResetEscapeFunc)

	ResetEscapeFunc()
	if _, ok := scanner.Static(); ok {
		assert.Equal(t, scanner.TierAVX2.String(), ActiveTier())
	} else {
		assert.Equal(t, "unresolved", ActiveTier())
	}

	assert.Equal(t, "&lt;", EscapeString("<"))
	assert.Equal(t, scanner.Best().String(), ActiveTier(), "first call must publish the best tier")

	// Subsequent calls read the published tier.
	assert.Equal(t, "&gt;", EscapeString(">"))
	assert.Equal(t, scanner.Best().String(), ActiveTier())
}

func TestDispatch_RegisterOverride(t *testing.T) {
	t.Cleanup(ResetEscapeFunc)

	calls := 0
	RegisterEscapeFunc(func(s string, buf *Buffer) {
		calls++
		buf.AppendString("[")
		buf.AppendString(strings.ToUpper(s))
		buf.AppendString("]")
	})
	assert.Equal(t, "custom", ActiveTier())

	assert.Equal(t, "[<A>]", EscapeString("<a>"))
	assert.Equal(t, "[]", EscapeString(""))
	assert.Equal(t, 2, calls)

	// A second override replaces the first.
	RegisterEscapeFunc(func(s string, buf *Buffer) {
		buf.AppendString("second")
	})
	assert.Equal(t, "second", EscapeString("anything"))
	assert.Equal(t, 2, calls)

	ResetEscapeFunc()
	assert.Equal(t, "&lt;a&gt;", EscapeString("<a>"))
	assert.Equal(t, 2, calls)
}

// A call that loaded the slot before an override and resolves after it must
// not replace the override.
func TestDispatch_ResolveKeepsOverride(t *testing.T) {
	t.Cleanup(ResetEscapeFunc)

	ResetEscapeFunc()
	inFlight := active.Load()

	RegisterEscapeFunc(func(s string, buf *Buffer) {
		buf.AppendString("custom:")
		buf.AppendString(s)
	})

	buf := NewBuffer(0)
	inFlight.fn("<", buf)
	assert.Contains(t, []string{"&lt;", "custom:<"}, buf.String())

	assert.Equal(t, "custom", ActiveTier())
	assert.Equal(t, "custom:<", EscapeString("<"))
}

// Resolving an unresolved slot publishes the detected tier exactly once.
func TestDispatch_ResolvePublishesOnce(t *testing.T) {
	t.Cleanup(ResetEscapeFunc)

	ResetEscapeFunc()
	inFlight := active.Load()

	buf := NewBuffer(0)
	inFlight.fn(">", buf)
	assert.Equal(t, "&gt;", buf.String())

	published := active.Load()
	assert.Equal(t, scanner.Best().String(), published.name)

	// A stale unresolved reader escapes but leaves the published tier alone.
	buf.Reset()
	inFlight.fn("'", buf)
	assert.Equal(t, "&#039;", buf.String())
	assert.Same(t, published, active.Load())
}

func TestDispatch_RegisterNilPanics(t *testing.T) {
	t.Cleanup(ResetEscapeFunc)
	assert.Panics(t, func() { RegisterEscapeFunc(nil) })
}

func TestUseTier(t *testing.T) {
	t.Cleanup(ResetEscapeFunc)

	for _, tier := range Tiers() {
		t.Run(tier.String(), func(t *testing.T) {
			require.NoError(t, UseTier(tier))
			assert.Equal(t, tier.String(), ActiveTier())
			assert.Equal(t, "&quot;&amp;&lt;&gt;&#039;", EscapeString("\"&<>'"))
		})
	}

	err := UseTier(scanner.TierReference)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedTier))

	err = UseTier(Tier(42))
	assert.ErrorIs(t, err, ErrUnsupportedTier)

	for _, tier := range []Tier{TierAVX2, TierSSE2} {
		if !scanner.Supported(tier) {
			err := UseTier(tier)
			assert.ErrorIs(t, err, ErrUnsupportedTier)
			assert.Contains(t, err.Error(), tier.String())
		}
	}
}

func TestParseTier(t *testing.T) {
	for _, name := range []string{"portable", "sse2", "avx2"} {
		tier, err := ParseTier(name)
		require.NoError(t, err)
		assert.Equal(t, name, tier.String())
	}

	_, err := ParseTier("reference")
	assert.ErrorIs(t, err, ErrUnsupportedTier)
	_, err = ParseTier("neon")
	assert.ErrorIs(t, err, ErrUnsupportedTier)
}

func TestTiers(t *testing.T) {
	tiers := Tiers()
	require.NotEmpty(t, tiers)
	assert.Equal(t, TierPortable, tiers[len(tiers)-1])
	assert.Equal(t, scanner.Best(), tiers[0])
}
