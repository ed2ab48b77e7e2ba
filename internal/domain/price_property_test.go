package domain

import (
	"testing"

	"pgregory.net/rapid"
)

// drawPrice generates a normalized price in a realistic handle range.
func drawPrice(t *rapid.T) FractionalPrice {
	return FractionalPrice{
		Handle:   rapid.IntRange(0, 200).Draw(t, "handle"),
		Ticks32:  rapid.IntRange(0, 31).Draw(t, "ticks32"),
		Ticks256: rapid.IntRange(0, 7).Draw(t, "ticks256"),
	}
}

func TestProperty_TickRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := drawPrice(t)
		k := rapid.IntRange(0, 64).Draw(t, "k")

		up, err := p.AddTicks(k)
		if err != nil {
			t.Fatalf("AddTicks(%d) error: %v", k, err)
		}
		back, err := up.SubTicks(k)
		if err != nil {
			t.Fatalf("SubTicks(%d) error: %v", k, err)
		}
		if back != p {
			t.Fatalf("round-trip failed: %v +%d ticks = %v, -%d ticks = %v", p, k, up, k, back)
		}
	})
}

func TestProperty_FieldRangesHold(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := drawPrice(t)
		k := rapid.IntRange(0, 1024).Draw(t, "k")

		up, err := p.AddTicks(k)
		if err != nil {
			t.Fatalf("AddTicks(%d) error: %v", k, err)
		}
		down, err := p.SubTicks(k)
		if err != nil {
			t.Fatalf("SubTicks(%d) error: %v", k, err)
		}
		for _, q := range []FractionalPrice{up, down} {
			if q.Ticks32 < 0 || q.Ticks32 > 31 {
				t.Fatalf("Ticks32 out of range: %v", q)
			}
			if q.Ticks256 < 0 || q.Ticks256 > 7 {
				t.Fatalf("Ticks256 out of range: %v", q)
			}
		}
	})
}

func TestProperty_AddTicksMatchesValue(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := drawPrice(t)
		k := rapid.IntRange(0, 1024).Draw(t, "k")

		got, err := p.AddTicks(k)
		if err != nil {
			t.Fatalf("AddTicks(%d) error: %v", k, err)
		}
		// Compare against flat 256ths arithmetic.
		total := p.Handle*256 + p.Ticks32*8 + p.Ticks256 + k
		want := FractionalPrice{Handle: total / 256, Ticks32: (total % 256) / 8, Ticks256: total % 8}
		if got != want {
			t.Fatalf("AddTicks(%d): %v = %v, want %v", k, p, got, want)
		}
	})
}

func TestProperty_FormatParseRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := drawPrice(t)

		parsed, err := ParsePrice(p.String())
		if err != nil {
			t.Fatalf("ParsePrice(%q) error: %v", p.String(), err)
		}
		if parsed != p {
			t.Fatalf("round-trip failed: %v → %q → %v", p, p.String(), parsed)
		}
	})
}
