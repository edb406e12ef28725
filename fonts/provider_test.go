package fonts

import "testing"

func TestResolveStandardKey_NormalizesAliases(t *testing.T) {
	cases := []struct {
		family       string
		bold, italic bool
		want         StandardKey
	}{
		{"Arial", false, false, Helvetica},
		{"Arial", true, false, HelveticaBold},
		{"Times New Roman", false, true, TimesItalic},
		{"Georgia", true, true, TimesBoldItalic},
		{"Courier New", false, false, Courier},
		{"Consolas", true, false, CourierBold},
		{"Nonexistent Family", false, false, Helvetica},
	}
	for _, c := range cases {
		if got := ResolveStandardKey(c.family, c.bold, c.italic); got != c.want {
			t.Errorf("ResolveStandardKey(%q, %v, %v) = %v, want %v", c.family, c.bold, c.italic, got, c.want)
		}
	}
}

func TestBase14Provider_AdvanceKnownGlyph(t *testing.T) {
	p := NewBase14Provider()
	w, ok := p.Advance("Helvetica", false, false, 'A')
	if !ok {
		t.Fatal("expected glyph to be found")
	}
	if w != 667 {
		t.Errorf("Advance('A') = %v, want 667", w)
	}
}

func TestBase14Provider_CourierIsMonospace(t *testing.T) {
	p := NewBase14Provider()
	wa, _ := p.Advance("Courier", false, false, 'i')
	wm, _ := p.Advance("Courier", false, false, 'm')
	if wa != wm {
		t.Errorf("Courier should have uniform width, got i=%v m=%v", wa, wm)
	}
}

func TestBase14Provider_GetMetricsVariesByFamily(t *testing.T) {
	p := NewBase14Provider()
	hm, _ := p.GetMetrics("Helvetica", false, false)
	tm, _ := p.GetMetrics("Times", false, false)
	if hm.Ascent == tm.Ascent {
		t.Errorf("expected different ascent for Helvetica vs Times")
	}
}

func TestBase14Provider_HasGlyphFalseForControlChar(t *testing.T) {
	p := NewBase14Provider()
	if p.HasGlyph("Helvetica", false, false, '\x01') {
		t.Error("expected no glyph for control character")
	}
}
