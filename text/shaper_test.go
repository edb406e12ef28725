package text

import (
	"testing"

	"github.com/wudi/foliate/fonts"
)

func TestShaper_MeasureCachesResult(t *testing.T) {
	s := NewShaper(fonts.NewBase14Provider())
	font := FontKey{Family: "Helvetica"}

	w1, err := s.Measure("AAA", font, 12)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	w2, err := s.Measure("AAA", font, 12)
	if err != nil {
		t.Fatalf("Measure (cached): %v", err)
	}
	if w1 != w2 {
		t.Errorf("cached measurement differs: %v vs %v", w1, w2)
	}
	if w1 <= 0 {
		t.Errorf("expected positive width, got %v", w1)
	}
}

func TestShaper_MeasureScalesWithSize(t *testing.T) {
	s := NewShaper(fonts.NewBase14Provider())
	font := FontKey{Family: "Helvetica"}

	small, _ := s.Measure("hello", font, 10)
	large, _ := s.Measure("hello", font, 20)
	if large <= small {
		t.Errorf("expected larger size to measure wider: small=%v large=%v", small, large)
	}
}

func TestShaper_HyphenateDelegatesToFonts(t *testing.T) {
	s := NewShaper(fonts.NewBase14Provider())
	breaks := s.Hyphenate("hyphenation", "en", 2, 2)
	if breaks == nil {
		t.Error("expected non-nil break positions for a supported language")
	}
}
