package fonts

import "testing"

func TestHyphenate_RespectsMinLeftMinRight(t *testing.T) {
	breaks := Hyphenate("hyphenation", "en", 2, 3)
	for _, pos := range breaks {
		if pos < 2 || pos > len("hyphenation")-3 {
			t.Fatalf("break at %d violates min_left/min_right window", pos)
		}
	}
}

func TestHyphenate_UnsupportedLanguageReturnsNil(t *testing.T) {
	if got := Hyphenate("hyphenation", "xx", 2, 2); got != nil {
		t.Fatalf("expected nil for unsupported language, got %v", got)
	}
}

func TestHyphenate_EmptyWordReturnsNil(t *testing.T) {
	if got := Hyphenate("", "en", 2, 2); got != nil {
		t.Fatalf("expected nil for empty word, got %v", got)
	}
}

func TestSupportedHyphenationLanguages_IncludesCompiledTables(t *testing.T) {
	langs := SupportedHyphenationLanguages()
	want := map[string]bool{"en": false, "de": false, "fr": false, "es": false}
	for _, l := range langs {
		if _, ok := want[l]; ok {
			want[l] = true
		}
	}
	for l, found := range want {
		if !found {
			t.Errorf("expected language %q in supported list", l)
		}
	}
}
