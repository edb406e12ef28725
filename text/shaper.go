// Package text implements the Text Shaper (spec §4.2): measuring styled
// strings against a font provider, UAX#9 bidi reordering, and hyphenation,
// with the per-run caching the spec's measure() operation calls for.
package text

import (
	"fmt"
	"sync"

	"github.com/wudi/foliate/fonts"
)

// FontKey identifies a font for measurement purposes: a family name plus
// the bold/italic flags the Property Resolver's font-weight/font-style
// values reduce to.
type FontKey struct {
	Family string
	Bold   bool
	Italic bool
}

type cacheKey struct {
	font FontKey
	size float64
	text string
}

// Shaper measures text against a fonts.Provider, caching results per
// (font_key, size, text) for the lifetime of one layout run (spec §4.2,
// §5: "per-layout-run and not shared across runs"). Not safe for
// concurrent use by multiple goroutines sharing one layout run; distinct
// runs must use distinct Shapers.
type Shaper struct {
	Fonts fonts.Provider

	mu    sync.Mutex
	cache map[cacheKey]float64
}

// NewShaper constructs a Shaper over the given font provider.
func NewShaper(provider fonts.Provider) *Shaper {
	return &Shaper{Fonts: provider, cache: make(map[cacheKey]float64)}
}

// Measure returns the width, in points, of text set in the given font at
// the given size. Glyph advances come from the font provider in font
// units and are scaled by size/units_per_em (spec §4.2).
func (s *Shaper) Measure(text string, font FontKey, size float64) (float64, error) {
	key := cacheKey{font: font, size: size, text: text}

	s.mu.Lock()
	if w, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return w, nil
	}
	s.mu.Unlock()

	metrics, err := s.Fonts.GetMetrics(font.Family, font.Bold, font.Italic)
	if err != nil {
		return 0, fmt.Errorf("measure %q: %w", font.Family, err)
	}
	if metrics.UnitsPerEm == 0 {
		return 0, fmt.Errorf("measure %q: font reports zero units per em", font.Family)
	}
	scale := size / float64(metrics.UnitsPerEm)

	var width float64
	for _, ch := range text {
		adv, ok := s.Fonts.Advance(font.Family, font.Bold, font.Italic, ch)
		if !ok {
			continue
		}
		width += adv * scale
	}

	s.mu.Lock()
	s.cache[key] = width
	s.mu.Unlock()
	return width, nil
}

// Hyphenate delegates to fonts.Hyphenate, the Text Shaper's third public
// operation (spec §4.2).
func (s *Shaper) Hyphenate(word, language string, minLeft, minRight int) []int {
	return fonts.Hyphenate(word, language, minLeft, minRight)
}
