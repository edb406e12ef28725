package fonts

import (
	"bytes"
	"fmt"
	"unicode"

	"github.com/go-text/typesetting/di"
	gofont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ShapedGlyph is one glyph produced by HarfBuzz shaping, advance in 1/1000
// em units (the same scale Base14Provider reports; SFNTFace reports raw
// font units, which FaceProvider pairs with the face's units per em).
type ShapedGlyph struct {
	GlyphID  int
	Cluster  int
	XAdvance float64
}

// ShapeRun shapes text against raw TrueType/OpenType font bytes using
// HarfBuzz (go-text/typesetting). Unlike SFNTFace's per-character advance
// lookup, this path applies real kerning and contextual substitution when
// the face provides it — the "optional kerning when available" clause of
// spec §4.2 measure() — while still treating complex reordering as out of
// scope (spec §1 non-goal): the whole run is shaped under a single detected
// script and direction rather than isolated per cluster.
func ShapeRun(fontData []byte, text string) ([]ShapedGlyph, error) {
	face, err := gofont.ParseTTF(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	runes := []rune(text)
	script := detectScript(runes)
	dir := scriptDirection(script)

	size := fixed.Int26_6(1000 * 64) // normalize output to 1000 units/em

	shaper := &shaping.HarfbuzzShaper{}
	output := shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      face,
		Size:      size,
		Script:    script,
		Language:  language.DefaultLanguage(),
	})

	glyphs := make([]ShapedGlyph, 0, len(output.Glyphs))
	for _, g := range output.Glyphs {
		glyphs = append(glyphs, ShapedGlyph{
			GlyphID:  int(g.GlyphID),
			Cluster:  int(g.ClusterIndex),
			XAdvance: float64(g.XAdvance) / 64.0,
		})
	}
	return glyphs, nil
}

func scriptDirection(script language.Script) di.Direction {
	switch script {
	case language.Arabic, language.Hebrew, language.Syriac, language.Thaana, language.Nko:
		return di.DirectionRTL
	default:
		return di.DirectionLTR
	}
}

func detectScript(runes []rune) language.Script {
	counts := make(map[language.Script]int)
	maxCount := 0
	best := language.Latin
	for _, r := range runes {
		s := scriptFromRune(r)
		if s == language.Unknown {
			continue
		}
		counts[s]++
		if counts[s] > maxCount {
			maxCount = counts[s]
			best = s
		}
	}
	return best
}

func scriptFromRune(r rune) language.Script {
	switch {
	case unicode.Is(unicode.Arabic, r):
		return language.Arabic
	case unicode.Is(unicode.Hebrew, r):
		return language.Hebrew
	case unicode.Is(unicode.Latin, r):
		return language.Latin
	case unicode.Is(unicode.Cyrillic, r):
		return language.Cyrillic
	case unicode.Is(unicode.Greek, r):
		return language.Greek
	default:
		return language.Unknown
	}
}
