package fonts

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SFNTFace adapts a parsed OpenType/TrueType font (golang.org/x/image/font/sfnt,
// already a teacher dependency via the font-embedding pipeline) to the
// TrueTypeFace collaborator interface spec §6 names: get_glyph_index and
// get_advance operating on font units, independent of any requested size.
//
// This is a measurement-only adapter: it never performs glyph substitution
// or positioning (GSUB/GPOS), consistent with the "complex-script shaping"
// non-goal in spec §1.
type SFNTFace struct {
	font       *sfnt.Font
	unitsPerEm int
	buf        sfnt.Buffer
}

// NewSFNTFace parses raw TrueType/OpenType font bytes.
func NewSFNTFace(data []byte) (*SFNTFace, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &SFNTFace{font: f, unitsPerEm: int(f.UnitsPerEm())}, nil
}

func (f *SFNTFace) UnitsPerEm() int { return f.unitsPerEm }

func (f *SFNTFace) GlyphIndex(ch rune) (uint16, bool) {
	gi, err := f.font.GlyphIndex(&f.buf, ch)
	if err != nil || gi == 0 {
		return 0, false
	}
	return uint16(gi), true
}

// GlyphAdvance returns the glyph's advance width in font units (i.e. at a
// notional size equal to UnitsPerEm, the natural sfnt.Units scale).
func (f *SFNTFace) GlyphAdvance(glyphIndex uint16) (float64, bool) {
	ppem := fixed.Int26_6(f.unitsPerEm << 6)
	adv, err := f.font.GlyphAdvance(&f.buf, sfnt.GlyphIndex(glyphIndex), ppem, font.HintingNone)
	if err != nil {
		return 0, false
	}
	return float64(adv) / 64, true
}

// Metrics returns the face's ascent/descent in font units.
func (f *SFNTFace) Metrics() (Metrics, error) {
	ppem := fixed.Int26_6(f.unitsPerEm << 6)
	m, err := f.font.Metrics(&f.buf, ppem, font.HintingNone)
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{
		UnitsPerEm: f.unitsPerEm,
		Ascent:     float64(m.Ascent) / 64,
		Descent:    -float64(m.Descent) / 64,
	}, nil
}

// FaceProvider wraps a single custom TrueType face under the given family
// name, falling back to Base14Provider for every other family. This is the
// shape a caller uses when the spec's "font key resolves to a user-supplied
// TrueType face" path (§4.2) applies to one family in the document.
type FaceProvider struct {
	base14  *Base14Provider
	family  string
	face    *SFNTFace
}

// NewFaceProvider registers face under family name, with Base14Provider as
// the fallback for every other family.
func NewFaceProvider(family string, face *SFNTFace) *FaceProvider {
	return &FaceProvider{base14: NewBase14Provider(), family: family, face: face}
}

func (p *FaceProvider) GetMetrics(family string, bold, italic bool) (Metrics, error) {
	if equalFold(family, p.family) {
		return p.face.Metrics()
	}
	return p.base14.GetMetrics(family, bold, italic)
}

func (p *FaceProvider) HasGlyph(family string, bold, italic bool, ch rune) bool {
	if equalFold(family, p.family) {
		_, ok := p.face.GlyphIndex(ch)
		return ok
	}
	return p.base14.HasGlyph(family, bold, italic, ch)
}

func (p *FaceProvider) Advance(family string, bold, italic bool, ch rune) (float64, bool) {
	if equalFold(family, p.family) {
		gi, ok := p.face.GlyphIndex(ch)
		if !ok {
			return 0, false
		}
		return p.face.GlyphAdvance(gi)
	}
	return p.base14.Advance(family, bold, italic, ch)
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
