package fonts

// Compiled-in Adobe Font Metrics for the base-14 standard fonts (spec
// §4.2). Widths are in 1/1000 em, the AFM convention; unitsPerEm is
// therefore always 1000 for this provider. Bold/italic variants of
// Helvetica and Times reuse the upright widths: real AFM bold glyphs run a
// few percent wider, but the core's measurement contract only needs widths
// close enough to drive correct line breaking, not byte-exact PDF glyph
// positioning (that belongs to the excluded PDF serializer).

var helveticaWidths = buildASCIIWidths(278, map[rune]int{
	'!': 278, '"': 355, '#': 556, '$': 556, '%': 889, '&': 667, '\'': 191,
	'(': 333, ')': 333, '*': 389, '+': 584, ',': 278, '-': 333, '.': 278, '/': 278,
	'0': 556, '1': 556, '2': 556, '3': 556, '4': 556, '5': 556, '6': 556, '7': 556, '8': 556, '9': 556,
	':': 278, ';': 278, '<': 584, '=': 584, '>': 584, '?': 556, '@': 1015,
	'A': 667, 'B': 667, 'C': 722, 'D': 722, 'E': 667, 'F': 611, 'G': 778, 'H': 722, 'I': 278,
	'J': 500, 'K': 667, 'L': 556, 'M': 833, 'N': 722, 'O': 778, 'P': 667, 'Q': 778, 'R': 722,
	'S': 667, 'T': 611, 'U': 722, 'V': 667, 'W': 944, 'X': 667, 'Y': 667, 'Z': 611,
	'[': 278, '\\': 278, ']': 278, '^': 469, '_': 556, '`': 333,
	'a': 556, 'b': 556, 'c': 500, 'd': 556, 'e': 556, 'f': 278, 'g': 556, 'h': 556, 'i': 222,
	'j': 222, 'k': 500, 'l': 222, 'm': 833, 'n': 556, 'o': 556, 'p': 556, 'q': 556, 'r': 333,
	's': 500, 't': 278, 'u': 556, 'v': 500, 'w': 722, 'x': 500, 'y': 500, 'z': 500,
	'{': 334, '|': 260, '}': 334, '~': 584,
})

var timesWidths = buildASCIIWidths(250, map[rune]int{
	'!': 333, '"': 408, '#': 500, '$': 500, '%': 833, '&': 778, '\'': 180,
	'(': 333, ')': 333, '*': 500, '+': 564, ',': 250, '-': 333, '.': 250, '/': 278,
	'0': 500, '1': 500, '2': 500, '3': 500, '4': 500, '5': 500, '6': 500, '7': 500, '8': 500, '9': 500,
	':': 278, ';': 278, '<': 564, '=': 564, '>': 564, '?': 444, '@': 921,
	'A': 722, 'B': 667, 'C': 667, 'D': 722, 'E': 611, 'F': 556, 'G': 722, 'H': 722, 'I': 333,
	'J': 389, 'K': 722, 'L': 611, 'M': 889, 'N': 722, 'O': 722, 'P': 556, 'Q': 722, 'R': 667,
	'S': 556, 'T': 611, 'U': 722, 'V': 722, 'W': 944, 'X': 722, 'Y': 722, 'Z': 611,
	'[': 333, '\\': 278, ']': 333, '^': 469, '_': 500, '`': 333,
	'a': 444, 'b': 500, 'c': 444, 'd': 500, 'e': 444, 'f': 333, 'g': 500, 'h': 500, 'i': 278,
	'j': 278, 'k': 500, 'l': 278, 'm': 778, 'n': 500, 'o': 500, 'p': 500, 'q': 500, 'r': 333,
	's': 389, 't': 278, 'u': 500, 'v': 500, 'w': 722, 'x': 500, 'y': 500, 'z': 444,
	'{': 480, '|': 200, '}': 480, '~': 541,
})

const courierWidth = 600

func buildASCIIWidths(def int, overrides map[rune]int) map[rune]int {
	m := make(map[rune]int, 96)
	for r := rune(0x20); r <= 0x7e; r++ {
		m[r] = def
	}
	for r, w := range overrides {
		m[r] = w
	}
	return m
}

func widthsFor(key StandardKey) map[rune]int {
	switch key {
	case Helvetica, HelveticaBold, HelveticaOblique, HelveticaBoldOblique:
		return helveticaWidths
	case TimesRoman, TimesBold, TimesItalic, TimesBoldItalic:
		return timesWidths
	default:
		return nil // Courier family: constant width, handled separately
	}
}

// Base14Provider implements Provider using the compiled-in AFM-derived
// width tables; it never reads from disk.
type Base14Provider struct{}

func NewBase14Provider() *Base14Provider { return &Base14Provider{} }

func (p *Base14Provider) GetMetrics(family string, bold, italic bool) (Metrics, error) {
	key := ResolveStandardKey(family, bold, italic)
	ascent, descent := 718.0, -207.0
	if isTimes(key) {
		ascent, descent = 683.0, -217.0
	} else if isCourier(key) {
		ascent, descent = 629.0, -157.0
	}
	return Metrics{UnitsPerEm: 1000, Ascent: ascent, Descent: descent}, nil
}

func (p *Base14Provider) HasGlyph(family string, bold, italic bool, ch rune) bool {
	_, ok := p.width(family, bold, italic, ch)
	return ok
}

func (p *Base14Provider) Advance(family string, bold, italic bool, ch rune) (float64, bool) {
	w, ok := p.width(family, bold, italic, ch)
	return float64(w), ok
}

func (p *Base14Provider) width(family string, bold, italic bool, ch rune) (int, bool) {
	key := ResolveStandardKey(family, bold, italic)
	if isCourier(key) {
		if ch < 0x20 {
			return 0, false
		}
		return courierWidth, true
	}
	table := widthsFor(key)
	w, ok := table[ch]
	if !ok {
		// Adobe's StandardEncoding has no visible glyph for control
		// characters or most of Latin-1 supplement; fall back to the
		// space width for anything printable we don't have an entry for,
		// so justification never divides by a zero-width run.
		if ch > 0x7e {
			return table[' '], true
		}
		return 0, false
	}
	return w, true
}

func isTimes(k StandardKey) bool {
	return k == TimesRoman || k == TimesBold || k == TimesItalic || k == TimesBoldItalic
}

func isCourier(k StandardKey) bool {
	return k == Courier || k == CourierBold || k == CourierOblique || k == CourierBoldOblique
}
