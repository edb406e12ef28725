// Package linebreak implements the Line Breaker (spec §4.3): turning a
// stream of box/glue/penalty items into line areas, by either a greedy or
// a Knuth-Plass optimal algorithm, plus the justification math that
// follows a chosen set of breaks.
package linebreak

// Kind distinguishes the three item kinds spec §4.3 names.
type Kind int

const (
	Box Kind = iota
	Glue
	Penalty
)

// Item is one element of the inline content stream fed to the line
// breaker. Only the fields relevant to its Kind are meaningful: a Box
// uses Width; a Glue uses Width/Stretch/Shrink; a Penalty uses Width,
// Cost, and Flagged.
type Item struct {
	Kind Kind

	// Box: measured width of an atomic segment (a word, an inline image).
	// Glue: natural width.
	// Penalty: width added to the line if the break is taken (e.g. a
	// hyphen character).
	Width float64

	Stretch float64 // Glue only.
	Shrink  float64 // Glue only.

	Cost    int  // Penalty only. Negative infinity (see MandatoryBreak) forces a break.
	Flagged bool // Penalty only: true for hyphenation points (spec §4.3 consecutive-hyphen cost).

	// Content identifies the source text this item renders, empty for
	// glue/penalty items that contribute no visible text of their own
	// (a plain space still carries a single " " box's worth of glue,
	// rendered by the caller, not this package).
	Content string

	// PageRefID marks a Box as a page-number placeholder (fo:page-number
	// or fo:page-number-citation): the caller resolves the real digits
	// only after page breaking assigns page numbers (spec §3.4), so this
	// package treats it as an ordinary fixed-width box for breaking
	// purposes and the caller reads PageRefID back off the surviving
	// Line.Items to build a separately patchable inline area.
	PageRefID string
}

// MandatoryBreak is the penalty cost used to force a break regardless of
// badness (forced line break, end of paragraph).
const MandatoryBreak = -1 << 30

// NewBox creates a box item of the given width carrying content.
func NewBox(width float64, content string) Item {
	return Item{Kind: Box, Width: width, Content: content}
}

// NewPageRefBox creates a box item standing in for a forward page-number
// reference, carrying refID for the caller to resolve after page breaking.
func NewPageRefBox(width float64, refID string) Item {
	return Item{Kind: Box, Width: width, PageRefID: refID}
}

// NewGlue creates a glue item with natural/stretch/shrink widths.
func NewGlue(width, stretch, shrink float64) Item {
	return Item{Kind: Glue, Width: width, Stretch: stretch, Shrink: shrink}
}

// NewPenalty creates a penalty item; flagged marks a hyphenation point.
func NewPenalty(width float64, cost int, flagged bool) Item {
	return Item{Kind: Penalty, Width: width, Cost: cost, Flagged: flagged}
}

// legalBreak reports whether items[i] is a position a line may end at:
// glue immediately preceded by a box, or any penalty with a cost below
// the mandatory-break threshold's negation (i.e. not "never break").
func legalBreak(items []Item, i int) bool {
	it := items[i]
	switch it.Kind {
	case Glue:
		return i > 0 && items[i-1].Kind == Box
	case Penalty:
		return it.Cost < 1<<30
	default:
		return false
	}
}
