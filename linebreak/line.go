package linebreak

// Align is the line's horizontal alignment (spec §4.3: start/end/center/
// justify, with text-align-last governing the final line).
type Align int

const (
	AlignStart Align = iota
	AlignEnd
	AlignCenter
	AlignJustify
)

// Line is one produced line area's content, prior to the block layouter
// stacking it and assigning a y position.
type Line struct {
	Items []Item // the consumed items, trailing glue trimmed.

	NaturalWidth float64 // sum of box widths + glue natural widths + taken penalty width.
	TargetWidth  float64 // the line width the breaker was given.

	// WordSpacingAdjustment is the extra width (can be negative, i.e.
	// shrink) added to each glue item's natural width when Align is
	// AlignJustify, computed so the line's total width equals
	// TargetWidth (spec §4.3 scenario 2).
	WordSpacingAdjustment float64

	// Hyphenated is true when the line ends on a flagged penalty (a
	// soft hyphen materializes at render time per spec §4.3).
	Hyphenated bool
}

// Justify computes WordSpacingAdjustment for a line breaker result given
// the desired alignment. It mutates nothing in Items; callers read
// WordSpacingAdjustment and apply it per glue item at render time.
func Justify(line Line, align Align) Line {
	if align != AlignJustify {
		return line
	}
	numGlue := 0
	for _, it := range line.Items {
		if it.Kind == Glue {
			numGlue++
		}
	}
	if numGlue == 0 {
		return line
	}
	slack := line.TargetWidth - line.NaturalWidth
	line.WordSpacingAdjustment = slack / float64(numGlue)
	return line
}

// OffsetX returns the line's horizontal starting offset within a column
// of the given width, for non-justified alignments.
func OffsetX(line Line, columnWidth float64, align Align) float64 {
	switch align {
	case AlignEnd:
		return columnWidth - line.NaturalWidth
	case AlignCenter:
		return (columnWidth - line.NaturalWidth) / 2
	default:
		return 0
	}
}
