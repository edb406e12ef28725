// Package block implements the Block Layouter (spec §4.4): turning
// resolved source nodes into positioned block, line, image, table, list,
// and float areas within a region rectangle.
package block

import "github.com/wudi/foliate/area"

// Outcome distinguishes the Block Layouter's result shapes (design note
// §9: "replace exception-driven flow with explicit result values").
type Outcome int

const (
	// Placed: the content fit entirely within the offered height.
	Placed Outcome = iota
	// SplitPoint: only a prefix fits; Result.SplitIndex names where the
	// remainder begins (spec §4.5 uses this to continue on the next page).
	SplitPoint
	// Overflow: a fatal, unrecoverable condition for this node (e.g. an
	// image decode error under the "throw" error policy) — not a page
	// geometry split. The caller treats it as "could not lay out this
	// content" and moves on; a node that merely doesn't fit the offered
	// height reports SplitPoint or MoveToNextPage instead.
	Overflow
	// MoveToNextPage: the content must be placed whole on a fresh page
	// (keep-together=always, or a widows/orphans constraint that can't
	// be satisfied by splitting).
	MoveToNextPage
)

// Result is what every block-layout call returns instead of throwing.
type Result struct {
	Outcome Outcome

	// Areas produced for the portion that was placed (empty on a pure
	// MoveToNextPage result with nothing placed yet).
	Areas []*area.Area

	// HeightUsed is the vertical extent Areas occupy, for the caller's
	// y-cursor bookkeeping.
	HeightUsed float64

	// SplitIndex is meaningful only when Outcome == SplitPoint: the
	// index into the original child/line/row/item list where the
	// unplaced remainder begins.
	SplitIndex int

	// Resume is meaningful only when Outcome == SplitPoint: it names
	// exactly where a continuation call (LayoutNodeFrom on the same
	// node, on the next page's region) should pick back up. Resume.Index
	// equals SplitIndex; Resume.Child is non-nil when the element at
	// that index was itself only partially placed (e.g. a paragraph
	// that split mid-line inside a block's block-level children) and
	// needs its own resume point carried in turn.
	Resume *Cursor
}

// Cursor names a resume point inside a previously split node: Index is
// the child/line/row/item index to start at, and Child is non-nil when
// that element was itself only partially placed and must resume at its
// own Child cursor rather than starting over from scratch.
type Cursor struct {
	Index int
	Child *Cursor
}
