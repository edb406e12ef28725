// Package area implements the Area Tree Model (spec §3, §6): the
// geometric, plain-data output of layout. Each area is created exactly
// once by its owning layouter and is thereafter immutable (design note
// §9: no pointer cycles, lookups go through the Tree's id map instead).
package area

// Rect is a positioned, sized rectangle in points, origin at the
// page's top-left (spec §3 invariant ii).
type Rect struct {
	X, Y, Width, Height float64
}

// Kind discriminates the area-tree node variants spec §3 names. Go has
// no sealed-class hierarchy; the tagged-variant approach (design note
// §9) uses this enum plus per-kind fields on Area rather than an
// interface-per-variant hierarchy, so a single flat type can be walked,
// stored in the id map, and serialized uniformly.
type Kind int

const (
	KindPage Kind = iota
	KindBlock
	KindLine
	KindInline
	KindImage
	KindTable
	KindTableRow
	KindTableCell
	KindFloat
	KindLeader
	KindLink
	KindAbsolute
)

// Area is one node of the area tree. Fields not relevant to Kind are
// zero-valued. Children holds normal-flow sub-areas in document order;
// a page's Absolutes holds its absolutely positioned areas ordered by
// ZIndex ascending (spec §3 invariant iv).
type Area struct {
	Kind Kind
	ID   string // empty unless this area is an id-citable target.
	Rect Rect

	Children []*Area

	// Inline/text content.
	Text     string
	FontKey  string
	FontSize float64

	// Image.
	ImagePath string

	// Table/row/cell.
	ColumnWidths []float64
	RowIndex     int
	ColIndex     int
	ColSpan      int
	RowSpan      int

	// Leader.
	LeaderPattern string

	// Link.
	LinkDestinationID string

	// PageNumberRefID is set on a page-number-citation placeholder
	// inline; Finalize patches Text once the referenced area's page is
	// known (spec §3, §4.5). CurrentPageRefID is the reserved value a
	// fo:page-number (rather than fo:page-number-citation) placeholder
	// carries: it asks Finalize to resolve to the placeholder's own
	// owning page rather than looking up another area's id.
	PageNumberRefID string

	// Absolute-positioned area.
	ZIndex int

	// Page.
	PageNumber int
	Absolutes  []*Area // only populated on KindPage areas.
}

// CurrentPageRefID is the sentinel PageNumberRefID value meaning "this
// page's own number" (fo:page-number), as opposed to a real id naming
// another area (fo:page-number-citation). No user-supplied id can equal
// this value since it is not a legal XML Name.
const CurrentPageRefID = "\x00current-page"

// Page is a top-level page viewport: its own geometry plus the normal
// flow and absolute-area children (spec §6 output contract).
type Page struct {
	Area
}
