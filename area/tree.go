package area

import "sort"

// Tree is the layout run's complete result: an ordered list of pages plus
// the id→area map used for cross-reference resolution (spec §3
// "Identity and references"). AddPage indexes a page's areas as they are
// when it is added; Lookup picks up areas added later.
type Tree struct {
	Pages []*Page
	byID  map[string]*Area
}

// NewTree constructs an empty tree ready to receive pages.
func NewTree() *Tree {
	return &Tree{byID: make(map[string]*Area)}
}

// AddPage appends a page in page-sequence order (spec §5 "the area
// tree's page order follows source page-sequence order").
func (t *Tree) AddPage(p *Page) {
	t.Pages = append(t.Pages, p)
	t.index(&p.Area)
}

// index registers a into the id map (if it carries an id) and recurses
// into its children and, for pages, its absolute areas.
func (t *Tree) index(a *Area) {
	if a.ID != "" {
		t.byID[a.ID] = a
	}
	for _, c := range a.Children {
		t.index(c)
	}
	for _, abs := range a.Absolutes {
		t.index(abs)
	}
}

// Lookup resolves an id to its area, for page-number-citation,
// basic-link, and retrieve-marker references (spec §3). On a miss it
// re-indexes every page once, so areas appended to a page after
// AddPage are found too.
func (t *Tree) Lookup(id string) (*Area, bool) {
	a, ok := t.byID[id]
	if !ok {
		for _, p := range t.Pages {
			t.index(&p.Area)
		}
		a, ok = t.byID[id]
	}
	return a, ok
}

// SortAbsolutes orders a page's absolute areas by ascending z-index
// (spec §3 invariant iv), stable so same-z-index areas keep source order.
func SortAbsolutes(p *Page) {
	sort.SliceStable(p.Absolutes, func(i, j int) bool {
		return p.Absolutes[i].ZIndex < p.Absolutes[j].ZIndex
	})
}

// Translate shifts a and every descendant (children and, for a page,
// absolutes) by (dx, dy). Layouters build a subtree using coordinates
// local to their own content origin and call Translate exactly once,
// when handing the finished subtree back to their caller, to convert
// it into the caller's coordinate frame (spec §3 invariant ii: every
// area's Rect is ultimately page-absolute).
func Translate(a *Area, dx, dy float64) {
	Walk(a, func(n *Area) bool {
		n.Rect.X += dx
		n.Rect.Y += dy
		return true
	})
}

// Walk visits a and every descendant (children, then absolutes for
// pages) in document order, depth-first. visit returning false stops
// descent into that node's children but not its siblings.
func Walk(a *Area, visit func(*Area) bool) {
	if a == nil {
		return
	}
	if !visit(a) {
		return
	}
	for _, c := range a.Children {
		Walk(c, visit)
	}
	for _, abs := range a.Absolutes {
		Walk(abs, visit)
	}
}
