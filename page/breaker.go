// Package page implements the Page Breaker (spec §4.5): placing the
// block-area stream onto pages, applying keep/break policy and widow/
// orphan control, and returning the finished Area Tree.
package page

import (
	"math"

	"github.com/wudi/foliate/area"
	"github.com/wudi/foliate/block"
	"github.com/wudi/foliate/prop"
	"github.com/wudi/foliate/source"
)

// Config carries the page-sequence-scoped policy knobs spec §4.5 and
// §6 name: default widows/orphans (a block's own resolved properties
// override these per spec §3's inherited-property model, but the Page
// Breaker applies the default when a block specifies neither).
type Config struct {
	DefaultWidows  int
	DefaultOrphans int
}

// DefaultConfig returns spec §6's documented defaults (2/2).
func DefaultConfig() Config {
	return Config{DefaultWidows: 2, DefaultOrphans: 2}
}

// Breaker runs the page-sequence state machine over one flow's
// block-level children, producing pages in the given Tree.
type Breaker struct {
	ctx    *block.Context
	cfg    Config
	master *source.SimplePageMaster
	tree   *area.Tree

	placeholders []placeholder
}

// placeholder records a page-number-citation inline awaiting the
// finalization pass (spec §3 "Identity and references").
type placeholder struct {
	line  *area.Area
	refID string
}

// NewBreaker constructs a Breaker for one page-sequence.
func NewBreaker(ctx *block.Context, cfg Config, master *source.SimplePageMaster, tree *area.Tree) *Breaker {
	return &Breaker{ctx: ctx, cfg: cfg, master: master, tree: tree}
}

// pageState is the mutable cursor for the page currently being filled
// (spec §4.5 "OnPage(y_cursor)").
type pageState struct {
	page    *area.Page
	yCursor float64
	number  int
}

// Run places every block-level child of flow onto pages, following the
// break-before/break-after, keep, and widow/orphan policies of spec
// §4.5. It returns the last page number produced, so a caller sequencing
// multiple page-sequences knows where to resume numbering, and for
// static-content (headers/footers) to be attached to by the caller.
func (b *Breaker) Run(flow *source.Node, startPageNumber int) int {
	st := b.openPage(startPageNumber)

	for i := 0; i < len(flow.Children); i++ {
		child := flow.Children[i]
		props := b.ctx.Resolved[child]

		if bb := props.Keyword("break-before", "auto"); bb != "auto" {
			st = b.closeAndOpen(st, bb)
		}

		st = b.placeBlock(st, child, props)

		if ba := props.Keyword("break-after", "auto"); ba != "auto" {
			st = b.closeAndOpen(st, ba)
		}
	}
	return st.number
}

func (b *Breaker) openPage(number int) *pageState {
	p := &area.Page{Area: area.Area{
		Kind:       area.KindPage,
		PageNumber: number,
		Rect:       area.Rect{Width: b.master.PageWidth, Height: b.master.PageHeight},
	}}
	b.tree.AddPage(p)
	top := b.master.MarginTop
	if b.master.RegionBefore != nil {
		top += b.master.RegionBefore.Extent
	}
	return &pageState{page: p, yCursor: top, number: number}
}

func (b *Breaker) closeAndOpen(st *pageState, breakType string) *pageState {
	// The next page is st.number+1; a blank page is inserted when that
	// number has the wrong parity for an odd-page/even-page break.
	odd := breakType == "odd" || breakType == "odd-page"
	even := breakType == "even" || breakType == "even-page"
	needBlank := (odd && st.number%2 != 0) || (even && st.number%2 == 0)
	next := b.openPage(st.number + 1)
	if needBlank {
		blank := b.openPage(next.number + 1)
		return blank
	}
	return next
}

// bodyRect returns the region-body rectangle available on the current
// page below yCursor.
func (b *Breaker) bodyRect(st *pageState) area.Rect {
	bottom := b.master.PageHeight - b.master.MarginBottom
	if b.master.RegionAfter != nil {
		bottom -= b.master.RegionAfter.Extent
	}
	return area.Rect{
		X:      b.master.MarginLeft,
		Y:      st.yCursor,
		Width:  b.master.PageWidth - b.master.MarginLeft - b.master.MarginRight,
		Height: bottom - st.yCursor,
	}
}

// placeBlock implements the per-block transition spec §4.5 describes:
// place if it fits; otherwise split (respecting keep-together, widows,
// orphans) or move the whole block to a fresh page.
func (b *Breaker) placeBlock(st *pageState, node *source.Node, props prop.Map) *pageState {
	return b.placeBlockFrom(st, node, props, nil)
}

// placeBlockFrom is placeBlock resumed from a previous SplitPoint
// result's Resume cursor (nil for node's first page). It recurses
// across page boundaries — once for MoveToNextPage, once per further
// SplitPoint — until block.LayoutNodeFrom reports Placed, so a node's
// unplaced remainder always continues rather than vanishing (spec
// §4.5: "attempt splitting... if no legal split exists, close the page
// and retry").
func (b *Breaker) placeBlockFrom(st *pageState, node *source.Node, props prop.Map, at *block.Cursor) *pageState {
	region := b.bodyRect(st)
	if region.Height <= 0 {
		st = b.openPage(st.number + 1)
		region = b.bodyRect(st)
	}

	keepTogether := props.Keyword("keep-together", "auto") == "always"
	widows := props.Int("widows", b.cfg.DefaultWidows)
	orphans := props.Int("orphans", b.cfg.DefaultOrphans)

	res := block.LayoutNodeFrom(b.ctx, node, region, at)

	switch res.Outcome {
	case block.Placed:
		b.append(st, res.Areas)
		st.yCursor += res.HeightUsed
		return st

	case block.MoveToNextPage:
		st = b.openPage(st.number + 1)
		return b.placeBlockFrom(st, node, props, at)

	case block.Overflow:
		// The node could not be laid out at all (see block.Overflow);
		// whatever areas came back are kept on the current page.
		b.append(st, res.Areas)
		st.yCursor += res.HeightUsed
		return st

	case block.SplitPoint:
		// A page with no flow content yet offers no more room than the
		// next one would, so there the split is taken as it stands.
		freshPage := len(st.page.Children) == 0
		if at == nil && keepTogether && !freshPage {
			st = b.openPage(st.number + 1)
			return b.placeBlockFrom(st, node, props, at)
		}
		if at == nil && !freshPage {
			full := block.LayoutNodeFrom(b.ctx, node, area.Rect{X: region.X, Y: region.Y, Width: region.Width, Height: math.Inf(1)}, nil)
			totalLines := countLines(full.Areas)
			if res.SplitIndex < orphans || (totalLines-res.SplitIndex) < widows {
				st = b.openPage(st.number + 1)
				return b.placeBlockFrom(st, node, props, at)
			}
		}
		b.append(st, res.Areas)
		st.yCursor += res.HeightUsed
		st = b.openPage(st.number + 1)
		// The remainder continues on the fresh page, resuming exactly
		// where this call's Resume cursor left off.
		return b.placeBlockFrom(st, node, props, res.Resume)
	default:
		b.append(st, res.Areas)
		return st
	}
}

func countLines(areas []*area.Area) int {
	n := 0
	for _, a := range areas {
		area.Walk(a, func(x *area.Area) bool {
			if x.Kind == area.KindLine {
				n++
			}
			return true
		})
	}
	return n
}

func (b *Breaker) append(st *pageState, areas []*area.Area) {
	for _, a := range areas {
		if a.Kind == area.KindAbsolute {
			st.page.Absolutes = append(st.page.Absolutes, a)
			continue
		}
		st.page.Children = append(st.page.Children, a)
	}
}
