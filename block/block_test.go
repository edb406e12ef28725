package block

import (
	"testing"

	"github.com/wudi/foliate/area"
	"github.com/wudi/foliate/diag"
	"github.com/wudi/foliate/fonts"
	"github.com/wudi/foliate/layout/layouttest"
	"github.com/wudi/foliate/prop"
	"github.com/wudi/foliate/source"
	"github.com/wudi/foliate/text"
)

func countLines(res Result) int {
	n := 0
	for _, a := range res.Areas {
		area.Walk(a, func(x *area.Area) bool {
			if x.Kind == area.KindLine {
				n++
			}
			return true
		})
	}
	return n
}

func findByKind(a *area.Area, kind area.Kind) *area.Area {
	var found *area.Area
	area.Walk(a, func(n *area.Area) bool {
		if found != nil {
			return false
		}
		if n.Kind == kind {
			found = n
			return false
		}
		return true
	})
	return found
}

func newTestContext(resolved map[*source.Node]prop.Map) *Context {
	shaper := text.NewShaper(fonts.NewBase14Provider())
	return NewContext(shaper, nil, diag.NewSink(nil), resolved)
}

func TestLayoutBlock_ParagraphProducesLinesWithinWidth(t *testing.T) {
	node := &source.Node{
		Kind: source.KindBlock,
		Children: []*source.Node{
			{Kind: source.KindCharacter, Text: "The quick brown fox jumps over the lazy dog."},
		},
	}
	resolved := map[*source.Node]prop.Map{
		node: {"font-size": prop.Len(12), "font-family": prop.Str("Helvetica")},
	}
	ctx := newTestContext(resolved)

	res := LayoutBlock(ctx, node, area.Rect{Width: 100, Height: 500})
	if len(res.Areas) != 1 {
		t.Fatalf("expected one wrapper block area, got %d", len(res.Areas))
	}
	lines := res.Areas[0].Children
	if len(lines) < 2 {
		t.Errorf("expected multiple lines for a narrow column, got %d", len(lines))
	}
	for _, l := range lines {
		if l.Rect.Width > 100+0.01 {
			t.Errorf("line width %v exceeds column width 100", l.Rect.Width)
		}
	}
}

func TestLayoutBlock_InsufficientHeightSplits(t *testing.T) {
	node := &source.Node{
		Kind: source.KindBlock,
		Children: []*source.Node{
			{Kind: source.KindCharacter, Text: "one two three four five six seven eight nine ten"},
		},
	}
	resolved := map[*source.Node]prop.Map{
		node: {"font-size": prop.Len(12), "line-height": prop.Len(14)},
	}
	ctx := newTestContext(resolved)

	res := LayoutBlock(ctx, node, area.Rect{Width: 40, Height: 20})
	if res.Outcome != SplitPoint && res.Outcome != Overflow {
		t.Errorf("expected SplitPoint or Overflow with constrained height, got %v", res.Outcome)
	}
}

func TestLayoutBlock_PageNumberCitationProducesTaggedInline(t *testing.T) {
	node := &source.Node{
		Kind: source.KindBlock,
		Children: []*source.Node{
			{Kind: source.KindCharacter, Text: "See page "},
			{Kind: source.KindPageNumberCitation, RefID: "chapter-2"},
			{Kind: source.KindCharacter, Text: " for details."},
		},
	}
	resolved := map[*source.Node]prop.Map{
		node: {"font-size": prop.Len(12)},
	}
	ctx := newTestContext(resolved)

	res := LayoutBlock(ctx, node, area.Rect{Width: 400, Height: 200})
	inline := findByKind(res.Areas[0], area.KindInline)
	if inline == nil {
		t.Fatal("expected a page-number-citation inline area in the line's children")
	}
	if inline.PageNumberRefID != "chapter-2" {
		t.Errorf("expected PageNumberRefID %q, got %q", "chapter-2", inline.PageNumberRefID)
	}
}

func TestLayoutBlock_NestedBlockPositionsAbsolutely(t *testing.T) {
	inner := &source.Node{
		Kind: source.KindBlock,
		Children: []*source.Node{
			{Kind: source.KindCharacter, Text: "nested"},
		},
	}
	outer := &source.Node{
		Kind:     source.KindBlock,
		Children: []*source.Node{inner},
	}
	resolved := map[*source.Node]prop.Map{
		outer: {"margin-left": prop.Len(20), "margin-top": prop.Len(10)},
		inner: {"font-size": prop.Len(12)},
	}
	ctx := newTestContext(resolved)

	res := LayoutBlock(ctx, outer, area.Rect{X: 50, Y: 30, Width: 300, Height: 200})
	line := findByKind(res.Areas[0], area.KindLine)
	if line == nil {
		t.Fatal("expected a line area under the nested block")
	}
	// Absolute X must include the outer region's X (50), the outer
	// block's margin-left (20), and the inner block's own local
	// within-line offset (>=0); it must never collapse back to a
	// value at or below the page-relative region origin alone.
	if line.Rect.X < 70-0.01 {
		t.Errorf("nested line X %v does not reflect outer region.X (50) + margin-left (20)", line.Rect.X)
	}
	if line.Rect.Y < 40-0.01 {
		t.Errorf("nested line Y %v does not reflect outer region.Y (30) + margin-top (10)", line.Rect.Y)
	}
}

// TestLayoutBlockFrom_ResumesRemainderAfterSplit pins down the
// continuation contract: a paragraph split across a page boundary must
// place every one of its lines somewhere, never silently drop the
// remainder named by Result.Resume.
func TestLayoutBlockFrom_ResumesRemainderAfterSplit(t *testing.T) {
	node := &source.Node{
		Kind: source.KindBlock,
		Children: []*source.Node{
			{Kind: source.KindCharacter, Text: "one two three four five six seven eight nine ten eleven twelve"},
		},
	}
	resolved := map[*source.Node]prop.Map{
		node: {"font-size": prop.Len(12), "line-height": prop.Len(14)},
	}
	shaper := text.NewShaper(layouttest.NewMockFontProvider())
	ctx := NewContext(shaper, nil, diag.NewSink(nil), resolved)

	full := LayoutBlock(ctx, node, area.Rect{Width: 60, Height: 1000})
	if full.Outcome != Placed {
		t.Fatalf("expected the unconstrained layout to place everything, got %v", full.Outcome)
	}
	fullLines := countLines(full)
	if fullLines < 3 {
		t.Fatalf("need at least 3 lines for this test to be meaningful, got %d", fullLines)
	}

	first := LayoutBlock(ctx, node, area.Rect{Width: 60, Height: 28.01})
	if first.Outcome != SplitPoint {
		t.Fatalf("expected SplitPoint with a two-line-tall region, got %v", first.Outcome)
	}
	if first.Resume == nil {
		t.Fatal("expected a non-nil Resume cursor on a SplitPoint result")
	}

	second := LayoutBlockFrom(ctx, node, area.Rect{Width: 60, Height: 1000}, first.Resume)
	if second.Outcome != Placed {
		t.Fatalf("expected the continuation to place the rest, got %v", second.Outcome)
	}

	total := countLines(first) + countLines(second)
	if total != fullLines {
		t.Errorf("expected all %d lines to survive across the split, got %d", fullLines, total)
	}
}
