package page

import (
	"testing"

	"github.com/wudi/foliate/block"
	"github.com/wudi/foliate/diag"
	"github.com/wudi/foliate/fonts"
	"github.com/wudi/foliate/prop"
	"github.com/wudi/foliate/source"
	"github.com/wudi/foliate/text"
	"github.com/wudi/foliate/area"
)

func testMaster() *source.SimplePageMaster {
	return &source.SimplePageMaster{
		Name: "simple", PageWidth: 612, PageHeight: 792,
		MarginTop: 36, MarginBottom: 36, MarginLeft: 36, MarginRight: 36,
		RegionBody: source.Region{Name: "body"},
	}
}

func TestBreaker_SingleBlockFitsOnePage(t *testing.T) {
	node := &source.Node{Kind: source.KindBlock, Children: []*source.Node{
		{Kind: source.KindCharacter, Text: "hello world"},
	}}
	flow := &source.Node{Kind: source.KindFlow, Children: []*source.Node{node}}
	resolved := map[*source.Node]prop.Map{
		node: {"font-size": prop.Len(12)},
	}
	ctx := block.NewContext(text.NewShaper(fonts.NewBase14Provider()), nil, diag.NewSink(nil), resolved)

	tree := area.NewTree()
	b := NewBreaker(ctx, DefaultConfig(), testMaster(), tree)
	b.Run(flow, 1)

	if len(tree.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(tree.Pages))
	}
}

func TestBreaker_BreakBeforeOpensNewPage(t *testing.T) {
	first := &source.Node{Kind: source.KindBlock, Children: []*source.Node{
		{Kind: source.KindCharacter, Text: "first"},
	}}
	second := &source.Node{Kind: source.KindBlock, Children: []*source.Node{
		{Kind: source.KindCharacter, Text: "second"},
	}}
	flow := &source.Node{Kind: source.KindFlow, Children: []*source.Node{first, second}}
	resolved := map[*source.Node]prop.Map{
		first:  {"font-size": prop.Len(12)},
		second: {"font-size": prop.Len(12), "break-before": prop.Kw("page")},
	}
	ctx := block.NewContext(text.NewShaper(fonts.NewBase14Provider()), nil, diag.NewSink(nil), resolved)

	tree := area.NewTree()
	b := NewBreaker(ctx, DefaultConfig(), testMaster(), tree)
	b.Run(flow, 1)

	if len(tree.Pages) != 2 {
		t.Fatalf("expected 2 pages after break-before=page, got %d", len(tree.Pages))
	}
}

func TestFinalize_PatchesPageNumberCitation(t *testing.T) {
	target := &area.Area{Kind: area.KindBlock, ID: "ch1"}
	citation := &area.Area{Kind: area.KindInline, PageNumberRefID: "ch1", Text: "00"}
	page1 := &area.Page{Area: area.Area{Kind: area.KindPage, PageNumber: 7, Children: []*area.Area{target, citation}}}

	tree := area.NewTree()
	tree.AddPage(page1)
	Finalize(tree)

	if citation.Text != "7" {
		t.Errorf("expected citation patched to \"7\", got %q", citation.Text)
	}
}

func TestFinalize_PatchesCurrentPageNumber(t *testing.T) {
	selfRef := &area.Area{Kind: area.KindInline, PageNumberRefID: area.CurrentPageRefID, Text: "00"}
	page1 := &area.Page{Area: area.Area{Kind: area.KindPage, PageNumber: 3, Children: []*area.Area{selfRef}}}

	tree := area.NewTree()
	tree.AddPage(page1)
	Finalize(tree)

	if selfRef.Text != "3" {
		t.Errorf("expected current-page placeholder patched to \"3\", got %q", selfRef.Text)
	}
}
