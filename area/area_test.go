package area

import "testing"

func TestTree_LookupResolvesID(t *testing.T) {
	tr := NewTree()
	block := &Area{Kind: KindBlock, ID: "ch1", Rect: Rect{Width: 100, Height: 20}}
	page := &Page{Area{Kind: KindPage, PageNumber: 1, Rect: Rect{Width: 612, Height: 792}, Children: []*Area{block}}}
	tr.AddPage(page)

	got, ok := tr.Lookup("ch1")
	if !ok {
		t.Fatal("expected ch1 to resolve")
	}
	if got != block {
		t.Error("resolved area is not the expected block")
	}
}

func TestValidate_DetectsOutOfBoundsArea(t *testing.T) {
	tr := NewTree()
	block := &Area{Kind: KindBlock, Rect: Rect{X: 0, Y: 0, Width: 700, Height: 20}}
	page := &Page{Area{Kind: KindPage, Rect: Rect{Width: 612, Height: 792}, Children: []*Area{block}}}
	tr.AddPage(page)

	violations := Validate(tr)
	found := false
	for _, v := range violations {
		if v.Code == "bounds-exceeds-width" {
			found = true
		}
	}
	if !found {
		t.Error("expected bounds-exceeds-width violation")
	}
}

func TestValidate_DetectsLineOverlap(t *testing.T) {
	tr := NewTree()
	lineA := &Area{Kind: KindLine, Rect: Rect{Y: 0, Height: 12}}
	lineB := &Area{Kind: KindLine, Rect: Rect{Y: 5, Height: 12}} // overlaps lineA
	block := &Area{Kind: KindBlock, Rect: Rect{Width: 100, Height: 30}, Children: []*Area{lineA, lineB}}
	page := &Page{Area{Kind: KindPage, Rect: Rect{Width: 612, Height: 792}, Children: []*Area{block}}}
	tr.AddPage(page)

	violations := Validate(tr)
	found := false
	for _, v := range violations {
		if v.Code == "line-overlap" {
			found = true
		}
	}
	if !found {
		t.Error("expected line-overlap violation")
	}
}

func TestValidate_CleanTreeHasNoViolations(t *testing.T) {
	tr := NewTree()
	lineA := &Area{Kind: KindLine, Rect: Rect{Y: 0, Height: 12}}
	lineB := &Area{Kind: KindLine, Rect: Rect{Y: 12, Height: 12}}
	block := &Area{Kind: KindBlock, Rect: Rect{Width: 100, Height: 24}, Children: []*Area{lineA, lineB}}
	page := &Page{Area{Kind: KindPage, Rect: Rect{Width: 612, Height: 792}, Children: []*Area{block}}}
	tr.AddPage(page)

	if violations := Validate(tr); len(violations) != 0 {
		t.Errorf("expected no violations, got %v", violations)
	}
}

func TestSortAbsolutes_OrdersByZIndexAscending(t *testing.T) {
	p := &Page{Area{Kind: KindPage, Rect: Rect{Width: 612, Height: 792}}}
	p.Absolutes = []*Area{
		{Kind: KindAbsolute, ZIndex: 3},
		{Kind: KindAbsolute, ZIndex: 1},
		{Kind: KindAbsolute, ZIndex: 2},
	}
	SortAbsolutes(p)
	for i := 1; i < len(p.Absolutes); i++ {
		if p.Absolutes[i].ZIndex < p.Absolutes[i-1].ZIndex {
			t.Fatalf("absolutes not sorted: %v", p.Absolutes)
		}
	}
}
