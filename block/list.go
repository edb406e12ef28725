package block

import (
	"github.com/wudi/foliate/area"
	"github.com/wudi/foliate/source"
)

// LayoutList implements spec §4.4's list contract: label and body share
// a start indent, the label ending at label-end() and the body
// beginning at body-start().
func LayoutList(ctx *Context, node *source.Node, region area.Rect) Result {
	return LayoutListFrom(ctx, node, region, nil)
}

// LayoutListFrom is LayoutList resumed from a previous SplitPoint
// result's Resume cursor (nil for a fresh layout): at.Index names the
// first node.Children index to lay out on this page. A list item is
// never split mid-item (label/body that doesn't fit in the remaining
// height defers the whole item to the next page), so no nested Child
// cursor is ever needed here.
func LayoutListFrom(ctx *Context, node *source.Node, region area.Rect, at *Cursor) Result {
	startIndex := 0
	if at != nil {
		startIndex = at.Index
	}

	props := ctx.Resolved[node]
	labelEnd := props.Length("provisional-label-separation", 18)
	bodyStart := props.Length("provisional-distance-between-starts", 36)

	var items []*area.Area
	y := 0.0
	splitAt := -1

	for i := startIndex; i < len(node.Children); i++ {
		item := node.Children[i]
		if item.Kind != source.KindListItem {
			continue
		}
		if y >= region.Height {
			splitAt = i
			break
		}
		remaining := region.Height - y
		var label, body *source.Node
		for _, c := range item.Children {
			switch c.Kind {
			case source.KindListItemLabel:
				label = c
			case source.KindListItemBody:
				body = c
			}
		}

		var labelAreas, bodyAreas []*area.Area
		labelHeight, bodyHeight := 0.0, 0.0
		fits := true
		if label != nil {
			res := LayoutBlock(ctx, label, area.Rect{X: 0, Y: y, Width: labelEnd, Height: remaining})
			if res.Outcome != Placed {
				fits = false
			}
			labelAreas = res.Areas
			labelHeight = res.HeightUsed
		}
		if body != nil {
			res := LayoutBlock(ctx, body, area.Rect{X: bodyStart, Y: y, Width: region.Width - bodyStart, Height: remaining})
			if res.Outcome != Placed {
				fits = false
			}
			bodyAreas = res.Areas
			bodyHeight = res.HeightUsed
		}
		height := bodyHeight
		if labelHeight > height {
			height = labelHeight
		}
		if !fits || (y+height > region.Height+0.01 && y > 0) {
			splitAt = i
			break
		}

		itemArea := &area.Area{
			Kind:     area.KindBlock,
			ID:       item.ID,
			Rect:     area.Rect{X: 0, Y: y, Width: region.Width, Height: height},
			Children: append(labelAreas, bodyAreas...),
		}
		items = append(items, itemArea)
		y += height
	}

	for _, it := range items {
		area.Translate(it, region.X, region.Y)
	}

	if splitAt >= 0 {
		if len(items) == 0 && splitAt == startIndex {
			// Not even the first remaining item fits: move it whole to
			// a fresh page instead of reporting zero-progress as a
			// split (mirrors the paragraph no-room-for-one-line case).
			return Result{Outcome: MoveToNextPage}
		}
		return Result{Outcome: SplitPoint, Areas: items, HeightUsed: y, SplitIndex: splitAt, Resume: &Cursor{Index: splitAt}}
	}
	return Result{Outcome: Placed, Areas: items, HeightUsed: y}
}
