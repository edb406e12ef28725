package block

import (
	"github.com/wudi/foliate/area"
	"github.com/wudi/foliate/source"
)

// LayoutFloat implements spec §4.4's float contract: lay out the float
// content at its chosen width (explicit or min(200pt, body_width/3)).
// This implementation takes the conservative option spec §4.4
// explicitly allows: floats are treated as full-width breaks rather
// than tracked for inline text-flow avoidance, so the caller (Block
// Layouter's block-children loop) simply stacks the float's area like
// any other block-level child.
func LayoutFloat(ctx *Context, node *source.Node, region area.Rect) Result {
	return LayoutFloatFrom(ctx, node, region, nil)
}

// LayoutFloatFrom is LayoutFloat resumed from a previous SplitPoint
// result's Resume cursor (nil for a fresh layout).
func LayoutFloatFrom(ctx *Context, node *source.Node, region area.Rect, at *Cursor) Result {
	props := ctx.Resolved[node]
	width := props.Length("width", 0)
	if width <= 0 {
		width = region.Width / 3
		if width > 200 {
			width = 200
		}
	}
	if width > region.Width {
		width = region.Width
	}

	var inner Result
	if len(node.Children) == 1 {
		inner = LayoutNodeFrom(ctx, node.Children[0], area.Rect{X: 0, Y: 0, Width: width, Height: region.Height}, at)
	} else {
		startChild := 0
		var childAt *Cursor
		if at != nil {
			startChild = at.Index
			childAt = at.Child
		}
		inner = layoutBlockChildrenFrom(ctx, node, area.Rect{X: 0, Y: 0, Width: width, Height: region.Height}, startChild, childAt)
	}

	floatArea := &area.Area{
		Kind:     area.KindFloat,
		ID:       node.ID,
		Rect:     area.Rect{X: 0, Y: 0, Width: width, Height: inner.HeightUsed},
		Children: inner.Areas,
	}
	area.Translate(floatArea, region.X, region.Y)
	return Result{Outcome: inner.Outcome, Areas: []*area.Area{floatArea}, HeightUsed: inner.HeightUsed, SplitIndex: inner.SplitIndex, Resume: inner.Resume}
}
