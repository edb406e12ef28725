package block

import (
	"github.com/wudi/foliate/area"
	"github.com/wudi/foliate/source"
)

// layoutAbsoluteContainer implements spec §4.4's
// "block-container with absolute-position=absolute|fixed" contract: the
// produced area is registered as an absolutely positioned sibling of
// the normal flow, outside the region's natural stacking, at the
// configured (x, y, width, height) and z-index. The caller (Page
// Breaker) is responsible for appending the returned area to the
// current page's Absolutes rather than its Children.
func layoutAbsoluteContainer(ctx *Context, node *source.Node, region area.Rect) Result {
	props := ctx.Resolved[node]
	x := props.Length("left", 0)
	y := props.Length("top", 0)
	width := props.Length("width", region.Width)
	height := props.Length("height", region.Height)
	zIndex := props.Int("z-index", 0)

	inner := layoutBlockChildren(ctx, node, area.Rect{X: 0, Y: 0, Width: width, Height: height})

	abs := &area.Area{
		Kind:     area.KindAbsolute,
		ID:       node.ID,
		Rect:     area.Rect{X: 0, Y: 0, Width: width, Height: height},
		Children: inner.Areas,
		ZIndex:   zIndex,
	}
	area.Translate(abs, region.X+x, region.Y+y)
	// Absolute areas never overflow onto a following page; their
	// content is simply clipped by the renderer if it exceeds height
	// (spec §3: page geometry is fixed at page creation).
	return Result{Outcome: Placed, Areas: []*area.Area{abs}, HeightUsed: 0}
}
