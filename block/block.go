package block

import (
	"github.com/wudi/foliate/area"
	"github.com/wudi/foliate/prop"
	"github.com/wudi/foliate/source"
)

// hasInlineOnlyContent reports whether node's children are all
// character/inline content (a paragraph), as opposed to block-level
// children that need their own recursive layout.
func hasInlineOnlyContent(node *source.Node) bool {
	for _, c := range node.Children {
		switch c.Kind {
		case source.KindCharacter, source.KindInline, source.KindPageNumber,
			source.KindPageNumberCitation, source.KindBasicLink, source.KindLeader:
			continue
		default:
			return false
		}
	}
	return true
}

// LayoutBlock lays out node (spec §4.4's "block" contract) into the
// given content region, returning the areas produced and whether
// everything fit.
func LayoutBlock(ctx *Context, node *source.Node, region area.Rect) Result {
	return LayoutBlockFrom(ctx, node, region, nil)
}

// LayoutBlockFrom is LayoutBlock resumed from a previous SplitPoint
// result's Resume cursor (nil for a fresh, first-page layout). For a
// paragraph, at.Index names the first line to lay out; for block-level
// children, at.Index names the first child to lay out and at.Child (if
// non-nil) is that child's own resume cursor, since a child may itself
// have been only partially placed on the prior page.
func LayoutBlockFrom(ctx *Context, node *source.Node, region area.Rect, at *Cursor) Result {
	props := ctx.Resolved[node]

	marginTop := props.Length("margin-top", 0)
	marginBottom := props.Length("margin-bottom", 0)
	marginLeft := props.Length("margin-left", 0)
	marginRight := props.Length("margin-right", 0)
	paddingLeft := props.Length("padding-left", 0)
	paddingRight := props.Length("padding-right", 0)
	paddingTop := props.Length("padding-top", 0)
	paddingBottom := props.Length("padding-bottom", 0)
	borderLeft := props.Length("border-left-width", 0)
	borderRight := props.Length("border-right-width", 0)
	borderTop := props.Length("border-top-width", 0)
	borderBottom := props.Length("border-bottom-width", 0)

	contentX := marginLeft + borderLeft + paddingLeft
	contentWidth := region.Width - marginLeft - marginRight - borderLeft - borderRight - paddingLeft - paddingRight
	if contentWidth < 0 {
		contentWidth = 0
	}
	contentTop := marginTop + borderTop + paddingTop
	availableHeight := region.Height - contentTop - marginBottom - borderBottom - paddingBottom
	if availableHeight < 0 {
		availableHeight = 0
	}

	var inner Result
	if hasInlineOnlyContent(node) {
		startLine := 0
		if at != nil {
			startLine = at.Index
		}
		items := buildItemStream(ctx, node, props)
		inner = layoutLinesFrom(ctx, items, props, contentWidth, availableHeight, startLine)
	} else {
		startChild := 0
		var childAt *Cursor
		if at != nil {
			startChild = at.Index
			childAt = at.Child
		}
		inner = layoutBlockChildrenFrom(ctx, node, area.Rect{
			X: 0, Y: 0, Width: contentWidth, Height: availableHeight,
		}, startChild, childAt)
	}

	for _, a := range inner.Areas {
		area.Translate(a, contentX, contentTop)
	}

	wrapper := &area.Area{
		Kind:     area.KindBlock,
		ID:       node.ID,
		Rect:     area.Rect{X: 0, Y: 0, Width: region.Width, Height: contentTop + inner.HeightUsed + marginBottom + borderBottom + paddingBottom},
		Children: inner.Areas,
	}
	area.Translate(wrapper, region.X, region.Y)

	return Result{
		Outcome:    inner.Outcome,
		Areas:      []*area.Area{wrapper},
		HeightUsed: wrapper.Rect.Height,
		SplitIndex: inner.SplitIndex,
		Resume:     inner.Resume,
	}
}

// layoutBlockChildren stacks a block's block-level children vertically,
// applying space-before/space-after with conditional collapse between
// adjacent blocks (spec §4.4).
func layoutBlockChildren(ctx *Context, node *source.Node, region area.Rect) Result {
	return layoutBlockChildrenFrom(ctx, node, region, 0, nil)
}

// layoutBlockChildrenFrom resumes layoutBlockChildren from child index
// startIndex; childAt, if non-nil, is that first child's own resume
// cursor (it was itself only partially placed on the previous page).
// Children before startIndex are not re-emitted: they are already
// placed on an earlier page.
func layoutBlockChildrenFrom(ctx *Context, node *source.Node, region area.Rect, startIndex int, childAt *Cursor) Result {
	var areas []*area.Area
	y := 0.0
	lastSpaceAfter := 0.0

	for i := startIndex; i < len(node.Children); i++ {
		child := node.Children[i]
		childProps := ctx.Resolved[child]

		var at *Cursor
		if i == startIndex {
			at = childAt
		}

		// A resumed child continues exactly where it left off; it never
		// repeats the space-before/space-after gap that already ran
		// before its first page.
		if at == nil {
			spaceBefore := childProps.Length("space-before", 0)
			gap := spaceBefore
			if gap < lastSpaceAfter {
				gap = lastSpaceAfter // conditional collapse: larger of the two wins
			}
			y += gap
		}

		remaining := region.Height - y
		if remaining <= 0 {
			return Result{Outcome: SplitPoint, Areas: areas, HeightUsed: y, SplitIndex: i, Resume: &Cursor{Index: i, Child: at}}
		}

		res := LayoutNodeFrom(ctx, child, area.Rect{X: region.X, Y: region.Y + y, Width: region.Width, Height: remaining}, at)
		areas = append(areas, res.Areas...)
		y += res.HeightUsed
		lastSpaceAfter = childProps.Length("space-after", 0)

		switch res.Outcome {
		case SplitPoint:
			return Result{Outcome: SplitPoint, Areas: areas, HeightUsed: y, SplitIndex: i, Resume: &Cursor{Index: i, Child: res.Resume}}
		case MoveToNextPage:
			return Result{Outcome: SplitPoint, Areas: areas, HeightUsed: y, SplitIndex: i, Resume: &Cursor{Index: i}}
		}
	}
	return Result{Outcome: Placed, Areas: areas, HeightUsed: y}
}

// LayoutNode dispatches to the per-variant layout function for node's
// Kind (spec §4.4's per-variant contracts). Unrecognized kinds (static
// content wrappers the caller has already special-cased, markers with
// no visible content, etc.) produce an empty, zero-height placed result.
func LayoutNode(ctx *Context, node *source.Node, region area.Rect) Result {
	return LayoutNodeFrom(ctx, node, region, nil)
}

// LayoutNodeFrom is LayoutNode resumed from a previous SplitPoint
// result's Resume cursor (nil for a fresh layout). Nodes that can never
// produce a SplitPoint (graphics, absolute containers) ignore at.
func LayoutNodeFrom(ctx *Context, node *source.Node, region area.Rect, at *Cursor) Result {
	switch node.Kind {
	case source.KindBlock, source.KindBlockContainer:
		if isAbsolutelyPositioned(ctx.Resolved[node]) {
			return layoutAbsoluteContainer(ctx, node, region)
		}
		return LayoutBlockFrom(ctx, node, region, at)
	case source.KindTable:
		return LayoutTableFrom(ctx, node, region, at)
	case source.KindListBlock:
		return LayoutListFrom(ctx, node, region, at)
	case source.KindExternalGraphic:
		return LayoutGraphic(ctx, node, region)
	case source.KindFloat:
		return LayoutFloatFrom(ctx, node, region, at)
	default:
		return Result{Outcome: Placed}
	}
}

func isAbsolutelyPositioned(props prop.Map) bool {
	pos := props.Keyword("position", "static")
	return pos == "absolute" || pos == "fixed"
}
