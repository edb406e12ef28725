package block

import (
	"github.com/wudi/foliate/area"
	"github.com/wudi/foliate/prop"
	"github.com/wudi/foliate/source"
)

// LayoutTable implements spec §4.4's table contract: three-pass column
// width resolution, header/body/footer in document order, row height as
// the max cell content height. This function lays out one page's worth
// of rows and reports a split point when rows overflow the region; it
// lays out the header on every call, so each continuation page the
// Page Breaker resumes the table on repeats the header.
func LayoutTable(ctx *Context, node *source.Node, region area.Rect) Result {
	return LayoutTableFrom(ctx, node, region, nil)
}

// LayoutTableFrom is LayoutTable resumed from a previous SplitPoint
// result's Resume cursor (nil for a fresh layout): at.Index names the
// first body row (a section.Children index, not counting header rows)
// to lay out on this page. Rows are never split mid-row (spec §8
// scenario 4), so no nested Child cursor is ever needed here.
func LayoutTableFrom(ctx *Context, node *source.Node, region area.Rect, at *Cursor) Result {
	startRow := 0
	if at != nil {
		startRow = at.Index
	}

	columns := tableColumns(node)
	widths := resolveColumnWidths(ctx, node, columns, region.Width)

	var header, body, footer *source.Node
	for _, c := range node.Children {
		switch c.Kind {
		case source.KindTableHeader:
			header = c
		case source.KindTableBody:
			body = c
		case source.KindTableFooter:
			footer = c
		}
	}

	var areas []*area.Area
	y := 0.0

	if header != nil {
		res := layoutRowsFrom(ctx, header, widths, region.Height-y, 0)
		areas = append(areas, offsetRows(res.Areas, y)...)
		y += res.HeightUsed
	}

	bodyOutcome := Placed
	splitIdx := -1
	if body != nil {
		res := layoutRowsFrom(ctx, body, widths, region.Height-y, startRow)
		areas = append(areas, offsetRows(res.Areas, y)...)
		y += res.HeightUsed
		bodyOutcome = res.Outcome
		splitIdx = res.SplitIndex
	}

	if footer != nil && bodyOutcome == Placed {
		res := layoutRowsFrom(ctx, footer, widths, region.Height-y, 0)
		areas = append(areas, offsetRows(res.Areas, y)...)
		y += res.HeightUsed
	}

	tableArea := &area.Area{
		Kind:         area.KindTable,
		ID:           node.ID,
		Rect:         area.Rect{X: 0, Y: 0, Width: region.Width, Height: y},
		Children:     areas,
		ColumnWidths: widths,
	}
	area.Translate(tableArea, region.X, region.Y)

	if bodyOutcome != Placed {
		return Result{Outcome: SplitPoint, Areas: []*area.Area{tableArea}, HeightUsed: y, SplitIndex: splitIdx, Resume: &Cursor{Index: splitIdx}}
	}
	return Result{Outcome: Placed, Areas: []*area.Area{tableArea}, HeightUsed: y}
}

func offsetRows(areas []*area.Area, dy float64) []*area.Area {
	for _, a := range areas {
		area.Translate(a, 0, dy)
	}
	return areas
}

func tableColumns(node *source.Node) []*source.Node {
	var cols []*source.Node
	for _, c := range node.Children {
		if c.Kind == source.KindTableColumn {
			cols = append(cols, c)
		}
	}
	return cols
}

// resolveColumnWidths implements the three-pass model spec §4.4
// describes: explicit widths first, then percentages against table
// width, then remaining width distributed across auto columns
// proportionally (here, evenly — content-max-width measurement is the
// open question spec §9 flags as source-simplified, so this follows
// that same "support pt values" simplification rather than inventing a
// min/max-content solver).
func resolveColumnWidths(ctx *Context, node *source.Node, columns []*source.Node, tableWidth float64) []float64 {
	n := len(columns)
	if n == 0 {
		return nil
	}
	widths := make([]float64, n)
	explicit := make([]bool, n)
	used := 0.0
	autoCount := 0

	for i, col := range columns {
		props := ctx.Resolved[col]
		w := props.Length("column-width", -1)
		if raw, ok := col.Prop("column-width"); ok {
			// Parsed from the specified value so that a percentage
			// resolves against this table's width.
			if pt, ok := prop.ParseLength(raw, props.Length("font-size", 10), tableWidth); ok {
				w = pt
			}
		}
		if w >= 0 {
			widths[i] = w
			explicit[i] = true
			used += w
		} else {
			autoCount++
		}
	}

	remaining := tableWidth - used
	if remaining < 0 {
		remaining = 0
	}
	if autoCount > 0 {
		share := remaining / float64(autoCount)
		for i := range widths {
			if !explicit[i] {
				widths[i] = share
			}
		}
	}
	return widths
}

// layoutRows lays out every table-row under section (a header/body/
// footer node), stacking rows vertically; a row's height is the max
// height of its cells' laid-out content (spec §4.4). No cell is split
// across a page boundary (spec §8 scenario 4): a row that doesn't fit
// produces a split point before that row.
func layoutRows(ctx *Context, section *source.Node, colWidths []float64, availableHeight float64) Result {
	return layoutRowsFrom(ctx, section, colWidths, availableHeight, 0)
}

// layoutRowsFrom resumes layoutRows from section.Children index
// startRow (0 for a fresh layout): rows before startRow are already
// placed on an earlier page and are not re-emitted here.
func layoutRowsFrom(ctx *Context, section *source.Node, colWidths []float64, availableHeight float64, startRow int) Result {
	var rowAreas []*area.Area
	y := 0.0
	for i := startRow; i < len(section.Children); i++ {
		row := section.Children[i]
		if row.Kind != source.KindTableRow {
			continue
		}
		rowHeight, cellAreas := layoutRow(ctx, row, colWidths)
		if y+rowHeight > availableHeight+0.01 && y > 0 {
			return Result{Outcome: SplitPoint, Areas: rowAreas, HeightUsed: y, SplitIndex: i, Resume: &Cursor{Index: i}}
		}
		for _, c := range cellAreas {
			area.Translate(c, 0, y)
		}
		rowArea := &area.Area{
			Kind:     area.KindTableRow,
			Rect:     area.Rect{X: 0, Y: y, Width: sumFloats(colWidths), Height: rowHeight},
			Children: cellAreas,
			RowIndex: i,
		}
		rowAreas = append(rowAreas, rowArea)
		y += rowHeight
	}
	return Result{Outcome: Placed, Areas: rowAreas, HeightUsed: y}
}

func layoutRow(ctx *Context, row *source.Node, colWidths []float64) (float64, []*area.Area) {
	var cells []*area.Area
	x := 0.0
	maxHeight := 0.0
	col := 0
	for _, cell := range row.Children {
		if cell.Kind != source.KindTableCell {
			continue
		}
		width := 0.0
		if col < len(colWidths) {
			width = colWidths[col]
		}
		res := LayoutBlock(ctx, cell, area.Rect{X: x, Y: 0, Width: width, Height: 1e6})
		cellArea := &area.Area{
			Kind:     area.KindTableCell,
			Rect:     area.Rect{X: x, Y: 0, Width: width, Height: res.HeightUsed},
			Children: res.Areas,
			ColIndex: col,
		}
		if res.HeightUsed > maxHeight {
			maxHeight = res.HeightUsed
		}
		cells = append(cells, cellArea)
		x += width
		col++
	}
	for _, c := range cells {
		c.Rect.Height = maxHeight
	}
	return maxHeight, cells
}

func sumFloats(xs []float64) float64 {
	s := 0.0
	for _, x := range xs {
		s += x
	}
	return s
}
