package area

import "fmt"

// epsilon is the tolerance spec §8 allows for boundary and overlap
// checks.
const epsilon = 0.01

// Violation is one failed invariant from §8's testable properties.
type Violation struct {
	Code     string
	Message  string
	Location string
}

// Validate checks every invariant spec §8 lists as checkable on a
// finished tree: area bounds, line non-overlap, column-width sums, and
// absolute z-index ordering. A well-formed tree (the contract §7
// promises on success) returns no violations.
func Validate(t *Tree) []Violation {
	var violations []Violation
	for _, p := range t.Pages {
		violations = append(violations, validateBounds(&p.Area, p.Rect.Width, p.Rect.Height)...)
		violations = append(violations, validateLineOrder(&p.Area)...)
		violations = append(violations, validateTableColumns(&p.Area)...)
		violations = append(violations, validateAbsoluteOrder(p)...)
	}
	return violations
}

func validateBounds(a *Area, pageWidth, pageHeight float64) []Violation {
	var violations []Violation
	Walk(a, func(n *Area) bool {
		if n.Rect.X < -epsilon || n.Rect.Y < -epsilon {
			violations = append(violations, Violation{
				Code: "bounds-negative-origin", Location: n.ID,
				Message: fmt.Sprintf("area at (%.2f, %.2f) has negative origin", n.Rect.X, n.Rect.Y),
			})
		}
		if n.Rect.X+n.Rect.Width > pageWidth+epsilon {
			violations = append(violations, Violation{
				Code: "bounds-exceeds-width", Location: n.ID,
				Message: fmt.Sprintf("area right edge %.2f exceeds page width %.2f", n.Rect.X+n.Rect.Width, pageWidth),
			})
		}
		if n.Rect.Y+n.Rect.Height > pageHeight+epsilon {
			violations = append(violations, Violation{
				Code: "bounds-exceeds-height", Location: n.ID,
				Message: fmt.Sprintf("area bottom edge %.2f exceeds page height %.2f", n.Rect.Y+n.Rect.Height, pageHeight),
			})
		}
		return true
	})
	return violations
}

// validateLineOrder checks, for every block with line children, that
// lines are sorted by y ascending and do not overlap beyond epsilon
// (spec §8).
func validateLineOrder(a *Area) []Violation {
	var violations []Violation
	Walk(a, func(n *Area) bool {
		if n.Kind != KindBlock {
			return true
		}
		var prev *Area
		for _, c := range n.Children {
			if c.Kind != KindLine {
				continue
			}
			if prev != nil {
				if c.Rect.Y < prev.Rect.Y {
					violations = append(violations, Violation{
						Code: "line-order-not-ascending", Location: n.ID,
						Message: "line areas are not sorted by y ascending",
					})
				} else if prev.Rect.Y+prev.Rect.Height > c.Rect.Y+epsilon {
					violations = append(violations, Violation{
						Code: "line-overlap", Location: n.ID,
						Message: fmt.Sprintf("line at y=%.2f overlaps preceding line ending at y=%.2f", c.Rect.Y, prev.Rect.Y+prev.Rect.Height),
					})
				}
			}
			prev = c
		}
		return true
	})
	return violations
}

// validateTableColumns checks spec §8's "table column widths sum to the
// table width within 1pt".
func validateTableColumns(a *Area) []Violation {
	var violations []Violation
	Walk(a, func(n *Area) bool {
		if n.Kind != KindTable || len(n.ColumnWidths) == 0 {
			return true
		}
		sum := 0.0
		for _, w := range n.ColumnWidths {
			sum += w
		}
		if diff := sum - n.Rect.Width; diff > 1 || diff < -1 {
			violations = append(violations, Violation{
				Code: "table-column-sum-mismatch", Location: n.ID,
				Message: fmt.Sprintf("column widths sum to %.2f, table width is %.2f", sum, n.Rect.Width),
			})
		}
		return true
	})
	return violations
}

// validateAbsoluteOrder checks spec §8's "absolute areas' render order
// equals sorted-by-z_index".
func validateAbsoluteOrder(p *Page) []Violation {
	var violations []Violation
	for i := 1; i < len(p.Absolutes); i++ {
		if p.Absolutes[i].ZIndex < p.Absolutes[i-1].ZIndex {
			violations = append(violations, Violation{
				Code: "absolute-order-not-sorted", Location: p.ID,
				Message: "absolute areas are not ordered by ascending z-index",
			})
			break
		}
	}
	return violations
}
