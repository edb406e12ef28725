package linebreak

import "math"

// Default glue elasticity for an inter-word space (spec §4.3), as ratios
// of the space width. The breakers read stretch and shrink from each glue
// item; block/paragraph.go builds its inter-word glue with these ratios.
const (
	DefaultSpaceStretchRatio = 0.5
	DefaultSpaceShrinkRatio  = 1.0 / 3.0
)

// hyphenPairPenalty is added when two consecutive lines both end on a
// flagged (hyphenation) penalty, discouraging runs of hyphenated lines.
const hyphenPairPenalty = 3000.0

// KnuthPlass implements spec §4.3's optimal algorithm: a DAG over break
// opportunities, edge cost the square of the adjustment ratio plus
// penalty costs, shortest path by dynamic programming (the item streams
// this layer handles are paragraph-sized, so O(n^2) DP is simpler and
// cheap enough; the classic active-node-list optimization is not
// needed at this scale). Falls back to Greedy when no breakpoint
// reaches the end within feasible adjustment ratios.
func KnuthPlass(items []Item, lineWidth float64) []Line {
	breaks := []int{-1}
	for i := range items {
		if legalBreak(items, i) {
			breaks = append(breaks, i)
		}
	}
	if len(items) > 0 && breaks[len(breaks)-1] != len(items)-1 {
		breaks = append(breaks, len(items)-1)
	}
	if len(breaks) <= 1 {
		return Greedy(items, lineWidth)
	}

	n := len(breaks)
	dist := make([]float64, n)
	back := make([]int, n)
	flaggedAt := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		back[i] = -1
	}
	dist[0] = 0

	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			if math.IsInf(dist[i], 1) {
				continue
			}
			natural, stretch, shrink := measureSpan(items, breaks[i], breaks[j])
			r, feasible := adjustmentRatio(natural, stretch, shrink, lineWidth)
			if !feasible {
				continue
			}
			cost := r * r
			if breaks[j] >= 0 && items[breaks[j]].Kind == Penalty {
				cost += float64(items[breaks[j]].Cost)
				if i > 0 && flaggedAt[i] && items[breaks[j]].Flagged {
					cost += hyphenPairPenalty
				}
			}
			total := dist[i] + cost
			if total < dist[j] {
				dist[j] = total
				back[j] = i
				flaggedAt[j] = breaks[j] >= 0 && items[breaks[j]].Kind == Penalty && items[breaks[j]].Flagged
			}
		}
	}

	last := n - 1
	if math.IsInf(dist[last], 1) {
		return Greedy(items, lineWidth)
	}

	var order []int
	for k := last; k > 0; k = back[k] {
		order = append(order, k)
		if back[k] < 0 && k != 0 {
			break
		}
	}
	// reverse order to ascending breakpoint index
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	var lines []Line
	start := 0
	for _, k := range order {
		end := breaks[k]
		line := makeLine(items, start, end, lineWidth, sumWidth(items, start, end+1))
		lines = append(lines, line)
		start = end + 1
	}
	return lines
}

// measureSpan returns the natural/stretch/shrink totals for items
// strictly between breakpoints fromBreak (exclusive) and toBreak
// (inclusive of a trailing penalty's own width, exclusive of trailing
// glue, mirroring makeLine's trimming).
func measureSpan(items []Item, fromBreak, toBreak int) (natural, stretch, shrink float64) {
	start := fromBreak + 1
	end := toBreak
	if end < start {
		end = start - 1
	}
	last := end
	for last > start && last < len(items) && items[last].Kind == Glue {
		last--
	}
	for i := start; i <= last && i >= 0 && i < len(items); i++ {
		it := items[i]
		switch it.Kind {
		case Box:
			natural += it.Width
		case Glue:
			natural += it.Width
			stretch += it.Stretch
			shrink += it.Shrink
		case Penalty:
			if i == end {
				natural += it.Width
			}
		}
	}
	return
}

// adjustmentRatio computes spec §4.3's adjustment ratio and reports
// whether the edge is feasible (ratio >= -1, i.e. not over-shrunk).
func adjustmentRatio(natural, stretch, shrink, target float64) (float64, bool) {
	if natural <= target {
		if stretch == 0 {
			if natural == target {
				return 0, true
			}
			return 0, false
		}
		r := (target - natural) / stretch
		return r, true
	}
	if shrink == 0 {
		return 0, false
	}
	r := (target - natural) / shrink
	if r < -1 {
		return r, false
	}
	return r, true
}
