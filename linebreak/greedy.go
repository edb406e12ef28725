package linebreak

// Greedy implements spec §4.3's greedy algorithm: accumulate boxes and
// glue left to right; at each legal break, check whether the accumulated
// natural width fits the line width; if not, break at the last legal
// break seen. Linear in the number of items.
func Greedy(items []Item, lineWidth float64) []Line {
	var lines []Line
	start := 0
	width := 0.0
	lastBreak := -1
	widthAtLastBreak := 0.0

	flush := func(end int, consumedWidth float64, nextStart int) {
		lines = append(lines, makeLine(items, start, end, lineWidth, consumedWidth))
		start = nextStart
		width = 0
		lastBreak = -1
		widthAtLastBreak = 0
	}

	for i := 0; i < len(items); i++ {
		it := items[i]
		if it.Kind == Box || it.Kind == Glue {
			width += it.Width
		}

		if it.Kind == Penalty && it.Cost <= MandatoryBreak {
			if width > lineWidth && lastBreak >= 0 {
				flush(lastBreak, widthAtLastBreak, lastBreak+1)
				width = sumWidth(items, start, i+1)
			}
			flush(i, width, i+1)
			continue
		}

		if !legalBreak(items, i) {
			continue
		}

		candidateWidth := width
		if it.Kind == Penalty {
			candidateWidth += it.Width
		}

		if candidateWidth > lineWidth && lastBreak >= 0 {
			flush(lastBreak, widthAtLastBreak, lastBreak+1)
			// re-scan from the new start up through i so this break
			// position is still considered as a candidate.
			width = sumWidth(items, start, i+1)
			if legalBreak(items, i) {
				lastBreak = i
				widthAtLastBreak = width
			}
			continue
		}

		lastBreak = i
		widthAtLastBreak = candidateWidth
	}

	if start < len(items) {
		lines = append(lines, makeLine(items, start, len(items)-1, lineWidth, width))
	}
	return lines
}

func sumWidth(items []Item, from, to int) float64 {
	w := 0.0
	for i := from; i < to && i < len(items); i++ {
		if items[i].Kind == Box || items[i].Kind == Glue {
			w += items[i].Width
		}
	}
	return w
}

// makeLine builds a Line from items[start:end] inclusive, trimming
// trailing glue (spec §4.3: "Trailing whitespace at a break is
// collapsed") and marking a trailing flagged penalty as a hyphen point.
func makeLine(items []Item, start, end int, targetWidth, naturalWidth float64) Line {
	if end < start {
		end = start
	}
	last := end
	hyphenated := false
	if last >= start && last < len(items) && items[last].Kind == Penalty {
		if items[last].Flagged {
			hyphenated = true
			naturalWidth += items[last].Width
		}
	}
	for last > start && items[last].Kind == Glue {
		naturalWidth -= items[last].Width
		last--
	}
	content := make([]Item, 0, last-start+1)
	for i := start; i <= last && i < len(items); i++ {
		if items[i].Kind == Penalty && i != last {
			continue // unconsumed penalties mid-line contribute nothing
		}
		content = append(content, items[i])
	}
	return Line{
		Items:        content,
		NaturalWidth: naturalWidth,
		TargetWidth:  targetWidth,
		Hyphenated:   hyphenated,
	}
}
