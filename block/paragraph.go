package block

import (
	"strings"
	"unicode"

	"github.com/wudi/foliate/area"
	"github.com/wudi/foliate/linebreak"
	"github.com/wudi/foliate/prop"
	"github.com/wudi/foliate/source"
	"github.com/wudi/foliate/text"
)

// pageRefMarkerBase is the first private-use-area rune used to stand in
// for an fo:page-number or fo:page-number-citation within the flattened
// inline text, so the existing word/whitespace tokenizer can treat a
// forward page reference exactly like a run of text (spec §3.4
// "Identity and references"; §4.3 tokenization).
const pageRefMarkerBase rune = 0xE000

// collectMarkedText flattens an inline run (a block's character/inline
// children) into one string, substituting a private-use-area marker
// rune for every page-number / page-number-citation node it encounters.
// refs maps each marker rune back to the id it should resolve against
// (or area.CurrentPageRefID for a plain page-number). Nested block-level
// children are never visited; the caller has already split those off.
func collectMarkedText(n *source.Node) (string, map[rune]string) {
	refs := make(map[rune]string)
	next := rune(pageRefMarkerBase)
	var b strings.Builder
	var walk func(*source.Node)
	walk = func(node *source.Node) {
		for _, c := range node.Children {
			switch c.Kind {
			case source.KindCharacter:
				b.WriteString(c.Text)
			case source.KindPageNumberCitation:
				refs[next] = c.RefID
				b.WriteRune(next)
				next++
			case source.KindPageNumber:
				refs[next] = area.CurrentPageRefID
				b.WriteRune(next)
				next++
			default:
				walk(c)
			}
		}
	}
	walk(n)
	return b.String(), refs
}

// buildItemStream tokenizes node's flattened inline content into box/
// glue/penalty items (spec §4.3: "the caller feeds inline content as
// words, spaces, and soft-hyphen candidates produced by the Text
// Shaper"). Runs of whitespace collapse to one glue item; words become
// boxes, optionally split at hyphenation points into box/penalty/box
// chains; a page-number or page-number-citation becomes a single
// PageRefID-tagged box the Page Breaker's finalization pass patches
// once real page numbers are known.
func buildItemStream(ctx *Context, node *source.Node, props prop.Map) []linebreak.Item {
	text_, refs := collectMarkedText(node)

	fontKey := fontKeyFromProps(props)
	size := props.Length("font-size", 10)
	spaceWidth, _ := ctx.Shaper.Measure(" ", fontKey, size)
	if spaceWidth == 0 {
		spaceWidth = size / 3
	}
	refWidth, _ := ctx.Shaper.Measure("00", fontKey, size)

	var items []linebreak.Item
	words := splitWords(text_)
	for i, w := range words {
		items = append(items, wordToItems(ctx, w, fontKey, size, refs, refWidth)...)
		if i < len(words)-1 {
			items = append(items, linebreak.NewGlue(
				spaceWidth,
				spaceWidth*linebreak.DefaultSpaceStretchRatio,
				spaceWidth*linebreak.DefaultSpaceShrinkRatio,
			))
		}
	}
	items = append(items, linebreak.NewPenalty(0, linebreak.MandatoryBreak, false))
	return items
}

// wordToItems builds the item(s) for one whitespace-delimited token. A
// token that is exactly one page-reference marker becomes a single
// PageRefID box; a marker embedded within surrounding text (no
// whitespace before/after it, e.g. "p.<marker>") splits into plain-text
// and ref boxes with no hyphenation attempted across the split, a
// deliberate simplification since that combination is rare in practice.
func wordToItems(ctx *Context, word string, fontKey text.FontKey, size float64, refs map[rune]string, refWidth float64) []linebreak.Item {
	runes := []rune(word)
	if len(runes) == 1 {
		if refID, ok := refs[runes[0]]; ok {
			return []linebreak.Item{linebreak.NewPageRefBox(refWidth, refID)}
		}
	}

	hasMarker := false
	for _, r := range runes {
		if _, ok := refs[r]; ok {
			hasMarker = true
			break
		}
	}
	if hasMarker {
		var items []linebreak.Item
		var plain []rune
		flush := func() {
			if len(plain) == 0 {
				return
			}
			seg := string(plain)
			w, _ := ctx.Shaper.Measure(seg, fontKey, size)
			items = append(items, linebreak.NewBox(w, seg))
			plain = nil
		}
		for _, r := range runes {
			if refID, ok := refs[r]; ok {
				flush()
				items = append(items, linebreak.NewPageRefBox(refWidth, refID))
				continue
			}
			plain = append(plain, r)
		}
		flush()
		return items
	}

	if !ctx.EnableHyphenation {
		w, _ := ctx.Shaper.Measure(word, fontKey, size)
		return []linebreak.Item{linebreak.NewBox(w, word)}
	}

	breaks := ctx.Shaper.Hyphenate(word, ctx.HyphenationLanguage, ctx.MinLeftChars, ctx.MinRightChars)
	if len(breaks) == 0 {
		w, _ := ctx.Shaper.Measure(word, fontKey, size)
		return []linebreak.Item{linebreak.NewBox(w, word)}
	}

	hyphenW, _ := ctx.Shaper.Measure(string(ctx.HyphenationChar), fontKey, size)
	var items []linebreak.Item
	prev := 0
	for _, pos := range breaks {
		segment := string(runes[prev:pos])
		w, _ := ctx.Shaper.Measure(segment, fontKey, size)
		items = append(items, linebreak.NewBox(w, segment))
		items = append(items, linebreak.NewPenalty(hyphenW, 50, true))
		prev = pos
	}
	tail := string(runes[prev:])
	w, _ := ctx.Shaper.Measure(tail, fontKey, size)
	items = append(items, linebreak.NewBox(w, tail))
	return items
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, unicode.IsSpace)
}

func fontKeyFromProps(props prop.Map) text.FontKey {
	family := props.Str("font-family", "Helvetica")
	weight := props.Keyword("font-weight", "normal")
	style := props.Keyword("font-style", "normal")
	return text.FontKey{
		Family: family,
		Bold:   weight == "bold",
		Italic: style == "italic" || style == "oblique",
	}
}

// layoutLines runs the configured line-breaking algorithm over items and
// converts each resulting Line into a positioned area.KindLine area
// stacked at line-height, honoring text-indent on the first line (spec
// §4.4).
func layoutLines(ctx *Context, items []linebreak.Item, props prop.Map, contentWidth, availableHeight float64) Result {
	return layoutLinesFrom(ctx, items, props, contentWidth, availableHeight, 0)
}

// layoutLinesFrom resumes layoutLines from line index startLine (0 for
// a fresh layout): lines before startLine are already placed on an
// earlier page and are not re-emitted here, but the full item stream is
// re-broken every call since breaking is cheap and the breaker keeps no
// resumable state of its own.
func layoutLinesFrom(ctx *Context, items []linebreak.Item, props prop.Map, contentWidth, availableHeight float64, startLine int) Result {
	lineHeight := props.Length("line-height", props.Length("font-size", 10)*1.2)
	textIndent := props.Length("text-indent", 0)
	align := alignFromProps(props)
	lastAlign := align
	if kw := props.Keyword("text-align-last", "relative"); kw != "relative" {
		lastAlign = alignFromProps(prop.Map{"text-align": prop.Kw(kw)})
	} else if align == linebreak.AlignJustify {
		lastAlign = linebreak.AlignStart
	}

	var lines []linebreak.Line
	firstLineWidth := contentWidth - textIndent
	if firstLineWidth <= 0 {
		firstLineWidth = contentWidth
		textIndent = 0
	}

	if textIndent == 0 {
		lines = breakLines(ctx, items, contentWidth)
	} else {
		// The breaker takes one width for every line, so all lines,
		// the first included, are broken at the full content width.
		// The indent is applied only as an x offset on line 1, which
		// can therefore extend past the content width by the indent.
		lines = breakLines(ctx, items, contentWidth)
	}
	if startLine > len(lines) {
		startLine = len(lines)
	}

	var areas []*area.Area
	y := 0.0
	usedLines := startLine
	for i := startLine; i < len(lines); i++ {
		ln := lines[i]
		if y+lineHeight > availableHeight+0.01 {
			break
		}
		lineAlign := align
		if i == len(lines)-1 {
			lineAlign = lastAlign
		}
		ln = linebreak.Justify(ln, lineAlign)
		x := linebreak.OffsetX(ln, contentWidth, lineAlign)
		if i == 0 {
			x += textIndent
		}
		lineArea := &area.Area{
			Kind:     area.KindLine,
			Rect:     area.Rect{X: x, Y: y, Width: ln.NaturalWidth, Height: lineHeight},
			Text:     renderLineText(ln),
			Children: buildPageRefChildren(ln, x, y, lineHeight),
		}
		areas = append(areas, lineArea)
		y += lineHeight
		usedLines++
	}

	if usedLines == len(lines) {
		return Result{Outcome: Placed, Areas: areas, HeightUsed: y}
	}
	if usedLines == startLine {
		// Not even the first remaining line fits in the height offered:
		// nothing useful was placed, so the whole remainder moves whole
		// to a fresh page rather than reporting a zero-progress split
		// (spec §4.5 "if no legal split exists, close the page and
		// retry").
		return Result{Outcome: MoveToNextPage, Areas: nil, HeightUsed: 0}
	}
	return Result{Outcome: SplitPoint, Areas: areas, HeightUsed: y, SplitIndex: usedLines, Resume: &Cursor{Index: usedLines}}
}

func breakLines(ctx *Context, items []linebreak.Item, width float64) []linebreak.Line {
	if ctx.LineBreaking == Optimal {
		return linebreak.KnuthPlass(items, width)
	}
	return linebreak.Greedy(items, width)
}

// buildPageRefChildren walks a justified line's surviving items and
// emits one area.KindInline child per page-reference box, positioned by
// accumulating item widths left to right from the line's own origin
// (lineX, lineY). Finalize (package page) later patches each child's
// Text once the real page number is known; renderLineText leaves the
// corresponding span blank in the line's own flat Text so the two never
// show duplicate content.
func buildPageRefChildren(ln linebreak.Line, lineX, lineY, lineHeight float64) []*area.Area {
	var children []*area.Area
	cursor := lineX
	for i, it := range ln.Items {
		switch it.Kind {
		case linebreak.Box:
			if it.PageRefID != "" {
				children = append(children, &area.Area{
					Kind:            area.KindInline,
					Rect:            area.Rect{X: cursor, Y: lineY, Width: it.Width, Height: lineHeight},
					PageNumberRefID: it.PageRefID,
				})
			}
			cursor += it.Width
		case linebreak.Glue:
			cursor += it.Width + ln.WordSpacingAdjustment
		case linebreak.Penalty:
			if it.Flagged && i == len(ln.Items)-1 {
				cursor += it.Width
			}
		}
	}
	return children
}

func renderLineText(ln linebreak.Line) string {
	var b strings.Builder
	for i, it := range ln.Items {
		if it.Kind == linebreak.Box {
			b.WriteString(it.Content)
		}
		if it.Kind == linebreak.Glue && i != len(ln.Items)-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func alignFromProps(props prop.Map) linebreak.Align {
	switch props.Keyword("text-align", "start") {
	case "end":
		return linebreak.AlignEnd
	case "center":
		return linebreak.AlignCenter
	case "justify":
		return linebreak.AlignJustify
	default:
		return linebreak.AlignStart
	}
}
