package linebreak

import "testing"

// buildParagraph turns a slice of words into a box/glue item stream using
// a fixed-width stub font (10pt per character, 5pt spaces), mirroring how
// the block layouter feeds the line breaker in spec §4.3.
func buildParagraph(words []string) []Item {
	var items []Item
	for i, w := range words {
		items = append(items, NewBox(float64(len(w))*10, w))
		if i < len(words)-1 {
			items = append(items, NewGlue(5, 2.5, 1.5))
		}
	}
	items = append(items, NewPenalty(0, MandatoryBreak, false))
	return items
}

func TestGreedy_NoLineExceedsWidth(t *testing.T) {
	words := []string{"The", "quick", "brown", "fox", "jumps", "over", "the", "lazy", "dog"}
	items := buildParagraph(words)
	lines := Greedy(items, 100)
	if len(lines) < 2 {
		t.Fatalf("expected multiple lines for narrow column, got %d", len(lines))
	}
	for i, l := range lines {
		if l.NaturalWidth > 100+0.01 {
			t.Errorf("line %d width %v exceeds target 100", i, l.NaturalWidth)
		}
	}
}

func TestGreedy_SingleWideItemOverflowsAlone(t *testing.T) {
	items := []Item{
		NewBox(500, "supercalifragilisticexpialidocious"),
		NewGlue(5, 2.5, 1.5),
		NewBox(20, "ok"),
		NewPenalty(0, MandatoryBreak, false),
	}
	lines := Greedy(items, 100)
	if len(lines) == 0 {
		t.Fatal("expected at least one line")
	}
	if lines[0].NaturalWidth < 500 {
		t.Errorf("expected the oversized box to be emitted on its own overflowing line")
	}
}

func TestKnuthPlass_TotalBadnessNotWorseThanGreedy(t *testing.T) {
	words := []string{"The", "quick", "brown", "fox", "jumps", "over", "the", "lazy", "dog", "again", "and", "again"}
	items := buildParagraph(words)

	greedyLines := Greedy(items, 150)
	kpLines := KnuthPlass(items, 150)

	greedyBadness := totalBadness(greedyLines)
	kpBadness := totalBadness(kpLines)

	if kpBadness > greedyBadness+1e-6 {
		t.Errorf("Knuth-Plass badness %v should not exceed greedy badness %v", kpBadness, greedyBadness)
	}
}

func totalBadness(lines []Line) float64 {
	var sum float64
	for _, l := range lines {
		d := l.TargetWidth - l.NaturalWidth
		sum += d * d
	}
	return sum
}

func TestJustify_ComputesNonNegativeSpacingForFittingText(t *testing.T) {
	words := []string{"one", "two", "three"}
	items := buildParagraph(words)
	lines := Greedy(items, 300)
	if len(lines) != 1 {
		t.Fatalf("expected single line, got %d", len(lines))
	}
	justified := Justify(lines[0], AlignJustify)
	if justified.WordSpacingAdjustment < 0 {
		t.Errorf("expected non-negative word spacing for under-filled short line, got %v", justified.WordSpacingAdjustment)
	}
}
