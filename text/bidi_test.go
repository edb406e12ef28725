package text

import "testing"

func TestReorderBidi_PureLTR(t *testing.T) {
	runs, err := ReorderBidi("hello world", LTR)
	if err != nil {
		t.Fatalf("ReorderBidi: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run for pure LTR text, got %d", len(runs))
	}
	if runs[0].Direction != LTR {
		t.Errorf("expected LTR run, got %v", runs[0].Direction)
	}
	if runs[0].EmbeddingLevel != 0 {
		t.Errorf("expected embedding level 0 for base-direction run, got %d", runs[0].EmbeddingLevel)
	}
}

func TestReorderBidi_PureHebrewWithLTRBase(t *testing.T) {
	runs, err := ReorderBidi("שלום", LTR)
	if err != nil {
		t.Fatalf("ReorderBidi: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run for pure Hebrew text, got %d", len(runs))
	}
	if runs[0].Direction != RTL {
		t.Errorf("expected RTL run, got %v", runs[0].Direction)
	}
	if runs[0].EmbeddingLevel != 1 {
		t.Errorf("expected embedding level 1, got %d", runs[0].EmbeddingLevel)
	}
}

func TestReorderBidi_EmptyString(t *testing.T) {
	runs, err := ReorderBidi("", LTR)
	if err != nil {
		t.Fatalf("ReorderBidi: %v", err)
	}
	if runs != nil {
		t.Errorf("expected nil runs for empty text, got %v", runs)
	}
}
