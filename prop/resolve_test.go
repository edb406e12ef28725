package prop

import (
	"testing"

	"github.com/wudi/foliate/diag"
	"github.com/wudi/foliate/source"
)

func TestResolve_Inheritance(t *testing.T) {
	root := &source.Node{Kind: source.KindBlock, Props: map[string]string{"font-family": "Times-Roman"}}
	child := &source.Node{Kind: source.KindBlock, Props: map[string]string{"font-family": "Helvetica"}}
	grandchild := &source.Node{Kind: source.KindInline}

	sink := diag.NewSink(nil)
	rootProps := Resolve(root, nil, Context{ContainingWidth: 400}, sink)
	if got := rootProps.Str("font-family", ""); got != "Times-Roman" {
		t.Fatalf("root font-family = %q, want Times-Roman", got)
	}

	childProps := Resolve(child, rootProps, Context{ContainingWidth: 400}, sink)
	if got := childProps.Str("font-family", ""); got != "Helvetica" {
		t.Fatalf("child font-family = %q, want Helvetica", got)
	}

	grandProps := Resolve(grandchild, childProps, Context{ContainingWidth: 400}, sink)
	if got := grandProps.Str("font-family", ""); got != "Helvetica" {
		t.Fatalf("grandchild font-family = %q, want Helvetica (inherited)", got)
	}
}

func TestResolve_NonInheritedUsesDefault(t *testing.T) {
	root := &source.Node{Kind: source.KindBlock, Props: map[string]string{"margin-top": "20pt"}}
	child := &source.Node{Kind: source.KindBlock}

	sink := diag.NewSink(nil)
	rootProps := Resolve(root, nil, Context{ContainingWidth: 400}, sink)
	if got := rootProps.Length("margin-top", -1); got != 20 {
		t.Fatalf("root margin-top = %v, want 20", got)
	}

	childProps := Resolve(child, rootProps, Context{ContainingWidth: 400}, sink)
	if got := childProps.Length("margin-top", -1); got != 0 {
		t.Fatalf("child margin-top = %v, want 0 (not inherited)", got)
	}
}

func TestResolve_PercentAndEm(t *testing.T) {
	root := &source.Node{Kind: source.KindBlock, Props: map[string]string{"font-size": "20pt"}}
	sink := diag.NewSink(nil)
	rootProps := Resolve(root, nil, Context{ContainingWidth: 400}, sink)

	child := &source.Node{Kind: source.KindBlock, Props: map[string]string{
		"start-indent": "50%",
		"text-indent":  "2em",
	}}
	childProps := Resolve(child, rootProps, Context{ContainingWidth: 400}, sink)
	if got := childProps.Length("start-indent", -1); got != 200 {
		t.Fatalf("start-indent = %v, want 200 (50%% of 400)", got)
	}
	if got := childProps.Length("text-indent", -1); got != 40 {
		t.Fatalf("text-indent = %v, want 40 (2em of 20pt)", got)
	}
}

func TestResolve_MalformedValueFallsBackToDefault(t *testing.T) {
	node := &source.Node{Kind: source.KindBlock, Props: map[string]string{"color": "not-a-color"}}
	sink := diag.NewSink(nil)
	props := Resolve(node, nil, Context{ContainingWidth: 400}, sink)

	c := props.ColorV("color", Color{})
	if c != (Color{0, 0, 0}) {
		t.Fatalf("color = %+v, want default black", c)
	}
	if len(sink.Warnings()) == 0 {
		t.Fatal("expected a recoverable warning for the malformed color")
	}
}

func TestParseLength(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"12pt", 12},
		{"1in", 72},
		{"2.54cm", 72},
		{"25.4mm", 72},
		{"1pc", 12},
		{"96px", 72},
		{"10", 10},
	}
	for _, c := range cases {
		got, ok := ParseLength(c.in, 10, 100)
		if !ok {
			t.Errorf("ParseLength(%q) failed to parse", c.in)
			continue
		}
		if diff := got - c.want; diff > 0.001 || diff < -0.001 {
			t.Errorf("ParseLength(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"red", Color{1, 0, 0}},
		{"#fff", Color{1, 1, 1}},
		{"#000000", Color{0, 0, 0}},
		{"rgb(255,0,0)", Color{1, 0, 0}},
	}
	for _, c := range cases {
		got, ok := ParseColor(c.in)
		if !ok {
			t.Errorf("ParseColor(%q) failed to parse", c.in)
			continue
		}
		if got != c.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}
