package block

import (
	"github.com/wudi/foliate/diag"
	"github.com/wudi/foliate/imageinfo"
	"github.com/wudi/foliate/prop"
	"github.com/wudi/foliate/source"
	"github.com/wudi/foliate/text"
)

// LineBreakingAlgorithm selects spec §4.3's greedy or optimal breaker.
type LineBreakingAlgorithm int

const (
	Greedy LineBreakingAlgorithm = iota
	Optimal
)

// Context is the explicit collaborator bundle threaded through every
// layout call (design note §9: "express as an explicit context object
// threaded through layout calls; avoid process-wide mutable state").
// A Context is built once per layout run and never mutated by layout
// functions except for its Shaper's measurement cache (an unbounded map).
type Context struct {
	Shaper *text.Shaper
	Images imageinfo.Provider
	Diag   *diag.Sink

	// Resolved holds every node's fully-resolved property map, built
	// ahead of layout by a complete prop.Resolve traversal (spec §3
	// invariant: "every block has a fully-resolved property map before
	// layout consumes it"). Layout functions never call prop.Resolve
	// themselves.
	Resolved map[*source.Node]prop.Map

	LineBreaking        LineBreakingAlgorithm
	EnableHyphenation   bool
	HyphenationLanguage string
	MinLeftChars        int
	MinRightChars       int
	DefaultImageDPI     float64
	HyphenationChar     rune
	ImageErrorPolicy    imageinfo.ErrorPolicy
}

// NewContext builds a Context with spec §6's documented configuration
// defaults.
func NewContext(shaper *text.Shaper, images imageinfo.Provider, sink *diag.Sink, resolved map[*source.Node]prop.Map) *Context {
	return &Context{
		Shaper:              shaper,
		Images:              images,
		Diag:                sink,
		Resolved:            resolved,
		LineBreaking:        Greedy,
		EnableHyphenation:   false,
		HyphenationLanguage: "en",
		MinLeftChars:        2,
		MinRightChars:       3,
		DefaultImageDPI:     96,
		HyphenationChar:     '-',
		ImageErrorPolicy:    imageinfo.PolicyPlaceholder,
	}
}
