package layout

import (
	"github.com/wudi/foliate/block"
	"github.com/wudi/foliate/imageinfo"
	"github.com/wudi/foliate/page"
)

// config is the full set of recognized options (spec §6), built up by
// applying Options over a set of defaults before a run starts.
type config struct {
	lineBreaking        block.LineBreakingAlgorithm
	enableHyphenation   bool
	hyphenationLanguage string
	minLeftChars        int
	minRightChars       int
	widows              int
	orphans             int
	defaultImageDPI     float64
	imageErrorPolicy    imageinfo.ErrorPolicy
	limits              ResourceLimits
}

func defaultConfig() config {
	pc := page.DefaultConfig()
	return config{
		lineBreaking:        block.Greedy,
		enableHyphenation:   false,
		hyphenationLanguage: "en",
		minLeftChars:        2,
		minRightChars:       3,
		widows:              pc.DefaultWidows,
		orphans:             pc.DefaultOrphans,
		defaultImageDPI:     96,
		imageErrorPolicy:    imageinfo.PolicyPlaceholder,
		limits:              DefaultResourceLimits(),
	}
}

// Option mutates a layout run's configuration (spec §6's "Configuration
// (recognized options)" list), following the functional-options pattern
// used throughout this codebase's input-adapter layers.
type Option func(*config)

// WithLineBreaking selects greedy or optimal line breaking (spec §4.3).
func WithLineBreaking(algorithm block.LineBreakingAlgorithm) Option {
	return func(c *config) { c.lineBreaking = algorithm }
}

// WithHyphenation enables hyphenation using the given language's
// compiled pattern table and min-left/min-right constraints (spec §4.2).
func WithHyphenation(language string, minLeft, minRight int) Option {
	return func(c *config) {
		c.enableHyphenation = true
		c.hyphenationLanguage = language
		c.minLeftChars = minLeft
		c.minRightChars = minRight
	}
}

// WithWidowsOrphans sets the page-sequence-wide default widow/orphan
// counts (spec §4.5); a block's own resolved widows/orphans properties
// still override these.
func WithWidowsOrphans(widows, orphans int) Option {
	return func(c *config) { c.widows = widows; c.orphans = orphans }
}

// WithDefaultImageDPI sets the DPI used for images lacking DPI metadata
// (spec §4.4, §6).
func WithDefaultImageDPI(dpi float64) Option {
	return func(c *config) { c.defaultImageDPI = dpi }
}

// WithImageErrorPolicy selects the behavior on image decode failure
// (spec §7: throw | placeholder | skip).
func WithImageErrorPolicy(policy imageinfo.ErrorPolicy) Option {
	return func(c *config) { c.imageErrorPolicy = policy }
}

// WithResourceLimits overrides the default resource-access policy (spec
// §6's image/font quota group).
func WithResourceLimits(limits ResourceLimits) Option {
	return func(c *config) { c.limits = limits }
}
