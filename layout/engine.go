// Package layout is the top-level orchestration entry point: it wires
// the Property Resolver, Text Shaper, Line Breaker, Block Layouter, and
// Page Breaker into one Run call that turns a source tree into a
// finished Area Tree (spec §2's data-flow diagram).
package layout

import (
	"context"

	"github.com/wudi/foliate/area"
	"github.com/wudi/foliate/block"
	"github.com/wudi/foliate/diag"
	"github.com/wudi/foliate/fonts"
	"github.com/wudi/foliate/imageinfo"
	"github.com/wudi/foliate/observability"
	"github.com/wudi/foliate/page"
	"github.com/wudi/foliate/source"
	"github.com/wudi/foliate/text"
)

// Engine runs one layout configuration against any number of source
// trees. It holds no per-run mutable state itself; each Run call builds
// its own block.Context and diagnostics sink (spec §5: "the text-width
// cache is per-layout-run and not shared across runs").
type Engine struct {
	fonts  fonts.Provider
	images imageinfo.Provider
	logger observability.Logger
	tracer observability.Tracer
	cfg    config
}

// EngineOption configures the Engine itself (collaborators), as opposed
// to Option which configures a single Run.
type EngineOption func(*Engine)

// WithImageProvider overrides the default imageinfo.DefaultProvider.
func WithImageProvider(p imageinfo.Provider) EngineOption {
	return func(e *Engine) { e.images = p }
}

// WithLogger attaches a structured logger (spec §10.1 ambient stack).
func WithLogger(logger observability.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// WithTracer attaches a tracer for span-level timing (spec §10.1).
func WithTracer(tracer observability.Tracer) EngineOption {
	return func(e *Engine) { e.tracer = tracer }
}

// NewEngine constructs an Engine over the given font provider (spec §6
// "Font provider" collaborator), applying run-scoped Options as the
// engine's defaults and EngineOptions for its collaborators.
func NewEngine(fontProvider fonts.Provider, engineOpts []EngineOption, runOpts ...Option) *Engine {
	e := &Engine{
		fonts:  fontProvider,
		images: imageinfo.NewDefaultProvider(),
		logger: observability.NopLogger{},
		tracer: observability.NopTracer(),
		cfg:    defaultConfig(),
	}
	for _, opt := range engineOpts {
		opt(e)
	}
	for _, opt := range runOpts {
		opt(&e.cfg)
	}
	return e
}

// Run lays out root (spec §3's source tree) and returns the finished,
// validated Area Tree. root must be a KindRoot node containing exactly
// one layout-master-set and one or more page-sequences (spec §3).
func (e *Engine) Run(root *source.Node, runOpts ...Option) (*area.Tree, error) {
	cfg := e.cfg
	for _, opt := range runOpts {
		opt(&cfg)
	}

	_, span := e.tracer.StartSpan(context.Background(), "layout.run")
	defer span.Finish()

	masters := buildPageMasters(root)
	if len(masters) == 0 {
		return nil, newError(ErrMalformedSource, root.ID, "no simple-page-master found in layout-master-set")
	}

	firstMaster := anyMaster(masters)
	sink := diag.NewSink(e.logger)
	resolved := resolveTree(root, bodyWidth(firstMaster), bodyHeight(firstMaster), sink)

	shaper := text.NewShaper(e.fonts)
	blockCtx := block.NewContext(shaper, e.images, sink, resolved)
	blockCtx.LineBreaking = cfg.lineBreaking
	blockCtx.EnableHyphenation = cfg.enableHyphenation
	blockCtx.HyphenationLanguage = cfg.hyphenationLanguage
	blockCtx.MinLeftChars = cfg.minLeftChars
	blockCtx.MinRightChars = cfg.minRightChars
	blockCtx.DefaultImageDPI = cfg.defaultImageDPI
	blockCtx.ImageErrorPolicy = cfg.imageErrorPolicy

	pageCfg := page.Config{DefaultWidows: cfg.widows, DefaultOrphans: cfg.orphans}

	tree := area.NewTree()
	pageNumber := 1

	for _, seq := range root.Children {
		if seq.Kind != source.KindPageSequence {
			continue
		}
		master, ok := masters[seq.MasterReference]
		if !ok {
			return nil, newError(ErrMalformedSource, seq.ID, "unresolvable page-master reference %q", seq.MasterReference)
		}
		if master.PageWidth <= 0 || master.PageHeight <= 0 {
			return nil, newError(ErrMalformedSource, seq.ID, "page master %q has zero width or height", master.Name)
		}

		var flow *source.Node
		for _, c := range seq.Children {
			if c.Kind == source.KindFlow && c.FlowName == "xsl-region-body" {
				flow = c
			}
		}
		if flow == nil {
			continue
		}

		breaker := page.NewBreaker(blockCtx, pageCfg, master, tree)
		lastPageNumber := breaker.Run(flow, pageNumber)
		pageNumber = lastPageNumber + 1

		attachStaticContent(blockCtx, seq, master, tree)
	}

	page.Finalize(tree)

	if violations := area.Validate(tree); len(violations) > 0 && e.logger != nil {
		for _, v := range violations {
			e.logger.Warn("layout.invariant_violation", observability.String("code", v.Code), observability.String("message", v.Message))
		}
	}

	return tree, nil
}

func anyMaster(masters map[string]*source.SimplePageMaster) *source.SimplePageMaster {
	for _, m := range masters {
		return m
	}
	return nil
}

// attachStaticContent lays out a page-sequence's header/footer
// static-content onto every page this sequence produced (spec §3:
// "Static content: header/footer content tied to a region and repeated
// on every page of a sequence"). It lays out the same static-content
// subtree once per page. fo:retrieve-marker is not resolved: no marker
// state is recorded during page breaking, so every page gets identical
// static content.
func attachStaticContent(ctx *block.Context, seq *source.Node, master *source.SimplePageMaster, tree *area.Tree) {
	var before, after *source.Node
	for _, c := range seq.Children {
		if c.Kind != source.KindStaticContent {
			continue
		}
		switch c.FlowName {
		case "xsl-region-before":
			before = c
		case "xsl-region-after":
			after = c
		}
	}
	if before == nil && after == nil {
		return
	}
	for _, p := range tree.Pages {
		if before != nil && master.RegionBefore != nil {
			region := area.Rect{X: master.MarginLeft, Y: master.MarginTop, Width: bodyWidth(master), Height: master.RegionBefore.Extent}
			res := block.LayoutBlock(ctx, before, region)
			p.Children = append(p.Children, res.Areas...)
		}
		if after != nil && master.RegionAfter != nil {
			y := master.PageHeight - master.MarginBottom - master.RegionAfter.Extent
			region := area.Rect{X: master.MarginLeft, Y: y, Width: bodyWidth(master), Height: master.RegionAfter.Extent}
			res := block.LayoutBlock(ctx, after, region)
			p.Children = append(p.Children, res.Areas...)
		}
	}
}
