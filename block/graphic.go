package block

import (
	"github.com/wudi/foliate/area"
	"github.com/wudi/foliate/imageinfo"
	"github.com/wudi/foliate/source"
)

// LayoutGraphic implements spec §4.4's external-graphic contract:
// resolve display size from content-width/content-height, scaling, and
// intrinsic size at the effective DPI. Decode failures are handled per
// the configured image error policy (spec §7): throw (propagated as
// Overflow, the caller treats a fatal image error as "could not lay out
// this content"), placeholder (substitute 1x1 and continue), or skip
// (emit nothing).
func LayoutGraphic(ctx *Context, node *source.Node, region area.Rect) Result {
	props := ctx.Resolved[node]
	src, _ := node.Prop("src")

	info, err := probeImage(ctx, src)
	if err != nil {
		switch ctx.ImageErrorPolicy {
		case imageinfo.PolicySkip:
			return Result{Outcome: Placed}
		case imageinfo.PolicyPlaceholder:
			info = imageinfo.Placeholder
		default:
			if ctx.Diag != nil {
				ctx.Diag.Warn("image-decode-error", err.Error(), node.ID)
			}
			return Result{Outcome: Overflow}
		}
	}

	contentWidth := props.Length("content-width", 0)
	contentHeight := props.Length("content-height", 0)
	uniform := props.Keyword("scaling", "uniform") == "uniform"
	dpi := ctx.DefaultImageDPI

	w, h := imageinfo.DisplaySize(info, contentWidth, contentHeight, dpi, uniform)
	if w > region.Width {
		w = region.Width
	}

	img := &area.Area{
		Kind:      area.KindImage,
		ID:        node.ID,
		Rect:      area.Rect{X: 0, Y: 0, Width: w, Height: h},
		ImagePath: src,
	}
	area.Translate(img, region.X, region.Y)
	if h > region.Height {
		// An image is never split mid-content; one that doesn't fit the
		// remaining height moves whole to a fresh page.
		return Result{Outcome: MoveToNextPage}
	}
	return Result{Outcome: Placed, Areas: []*area.Area{img}, HeightUsed: h}
}

func probeImage(ctx *Context, src string) (imageinfo.Info, error) {
	if ctx.Images == nil || src == "" {
		return imageinfo.Info{}, errNoImageData
	}
	return ctx.Images.Probe([]byte(src))
}

var errNoImageData = errNoData{}

type errNoData struct{}

func (errNoData) Error() string { return "no image data available" }
