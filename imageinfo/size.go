package imageinfo

// ErrorPolicy is the configured behavior when an image fails to decode
// (spec §7: "throw | placeholder | skip").
type ErrorPolicy int

const (
	PolicyThrow ErrorPolicy = iota
	PolicyPlaceholder
	PolicySkip
)

// Placeholder is the 1x1 substitute image used when PolicyPlaceholder
// is configured and the real image cannot be decoded (spec §7).
var Placeholder = Info{Format: "placeholder", WidthPx: 1, HeightPx: 1}

// DisplaySize resolves an external-graphic's rendered size in points
// given explicit content-width/content-height (0 meaning unset), the
// scaling mode, the image's intrinsic pixel size, and the effective DPI
// (spec §4.4).
func DisplaySize(info Info, contentWidth, contentHeight, defaultDPI float64, uniform bool) (width, height float64) {
	dpiX, dpiY := info.DPIX, info.DPIY
	if dpiX <= 0 {
		dpiX = defaultDPI
	}
	if dpiY <= 0 {
		dpiY = defaultDPI
	}
	if dpiX <= 0 {
		dpiX = 96
	}
	if dpiY <= 0 {
		dpiY = 96
	}

	intrinsicW := float64(info.WidthPx) * 72 / dpiX
	intrinsicH := float64(info.HeightPx) * 72 / dpiY

	switch {
	case contentWidth > 0 && contentHeight > 0:
		if uniform {
			return scaleUniform(intrinsicW, intrinsicH, contentWidth, contentHeight)
		}
		return contentWidth, contentHeight
	case contentWidth > 0:
		if intrinsicW == 0 {
			return contentWidth, intrinsicH
		}
		return contentWidth, intrinsicH * (contentWidth / intrinsicW)
	case contentHeight > 0:
		if intrinsicH == 0 {
			return intrinsicW, contentHeight
		}
		return intrinsicW * (contentHeight / intrinsicH), contentHeight
	default:
		return intrinsicW, intrinsicH
	}
}

// scaleUniform fits intrinsic dimensions within the content box while
// preserving aspect ratio ("uniform" scaling, spec §4.4).
func scaleUniform(intrinsicW, intrinsicH, boxW, boxH float64) (float64, float64) {
	if intrinsicW == 0 || intrinsicH == 0 {
		return boxW, boxH
	}
	scale := boxW / intrinsicW
	if h := intrinsicH * scale; h > boxH {
		scale = boxH / intrinsicH
	}
	return intrinsicW * scale, intrinsicH * scale
}
