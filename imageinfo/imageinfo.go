// Package imageinfo implements the Image Info collaborator interface
// spec §6 names: probing an external-graphic's bytes for format and
// intrinsic size, without decoding pixel data (pixel decoding belongs to
// the excluded PDF renderer, spec §1).
package imageinfo

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Info is the result of probing an image (spec §6: format, width_px,
// height_px, dpi_x, dpi_y).
type Info struct {
	Format   string
	WidthPx  int
	HeightPx int
	DPIX     float64
	DPIY     float64
}

// Provider is the Image Info collaborator interface.
type Provider interface {
	Probe(data []byte) (Info, error)
}

// DefaultProvider probes image bounds via the standard image package
// plus golang.org/x/image's bmp/tiff decoders, registered for their side
// effect of extending image.DecodeConfig's format recognition. DPI is
// not recovered from any of these formats reliably (JFIF/EXIF density
// tags aren't read by the stdlib decoders), so DPIX/DPIY are always
// reported as zero; callers fall back to the configured default_image_dpi
// (spec §6).
type DefaultProvider struct{}

func NewDefaultProvider() *DefaultProvider { return &DefaultProvider{} }

func (p *DefaultProvider) Probe(data []byte) (Info, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("probe image: %w", err)
	}
	return Info{
		Format:   format,
		WidthPx:  cfg.Width,
		HeightPx: cfg.Height,
	}, nil
}
