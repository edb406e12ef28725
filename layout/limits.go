package layout

// ResourceLimits holds the resource-access settings of a layout run (spec
// §6's "resource-access policy" configuration group): image size and
// path restrictions, font memory. Engine.Run keeps them in its
// configuration but checks none of them: no run fails or warns because
// an image or font exceeds a limit.
type ResourceLimits struct {
	AllowAbsoluteImagePaths bool
	AllowedImageBasePath    string
	MaxImageSizeBytes       int64
	MaxFontMemory           int64
}

// DefaultResourceLimits returns conservative defaults: no absolute image
// paths, 20MB images, 50MB of font data per run.
func DefaultResourceLimits() ResourceLimits {
	return ResourceLimits{
		AllowAbsoluteImagePaths: false,
		AllowedImageBasePath:    "",
		MaxImageSizeBytes:       20 * 1024 * 1024,
		MaxFontMemory:           50 * 1024 * 1024,
	}
}
