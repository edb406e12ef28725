package prop

// Inherited lists the properties that copy down from parent to child when
// not specified on the child itself (spec §3). Non-inherited properties use
// the spec default instead.
var Inherited = map[string]bool{
	"font-family":      true,
	"font-size":        true,
	"font-weight":      true,
	"font-style":       true,
	"color":            true,
	"text-align":       true,
	"text-align-last":  true,
	"line-height":      true,
	"direction":        true,
	"hyphenate":        true,
	"hyphenation-language": true,
	"widows":           true,
	"orphans":          true,
	"white-space-collapse": true,
	"wrap-option":      true,
}

// defaultOf returns the spec default Value for a recognized property key.
// Keys not listed here have no default: Resolve leaves them out of the Map,
// and the Map accessors then return the caller's fallback.
func defaultOf(key string) (Value, bool) {
	switch key {
	case "font-family":
		return Str("Helvetica"), true
	case "font-size":
		return Len(10), true
	case "font-weight":
		return Kw("normal"), true
	case "font-style":
		return Kw("normal"), true
	case "color":
		return Col(0, 0, 0), true
	case "background-color":
		return Kw("transparent"), true
	case "text-align":
		return Kw("start"), true
	case "text-align-last":
		return Kw("relative"), true
	case "line-height":
		return Len(1.2), true // multiplier; resolve.go treats line-height specially
	case "direction":
		return Kw("ltr"), true
	case "hyphenate":
		return Kw("false"), true
	case "hyphenation-language":
		return Str(""), true
	case "widows":
		return IntV(2), true
	case "orphans":
		return IntV(2), true
	case "white-space-collapse":
		return Kw("true"), true
	case "wrap-option":
		return Kw("wrap"), true
	case "margin-top", "margin-bottom", "margin-left", "margin-right",
		"padding-top", "padding-bottom", "padding-left", "padding-right",
		"border-top-width", "border-bottom-width", "border-left-width", "border-right-width",
		"space-before", "space-after", "text-indent",
		"start-indent", "end-indent":
		return Len(0), true
	case "border-top-color", "border-bottom-color", "border-left-color", "border-right-color":
		return Col(0, 0, 0), true
	case "border-top-style", "border-bottom-style", "border-left-style", "border-right-style":
		return Kw("none"), true
	case "width", "height":
		return Kw("auto"), true
	case "break-before", "break-after":
		return Kw("auto"), true
	case "keep-together", "keep-with-next", "keep-with-previous":
		return Kw("auto"), true
	case "border-collapse":
		return Kw("separate"), true
	case "border-spacing":
		return Len(0), true
	case "position":
		return Kw("static"), true
	case "z-index":
		return IntV(0), true
	case "scaling":
		return Kw("uniform"), true
	case "reference-orientation":
		return IntV(0), true
	default:
		return Value{}, false
	}
}
