package prop

import (
	"strconv"
	"strings"

	"github.com/wudi/foliate/diag"
	"github.com/wudi/foliate/source"
)

// keywordEnums lists, for properties whose resolved value must be one of a
// closed set (spec §4.1 invariant), the allowed keywords. A specified value
// outside the set is a value-domain error: warn and substitute the default
// (spec §7).
var keywordEnums = map[string][]string{
	"text-align":      {"start", "end", "center", "justify"},
	"text-align-last": {"start", "end", "center", "justify", "relative"},
	"direction":       {"ltr", "rtl"},
	"font-weight":     {"normal", "bold"},
	"font-style":      {"normal", "italic", "oblique"},
	"hyphenate":       {"true", "false"},
	"break-before":    {"auto", "page", "always", "odd-page", "even-page", "column"},
	"break-after":     {"auto", "page", "always", "odd-page", "even-page", "column"},
	"border-collapse": {"separate", "collapse"},
	"position":        {"static", "relative", "absolute", "fixed"},
	"scaling":         {"uniform", "non-uniform"},
	"white-space-collapse": {"true", "false"},
	"wrap-option":     {"wrap", "no-wrap"},
}

// Context carries the information Resolve needs to turn a `%`/`em` length
// into points: the containing block's inline-progression-dimension (for
// margin/indent/width percentages) and the region's width/height (for
// width/height percentages). Each is used as given: a caller that leaves
// ContainingHeight at zero gets zero for every height percentage.
type Context struct {
	ContainingWidth  float64
	ContainingHeight float64
}

// Resolve computes the resolved property Map for node given its parent's
// already-resolved Map (spec §4.1 `resolve(node, inherited)`). It never
// mutates inherited; the returned Map is node's own, safe to hand to
// children as their `inherited` argument.
func Resolve(node *source.Node, inherited Map, ctx Context, sink *diag.Sink) Map {
	out := make(Map, len(inherited)+8)

	parentFontSize := 10.0
	if inherited != nil {
		parentFontSize = inherited.Length("font-size", 10)
	}

	loc := node.ID
	if loc == "" {
		loc = node.Kind.String()
	}

	fontSize := resolveFontSize(node, parentFontSize, sink, loc)
	out["font-size"] = Len(fontSize)

	keys := allKnownKeys()
	for _, key := range keys {
		if key == "font-size" {
			continue
		}
		raw, specified := node.Prop(key)
		if !specified {
			if Inherited[key] {
				if v, ok := inherited[key]; ok {
					out[key] = v
					continue
				}
			}
			if v, ok := defaultOf(key); ok {
				if key == "line-height" {
					v = Len(v.Length * fontSize)
				}
				out[key] = v
			}
			continue
		}

		v, ok := resolveOne(key, raw, fontSize, ctx.ContainingWidth, ctx.ContainingHeight)
		if !ok {
			sink.Warn("value-domain-error", "unrecognized value "+strconv.Quote(raw)+" for "+key, loc)
			if Inherited[key] {
				if iv, iok := inherited[key]; iok {
					out[key] = iv
					continue
				}
			}
			if dv, dok := defaultOf(key); dok {
				if key == "line-height" {
					dv = Len(dv.Length * fontSize)
				}
				out[key] = dv
			}
			continue
		}
		out[key] = v
	}
	return out
}

func resolveFontSize(node *source.Node, parentFontSize float64, sink *diag.Sink, loc string) float64 {
	raw, specified := node.Prop("font-size")
	if !specified {
		return parentFontSize
	}
	pt, ok := ParseLength(raw, parentFontSize, parentFontSize)
	if !ok || pt <= 0 {
		sink.Warn("value-domain-error", "unrecognized font-size "+strconv.Quote(raw), loc)
		return parentFontSize
	}
	return pt
}

func resolveOne(key, raw string, fontSize, containingWidth, containingHeight float64) (Value, bool) {
	raw = strings.TrimSpace(raw)
	switch key {
	case "color", "background-color",
		"border-top-color", "border-bottom-color", "border-left-color", "border-right-color":
		c, ok := ParseColor(raw)
		if !ok {
			return Value{}, false
		}
		return Value{Kind: KindColor, Color: c}, true

	case "widows", "orphans", "z-index", "reference-orientation":
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Value{}, false
		}
		return IntV(n), true

	case "line-height":
		return resolveLineHeight(raw, fontSize)

	case "width":
		if raw == "auto" {
			return Kw("auto"), true
		}
		pt, ok := ParseLength(raw, fontSize, containingWidth)
		if !ok {
			return Value{}, false
		}
		return Len(pt), true

	case "height":
		if raw == "auto" {
			return Kw("auto"), true
		}
		pt, ok := ParseLength(raw, fontSize, containingHeight)
		if !ok {
			return Value{}, false
		}
		return Len(pt), true

	case "keep-together", "keep-with-next", "keep-with-previous":
		if raw == "auto" || raw == "always" {
			return Kw(raw), true
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 999 {
			return Value{}, false
		}
		return IntV(n), true

	case "font-family":
		return Str(raw), true

	case "hyphenation-language":
		return Str(raw), true

	case "border-spacing":
		pt, ok := ParseLength(raw, fontSize, containingWidth)
		if !ok {
			return Value{}, false
		}
		return Len(pt), true
	}

	if allowed, isEnum := keywordEnums[key]; isEnum {
		low := strings.ToLower(raw)
		for _, a := range allowed {
			if a == low {
				return Kw(low), true
			}
		}
		return Value{}, false
	}

	// Generic length-valued property.
	if pt, ok := ParseLength(raw, fontSize, containingWidth); ok {
		return Len(pt), true
	}
	return Value{}, false
}

func resolveLineHeight(raw string, fontSize float64) (Value, bool) {
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return Len(n * fontSize), true
	}
	pt, ok := ParseLength(raw, fontSize, fontSize)
	if !ok {
		return Value{}, false
	}
	return Len(pt), true
}

var knownKeysOnce []string

func allKnownKeys() []string {
	if knownKeysOnce != nil {
		return knownKeysOnce
	}
	seen := map[string]bool{}
	var keys []string
	add := func(k string) {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for k := range Inherited {
		add(k)
	}
	for _, k := range []string{
		"margin-top", "margin-bottom", "margin-left", "margin-right",
		"padding-top", "padding-bottom", "padding-left", "padding-right",
		"border-top-width", "border-bottom-width", "border-left-width", "border-right-width",
		"border-top-color", "border-bottom-color", "border-left-color", "border-right-color",
		"border-top-style", "border-bottom-style", "border-left-style", "border-right-style",
		"background-color",
		"width", "height",
		"break-before", "break-after",
		"keep-together", "keep-with-next", "keep-with-previous",
		"space-before", "space-after", "text-indent",
		"start-indent", "end-indent",
		"border-collapse", "border-spacing",
		"position", "z-index",
		"scaling", "reference-orientation",
	} {
		add(k)
	}
	knownKeysOnce = keys
	return keys
}
