// Package prop implements the Property Resolver: it turns the raw, specified
// property strings on a source.Node into a fully resolved Map where every
// value is a concrete point length, a 0..1 color triple, a string, or a
// keyword from a closed enumeration (spec §4.1).
package prop

// Kind tags the concrete shape of a resolved Value.
type Kind int

const (
	KindLength Kind = iota
	KindColor
	KindKeyword
	KindString
	KindInt
)

// Color is an RGB triple with components in 0..1.
type Color struct {
	R, G, B float64
}

// Value is the resolved form of a single property: always one concrete
// shape, never a raw source string (spec §4.1 invariant).
type Value struct {
	Kind    Kind
	Length  float64 // points, when Kind == KindLength
	Color   Color   // when Kind == KindColor
	Keyword string  // when Kind == KindKeyword
	Str     string  // when Kind == KindString
	Int     int     // when Kind == KindInt
}

func Len(pt float64) Value    { return Value{Kind: KindLength, Length: pt} }
func Kw(k string) Value       { return Value{Kind: KindKeyword, Keyword: k} }
func Str(s string) Value      { return Value{Kind: KindString, Str: s} }
func IntV(i int) Value        { return Value{Kind: KindInt, Int: i} }
func Col(r, g, b float64) Value {
	return Value{Kind: KindColor, Color: Color{R: r, G: g, B: b}}
}

// Map is the resolved property table for one source.Node. It is built once
// by Resolve and thereafter treated as immutable (spec §3 invariant).
type Map map[string]Value

// Length returns the resolved value of key as points, or def if key is
// absent or not a length.
func (m Map) Length(key string, def float64) float64 {
	v, ok := m[key]
	if !ok || v.Kind != KindLength {
		return def
	}
	return v.Length
}

// Keyword returns the resolved keyword of key, or def if absent/mismatched.
func (m Map) Keyword(key string, def string) string {
	v, ok := m[key]
	if !ok || v.Kind != KindKeyword {
		return def
	}
	return v.Keyword
}

// ColorV returns the resolved color of key, or def if absent/mismatched.
func (m Map) ColorV(key string, def Color) Color {
	v, ok := m[key]
	if !ok || v.Kind != KindColor {
		return def
	}
	return v.Color
}

// Str returns the resolved string of key, or def if absent/mismatched.
func (m Map) Str(key string, def string) string {
	v, ok := m[key]
	if !ok {
		return def
	}
	if v.Kind == KindString {
		return v.Str
	}
	if v.Kind == KindKeyword {
		return v.Keyword
	}
	return def
}

// Int returns the resolved integer of key, or def if absent/mismatched.
func (m Map) Int(key string, def int) int {
	v, ok := m[key]
	if !ok || v.Kind != KindInt {
		return def
	}
	return v.Int
}

// Clone returns a shallow copy safe for a child to extend without mutating
// the parent's map (resolution never holds a live reference to the parent).
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
