package fonts

import "strings"

// pattern is one Liang hyphenation pattern in the conventional TeX textual
// form: digits between letters give the break "value" at that inter-letter
// position (odd = break allowed, even = forbidden), higher values win when
// patterns overlap. A leading/trailing '.' anchors the pattern to the start
// or end of the (dot-padded) word.
type pattern struct {
	letters string // the pattern with digits stripped out
	values  []int  // len(letters)+1 entries, values[i] is the value before letters[i]
}

func compilePattern(raw string) pattern {
	var letters strings.Builder
	values := []int{0}
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			values[len(values)-1] = int(r - '0')
			continue
		}
		letters.WriteRune(r)
		values = append(values, 0)
	}
	return pattern{letters: letters.String(), values: values}
}

// patternTables holds a representative (not exhaustive) set of Liang
// patterns per language, enough to demonstrate correct min-left/min-right
// constrained hyphenation without shipping the full TeX pattern files.
var patternTables = map[string][]pattern{}

func init() {
	for lang, raws := range rawPatterns {
		compiled := make([]pattern, 0, len(raws))
		for _, r := range raws {
			compiled = append(compiled, compilePattern(r))
		}
		patternTables[lang] = compiled
	}
}

var rawPatterns = map[string][]string{
	"en": {
		".ab2l", "1bb", "1bd", "1bg", "1bl", "1bm", "1bn", "1bp", "1br", "1bs", "1bt", "1bv",
		"1cl", "1cm", "1cn", "1cqu", "1cr", "1ct", "c1c", "1dr", "1dw", "1fl", "1fr", "1gl",
		"1gr", "1pl", "1pr", "1sl", "1sm", "1sn", "1sp", "1st", "1sw", "1tr", "1tw",
		"1ing", "ing1", "1tion", "tion1", "1able", "able1", "1ness", "ness1", "1ment", "ment1",
		"1er2s", "2es1", "y3i", "i1a", "i1o", "e1a", "o1a", ".con1", ".dis1", ".re1", ".pre1",
		".un1", "1b1", "1f1", "1k1", "1p1", "1v1",
	},
	"de": {
		"1ch", "1ck", "1sch", "1st", "1sp", "1tz", "1ph", "1th", "2ss1", "1b1", "1d1", "1g1",
		"ung1", "1ung", "heit1", "1heit", "keit1", "1keit", ".ge1", ".ver1", ".be1", ".ent1",
		"e1e", "a1a", "o1o", "u1u",
	},
	"fr": {
		"1bl", "1br", "1cl", "1cr", "1dr", "1fl", "1fr", "1gl", "1gr", "1pl", "1pr", "1tr", "1vr",
		"e1e", "a1a", "tion1", "1tion", "ment1", "1ment", ".re1", ".de1", ".in1", "1qu",
	},
	"es": {
		"1bl", "1br", "1cl", "1cr", "1dr", "1fl", "1fr", "1gl", "1gr", "1pl", "1pr", "1tr",
		"1ch", "1ll", "1rr", "ción1", "1ción", "mente1", "1mente", ".des1", ".re1", ".in1",
	},
}
