package fonts

import "strings"

// Hyphenate implements spec §4.2's hyphenate(word, language, min_left,
// min_right) using Liang's pattern-matching algorithm: the word is padded
// with boundary dots, every compiled pattern for the language is matched as
// a substring against the padded word, and at each inter-letter position the
// highest value from any matching pattern wins. A position is a legal break
// when its value is odd.
//
// Returns an empty slice when the language has no compiled pattern table, or
// when word consists entirely of characters the patterns cannot match (the
// scan still runs; it simply never matches anything, which is the same
// observable result spec §8 asks for).
func Hyphenate(word string, language string, minLeft, minRight int) []int {
	patterns, ok := patternTables[strings.ToLower(language)]
	if !ok || len(patterns) == 0 {
		return nil
	}
	if len(word) == 0 {
		return nil
	}

	lower := strings.ToLower(word)
	padded := "." + lower + "."
	n := len(padded)
	values := make([]int, n+1)

	for _, p := range patterns {
		plen := len(p.letters)
		if plen == 0 || plen > n {
			continue
		}
		for start := 0; start+plen <= n; start++ {
			if padded[start:start+plen] != p.letters {
				continue
			}
			for i, v := range p.values {
				pos := start + i
				if v > values[pos] {
					values[pos] = v
				}
			}
		}
	}

	wordLen := len(lower)
	var breaks []int
	for pos := 1; pos < wordLen; pos++ {
		// values index: position pos in the original word corresponds to
		// index pos+1 in padded/values (one dot prefix).
		v := values[pos+1]
		if v%2 == 0 {
			continue
		}
		if pos < minLeft || pos > wordLen-minRight {
			continue
		}
		breaks = append(breaks, pos)
	}
	return breaks
}

// SupportedHyphenationLanguages lists the languages with a compiled pattern
// table (spec §4.2: English, German, French, Spanish).
func SupportedHyphenationLanguages() []string {
	langs := make([]string, 0, len(patternTables))
	for lang := range patternTables {
		langs = append(langs, lang)
	}
	return langs
}
