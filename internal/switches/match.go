package switches

import "unicode"

// Keymatch reports whether arg is an acceptable abbreviation of keyword:
// a prefix of it, no longer than it, and at least minChars long. Upper-case
// letters in arg are folded; keyword is expected in lower case.
func Keymatch(arg, keyword string, minChars int) bool {
	return Matcher{FoldCase: true}.Match(arg, keyword, minChars)
}

// Matcher applies the abbreviation rule with configurable case handling.
type Matcher struct {
	FoldCase bool
}

func (m Matcher) Match(arg, keyword string, minChars int) bool {
	a := []rune(arg)
	k := []rune(keyword)
	if len(a) > len(k) || len(a) < minChars {
		return false
	}
	for i, ch := range a {
		if m.FoldCase {
			ch = unicode.ToLower(ch)
		}
		if ch != k[i] {
			return false
		}
	}
	return true
}
