package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Fold narrows full width ascii (digits, colons, parens) so that "１０：００"
// and "10:00" read the same.
func Fold(s string) string {
	return width.Fold.String(s)
}

func NormalizeKeyword(s string) string {
	s = Fold(s)
	s = strings.ToLower(s)
	return whitespaceRegex.ReplaceAllString(s, "")
}

func MatchKeyword(text string, keywords []string) bool {
	text = NormalizeKeyword(text)
	for _, k := range keywords {
		if strings.Contains(text, NormalizeKeyword(k)) {
			return true
		}
	}
	return false
}
