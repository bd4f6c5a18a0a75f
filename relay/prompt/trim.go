package prompt

import (
	"regexp"
	"strings"
)

// whitespaceBeforeNewline matches any whitespace run that ends in a line break.
var whitespaceBeforeNewline = regexp.MustCompile(`[\s\v\p{Z}\x{85}]+\n`)

// SafeTrim collapses whitespace that precedes a line break into a single
// line break, strips both ends and truncates to at most maxChars characters.
// A non-positive maxChars disables truncation.
func SafeTrim(text string, maxChars int) string {
	text = whitespaceBeforeNewline.ReplaceAllString(text, "\n")
	text = strings.TrimSpace(text)
	return Truncate(text, maxChars)
}

// Truncate cuts text to at most maxChars runes.
func Truncate(text string, maxChars int) string {
	if maxChars <= 0 || len(text) <= maxChars {
		return text
	}

	n := 0
	for i := range text {
		if n == maxChars {
			return text[:i]
		}
		n++
	}
	return text
}
