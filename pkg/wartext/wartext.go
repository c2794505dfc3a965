package wartext

import (
	"regexp"
	"strings"
)

// Normalize prepares free text for keying on the machine: letters are
// uppercased, runs of sentence punctuation become the spelled stop "X"
// the way wartime operators keyed it, and everything else is dropped.
func Normalize(text string) string {
	text = strings.ToUpper(text)
	text = regexp.
		MustCompile(`[.,:;!?]+`).
		ReplaceAllString(text, "X")
	text = regexp.
		MustCompile(`[^A-Z]+`).
		ReplaceAllString(text, "")
	return text
}
