// Package segment splits extracted document text into retrieval units.
package segment

import (
	"regexp"
	"strings"
)

var blankLinePattern = regexp.MustCompile(`\n\s*\n+`)

// Paragraphs splits text into non-empty paragraphs in document order.
// Paragraphs are separated by at least one blank line (runs of two or more
// line breaks, possibly with intervening whitespace). When the text contains
// no blank-line separators at all, every non-empty line becomes its own
// paragraph, so single-line-per-sentence documents still produce usable
// retrieval units.
func Paragraphs(text string) []string {
	var parts []string
	for _, p := range blankLinePattern.Split(text, -1) {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) > 0 {
		return parts
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			parts = append(parts, line)
		}
	}
	return parts
}
