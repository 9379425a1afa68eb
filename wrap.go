package pdfgen

import "strings"

// wrapText greedily wraps text into lines no wider than maxWidth.
// width reports the rendered width of a candidate line in the current
// font. A single word wider than maxWidth is kept on its own line
// rather than split. Empty input yields no lines.
func wrapText(text string, maxWidth float64, width func(string) float64) []string {
	words := strings.Fields(text)

	var lines []string
	var current string
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if width(candidate) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
