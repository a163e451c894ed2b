package render

import "strings"

// wrapText splits s into lines that fit. A single word that does not fit
// gets a line of its own.
func wrapText(s string, fits func(string) bool) []string {
	if fits(s) {
		return []string{s}
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var result []string
	line := words[0]
	for _, w := range words[1:] {
		if next := line + " " + w; fits(next) {
			line = next
		} else {
			result = append(result, line)
			line = w
		}
	}
	return append(result, line)
}
