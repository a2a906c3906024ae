package format

import (
	"strings"
	"unicode/utf8"
)

// wrapText greedily wraps already-collapsed text at the given width,
// counting characters rather than bytes. A word longer than the width is
// emitted on its own line unbroken.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	currentLen := utf8.RuneCountInString(current)
	for _, word := range words[1:] {
		wordLen := utf8.RuneCountInString(word)
		if currentLen+1+wordLen <= width {
			current += " " + word
			currentLen += 1 + wordLen
		} else {
			lines = append(lines, current)
			current = word
			currentLen = wordLen
		}
	}
	lines = append(lines, current)
	return lines
}
