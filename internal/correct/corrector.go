// Package correct rebalances tag documents on a best-effort basis.
//
// The corrector runs the third tokenization policy in the system: the
// document is split on <[^>]+> boundaries and the raw text between tags is
// carried verbatim, whitespace-only spans included. This differs from the
// lexer (which drops whitespace-only text) and from the validator (which
// scans line by line); the three passes stay separate on purpose.
package correct

import (
	"regexp"
	"strings"
)

var (
	tagBoundary = regexp.MustCompile(`<[^>]+>`)
	// tagToken анкорится в начале: токен-тег от split всегда матчится,
	// всё остальное — текст как есть.
	tagToken = regexp.MustCompile(`^<(/?)(\w+)[^>]*>`)
)

// Counts buckets the applied corrections.
type Counts struct {
	MissingTagsAdded int `json:"missing_tags_added"`
	StrayTagsRemoved int `json:"stray_tags_removed"`
	MismatchesFixed  int `json:"mismatches_fixed"`
	Total            int `json:"total_corrections"`
}

// Result is the corrector output.
type Result struct {
	Corrected string
	Counts    Counts
}

// Autocorrect rebalances the document:
//   - a close tag matching the innermost open tag passes through;
//   - a close tag matching a deeper ancestor first synthesizes closes for
//     every intermediate open tag (one MismatchesFixed each);
//   - a close tag matching nothing on the stack is dropped entirely;
//   - open tags left on the stack at the end get synthesized closes,
//     deepest first.
//
// Text is emitted verbatim; the result is plain concatenation with no
// whitespace added.
func Autocorrect(text string) Result {
	var stack []string
	var out strings.Builder
	var counts Counts

	for _, tok := range splitTokens(text) {
		m := tagToken.FindStringSubmatch(tok)
		if m == nil {
			// Просто текст — как есть.
			out.WriteString(tok)
			continue
		}

		isClosing := m[1] == "/"
		tagName := m[2]

		if !isClosing {
			stack = append(stack, tagName)
			out.WriteString(tok)
			continue
		}

		if len(stack) > 0 && stack[len(stack)-1] == tagName {
			stack = stack[:len(stack)-1]
			out.WriteString(tok)
			continue
		}

		if contains(stack, tagName) {
			// Закрывает предка: сначала закрываем всё, что между ним и
			// вершиной стека.
			for stack[len(stack)-1] != tagName {
				missing := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				out.WriteString("</" + missing + ">")
				counts.MismatchesFixed++
			}
			stack = stack[:len(stack)-1]
			out.WriteString(tok)
			continue
		}

		// Лишний закрывающий тег — удаляем.
		counts.StrayTagsRemoved++
	}

	// Всё, что осталось открытым, закрываем с конца.
	for len(stack) > 0 {
		missing := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out.WriteString("</" + missing + ">")
		counts.MissingTagsAdded++
	}

	counts.Total = counts.MissingTagsAdded + counts.StrayTagsRemoved + counts.MismatchesFixed

	return Result{Corrected: out.String(), Counts: counts}
}

// splitTokens splits on tag boundaries, keeping the tags and the raw
// inter-tag text (whitespace-only spans included).
func splitTokens(text string) []string {
	var tokens []string
	prev := 0
	for _, loc := range tagBoundary.FindAllStringIndex(text, -1) {
		if loc[0] > prev {
			tokens = append(tokens, text[prev:loc[0]])
		}
		tokens = append(tokens, text[loc[0]:loc[1]])
		prev = loc[1]
	}
	if prev < len(text) {
		tokens = append(tokens, text[prev:])
	}
	return tokens
}

func contains(stack []string, name string) bool {
	for _, s := range stack {
		if s == name {
			return true
		}
	}
	return false
}
