package format

import (
	"strings"

	"sonet/internal/token"
)

// Minify concatenates the token stream with no separators. Whitespace
// between tags never comes back: the tokenizer already dropped
// whitespace-only spans and trimmed the rest.
func Minify(tokens []token.Token) string {
	var sb strings.Builder
	for i := range tokens {
		sb.WriteString(tokens[i].Raw)
	}
	return sb.String()
}
