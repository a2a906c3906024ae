package lexer

import (
	"regexp"
	"strings"

	"sonet/internal/token"
)

var (
	doubleQuotedAttr = regexp.MustCompile(`(\w+)="([^"]*)"`)
	singleQuotedAttr = regexp.MustCompile(`(\w+)='([^']*)'`)
)

// tagName extracts the tag name from a raw tag token: angle brackets and
// slashes are stripped from both ends, then the first space-delimited word
// is the name. "<user id=\"1\">", "</user>" and "<br/>" all yield their
// bare names.
func tagName(raw string) string {
	content := strings.Trim(raw, "<>")
	content = strings.Trim(content, "/")
	if i := strings.IndexByte(content, ' '); i >= 0 {
		return content[:i]
	}
	return content
}

// tagAttrs scans name="value" pairs first, then name='value' pairs, and
// merges both result sets in that order. On a key collision the
// single-quoted scan wins because it runs second; documents mixing quote
// styles for the same key are ambiguous by contract. Values are
// space-trimmed, entities are not expanded.
func tagAttrs(raw string) token.Attrs {
	content := strings.Trim(raw, "<>")
	content = strings.Trim(content, "/")

	var attrs token.Attrs
	for _, m := range doubleQuotedAttr.FindAllStringSubmatch(content, -1) {
		attrs = attrs.Set(m[1], strings.TrimSpace(m[2]))
	}
	for _, m := range singleQuotedAttr.FindAllStringSubmatch(content, -1) {
		attrs = attrs.Set(m[1], strings.TrimSpace(m[2]))
	}
	return attrs
}
