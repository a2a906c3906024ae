package format

import (
	"strings"
	"unicode/utf8"

	"sonet/internal/token"
)

type Options struct {
	IndentWidth int
	MaxWidth    int
}

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 4
	}
	if o.MaxWidth == 0 {
		o.MaxWidth = 80
	}
	return o
}

// Format renders the token stream as indented text.
//
// The leaf lookahead is exactly two tokens: open tag followed by text
// followed by any close tag. Two consecutive child elements therefore fall
// through to the general branch and are never inlined, even when short.
func Format(tokens []token.Token, opt Options) string {
	opt = opt.withDefaults()
	w := NewWriter(opt)

	k := 0
	for k < len(tokens) {
		tok := tokens[k]

		switch tok.Kind {
		case token.CloseTag:
			w.IndentPop()
			w.Line(tok.Raw)

		case token.OpenTag:
			if k+2 < len(tokens) &&
				tokens[k+1].Kind == token.Text &&
				tokens[k+2].Kind == token.CloseTag {
				printLeaf(w, tok, tokens[k+1], tokens[k+2], opt)
				k += 2
			} else {
				w.Line(tok.Raw)
				w.IndentPush()
			}

		default:
			// Голый текст вне leaf-паттерна — печатаем на текущем уровне.
			w.Line(tok.Raw)
		}

		k++
	}

	return w.String()
}

// printLeaf prints an open/text/close triple, inline when the collapsed
// text fits MaxWidth, wrapped one level deeper otherwise. Width is counted
// in characters, not bytes: non-ASCII text must not wrap earlier.
func printLeaf(w *Writer, open, text, closing token.Token, opt Options) {
	cleanText := collapseSpace(text.Raw)

	if utf8.RuneCountInString(cleanText) > opt.MaxWidth {
		w.Line(open.Raw)
		w.IndentPush()
		for _, line := range wrapText(cleanText, opt.MaxWidth) {
			w.Line(line)
		}
		w.IndentPop()
		w.Line(closing.Raw)
		return
	}

	w.Line(open.Raw + cleanText + closing.Raw)
}

// collapseSpace normalizes all internal whitespace runs (including
// newlines) to single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
