package lexer

import (
	"strings"

	"sonet/internal/source"
	"sonet/internal/token"
)

// Lexer scans a tag document left to right into a flat token stream.
//
// This is the canonical tokenization policy used by the formatter, the
// minifier, and the record projector. The validator and the corrector each
// run their own, deliberately different, tokenization pass (see the
// validate and correct packages); the three policies must not be unified
// because they disagree on observable details such as whitespace-only text
// handling and multi-line tag detection.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Tokenize scans the whole document and returns the token stream without
// the trailing EOF token.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	var out []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return out
		}
		out = append(out, tok)
	}
}

// Next возвращает следующий **значимый** токен.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	// 1) Если есть look — вернуть его и очистить
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		if lx.cursor.EOF() {
			return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
		}

		if lx.cursor.Peek() == '<' {
			return lx.scanTag()
		}

		tok, ok := lx.scanText()
		if ok {
			return tok
		}
		// Пробельный текст пропущен — сканируем дальше.
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// scanTag consumes '<' .. '>' and classifies the tag. If no '>' follows,
// scanning stops: the cursor jumps to EOF and the trailing text is
// discarded. That is the tokenizer's documented degradation, not an error.
func (lx *Lexer) scanTag() token.Token {
	start := lx.cursor.Off
	end, ok := lx.cursor.IndexByteFrom('>')
	if !ok {
		lx.report("unterminated-tag",
			source.Span{File: lx.file.ID, Start: start, End: lx.cursor.Limit},
			"'<' without a matching '>'; the rest of the document is discarded")
		lx.cursor.Seek(lx.cursor.Limit)
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}
	raw := string(lx.file.Content[start : end+1])
	lx.cursor.Seek(end + 1)

	span := source.Span{File: lx.file.ID, Start: start, End: end + 1}
	if strings.HasPrefix(raw, "</") {
		return token.Token{
			Kind: token.CloseTag,
			Name: tagName(raw),
			Raw:  raw,
			Span: span,
		}
	}
	return token.Token{
		Kind:  token.OpenTag,
		Name:  tagName(raw),
		Attrs: tagAttrs(raw),
		Raw:   raw,
		Span:  span,
	}
}

// scanText consumes everything up to the next '<' (or EOF). Whitespace-only
// spans are dropped (ok=false); other spans are trimmed at the edges with
// internal whitespace preserved.
func (lx *Lexer) scanText() (token.Token, bool) {
	start := lx.cursor.Off
	end, ok := lx.cursor.IndexByteFrom('<')
	if !ok {
		end = lx.cursor.Limit
	}
	raw := string(lx.file.Content[start:end])
	lx.cursor.Seek(end)

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return token.Token{}, false
	}
	return token.Token{
		Kind: token.Text,
		Raw:  trimmed,
		// Span covers the untrimmed source range.
		Span: source.Span{File: lx.file.ID, Start: start, End: end},
	}, true
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
