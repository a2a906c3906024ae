// Package validate checks tag balance line by line and annotates the
// offending lines in place.
//
// The validator runs its own tokenization policy: a per-line regex scan.
// It is intentionally not built on the lexer — a tag spanning multiple
// lines is invisible here, and an unmatched '<' without '>' on the same
// line is silently ignored. Unifying this pass with the lexer would change
// observable behavior.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"sonet/internal/diag"
)

// lineTag captures optional '/' and the tag name for every tag on a line.
var lineTag = regexp.MustCompile(`<(/?)(\w+)[^>]*>`)

// Counts buckets structural errors the way the CLI reports them.
type Counts struct {
	OrphanTags         int `json:"orphan_tags"`
	Mismatches         int `json:"mismatches"`
	MissingClosingTags int `json:"missing_closing_tags"`
	Total              int `json:"total"`
}

// Result is the validator output: the document with per-line diagnostic
// suffixes appended, the error tally, and the structured diagnostics.
type Result struct {
	Annotated string
	Counts    Counts
	Bag       *diag.Bag
}

type Options struct {
	// MaxDiagnostics caps the Bag; annotations and counts are not capped.
	MaxDiagnostics int
}

func (o Options) withDefaults() Options {
	if o.MaxDiagnostics == 0 {
		o.MaxDiagnostics = 100
	}
	return o
}

type openEntry struct {
	tag     string
	lineIdx int
}

// Validate scans the document and reports orphan tags, mismatches, and
// missing closing tags. Structural problems are data: Validate never
// fails, whatever the input looks like.
func Validate(text string, opts Options) Result {
	opts = opts.withDefaults()
	bag := diag.NewBag(opts.MaxDiagnostics)

	var stack []openEntry
	var counts Counts

	lines := strings.Split(text, "\n")
	annotated := make([]string, len(lines))
	copy(annotated, lines)

	for lineIdx, line := range lines {
		for _, m := range lineTag.FindAllStringSubmatch(line, -1) {
			isClosing := m[1] == "/"
			tagName := m[2]

			if !isClosing {
				stack = append(stack, openEntry{tag: tagName, lineIdx: lineIdx})
				continue
			}

			if len(stack) == 0 {
				counts.OrphanTags++
				annotated[lineIdx] += fmt.Sprintf(" <--- ORPHAN TAG: Found </%s> but no opening tag exists.", tagName)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.StructOrphanTag,
					Message:  fmt.Sprintf("found </%s> but no opening tag exists", tagName),
					Line:     lineIdx,
					Tag:      tagName,
				})
				continue
			}

			top := stack[len(stack)-1]
			if top.tag == tagName {
				stack = stack[:len(stack)-1]
				continue
			}

			// Mismatch. Вершину НЕ снимаем: верхний открывающий ещё ждёт
			// свою пару. Если закрывающий тег нашёл своего открывающего
			// глубже в стеке, тот считается закрытым (не в том порядке).
			counts.Mismatches++
			annotated[lineIdx] += fmt.Sprintf(" <--- MISMATCH: Expected </%s>, found </%s>.", top.tag, tagName)
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.StructMismatch,
				Message:  fmt.Sprintf("expected </%s>, found </%s>", top.tag, tagName),
				Line:     lineIdx,
				Tag:      tagName,
			})

			for i := len(stack) - 2; i >= 0; i-- {
				if stack[i].tag == tagName {
					stack = append(stack[:i], stack[i+1:]...)
					break
				}
			}
		}
	}

	// Всё, что осталось на стеке — незакрытые теги. Аннотация идёт на
	// строку открытия, не в конец файла.
	for len(stack) > 0 {
		leftover := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		counts.MissingClosingTags++
		annotated[leftover.lineIdx] += fmt.Sprintf(" <--- MISSING CLOSING TAG: Tag <%s> is never closed.", leftover.tag)
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.StructMissingTag,
			Message:  fmt.Sprintf("tag <%s> is never closed", leftover.tag),
			Line:     leftover.lineIdx,
			Tag:      leftover.tag,
		})
	}

	counts.Total = counts.OrphanTags + counts.Mismatches + counts.MissingClosingTags

	return Result{
		Annotated: strings.Join(annotated, "\n"),
		Counts:    counts,
		Bag:       bag,
	}
}
