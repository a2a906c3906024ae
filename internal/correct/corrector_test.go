package correct_test

import (
	"testing"

	"sonet/internal/correct"
	"sonet/internal/validate"
)

func TestAutocorrect_Balanced(t *testing.T) {
	in := "<a>\n  <b>x</b>\n</a>"
	res := correct.Autocorrect(in)
	if res.Corrected != in {
		t.Fatalf("balanced input changed: %q", res.Corrected)
	}
	if res.Counts.Total != 0 {
		t.Fatalf("Total = %d, want 0", res.Counts.Total)
	}
}

func TestAutocorrect_AncestorCloseSynthesizesIntermediate(t *testing.T) {
	res := correct.Autocorrect(`<a><b></a>`)
	if res.Corrected != `<a><b></b></a>` {
		t.Fatalf("Corrected = %q, want %q", res.Corrected, `<a><b></b></a>`)
	}
	want := correct.Counts{MissingTagsAdded: 0, StrayTagsRemoved: 0, MismatchesFixed: 1, Total: 1}
	if res.Counts != want {
		t.Fatalf("Counts = %+v, want %+v", res.Counts, want)
	}
}

func TestAutocorrect_StrayCloseDropped(t *testing.T) {
	res := correct.Autocorrect(`<a>text</b></a>`)
	if res.Corrected != `<a>text</a>` {
		t.Fatalf("Corrected = %q, want %q", res.Corrected, `<a>text</a>`)
	}
	if res.Counts.StrayTagsRemoved != 1 || res.Counts.Total != 1 {
		t.Fatalf("Counts = %+v", res.Counts)
	}
}

func TestAutocorrect_MissingClosesAppendedDeepestFirst(t *testing.T) {
	res := correct.Autocorrect(`<a><b><c>x`)
	if res.Corrected != `<a><b><c>x</c></b></a>` {
		t.Fatalf("Corrected = %q", res.Corrected)
	}
	if res.Counts.MissingTagsAdded != 3 {
		t.Fatalf("MissingTagsAdded = %d, want 3", res.Counts.MissingTagsAdded)
	}
}

func TestAutocorrect_WhitespaceKeptVerbatim(t *testing.T) {
	// Межтеговый текст — байт в байт, включая чисто пробельные куски.
	in := "<a>\n   \n<b>x</b>\n</a>"
	res := correct.Autocorrect(in)
	if res.Corrected != in {
		t.Fatalf("whitespace not preserved: %q", res.Corrected)
	}
}

func TestAutocorrect_SynthesizedCloseHasNoWhitespace(t *testing.T) {
	res := correct.Autocorrect("<a>\n<b>text")
	want := "<a>\n<b>text</b></a>"
	if res.Corrected != want {
		t.Fatalf("Corrected = %q, want %q", res.Corrected, want)
	}
}

func TestAutocorrect_ThenValidateIsClean(t *testing.T) {
	inputs := []string{
		`<a><b></a>`,
		`<a>text</b></a>`,
		`<a><b><c>x`,
		`</x></y>`,
		`<users><user id="1"><name>Ali</user></users>`,
	}
	for _, in := range inputs {
		fixed := correct.Autocorrect(in).Corrected
		if got := validate.Validate(fixed, validate.Options{}).Counts.Total; got != 0 {
			t.Fatalf("validate(autocorrect(%q)) = %d errors, corrected = %q", in, got, fixed)
		}
	}
}
