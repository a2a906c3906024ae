package validate_test

import (
	"strings"
	"testing"

	"sonet/internal/validate"
)

func TestValidate_Balanced(t *testing.T) {
	res := validate.Validate("<a>\n<b>x</b>\n</a>", validate.Options{})
	if res.Counts.Total != 0 {
		t.Fatalf("Total = %d, want 0; counts = %+v", res.Counts.Total, res.Counts)
	}
	if res.Annotated != "<a>\n<b>x</b>\n</a>" {
		t.Fatalf("balanced input must pass through untouched, got %q", res.Annotated)
	}
	if res.Bag.HasErrors() {
		t.Fatal("Bag reports errors on balanced input")
	}
}

func TestValidate_Mismatch(t *testing.T) {
	res := validate.Validate("<a>\n<b>\n</a>", validate.Options{})

	want := validate.Counts{OrphanTags: 0, Mismatches: 1, MissingClosingTags: 1, Total: 2}
	if res.Counts != want {
		t.Fatalf("Counts = %+v, want %+v", res.Counts, want)
	}

	lines := strings.Split(res.Annotated, "\n")
	if got := lines[2]; got != "</a> <--- MISMATCH: Expected </b>, found </a>." {
		t.Fatalf("line 2 = %q", got)
	}
	// <b> так и не закрыт; аннотация на строке открытия.
	if got := lines[1]; got != "<b> <--- MISSING CLOSING TAG: Tag <b> is never closed." {
		t.Fatalf("line 1 = %q", got)
	}
	if got := lines[0]; got != "<a>" {
		t.Fatalf("line 0 = %q, want untouched", got)
	}
}

func TestValidate_MismatchSingleLine(t *testing.T) {
	res := validate.Validate(`<a><b></a>`, validate.Options{})

	want := validate.Counts{OrphanTags: 0, Mismatches: 1, MissingClosingTags: 1, Total: 2}
	if res.Counts != want {
		t.Fatalf("Counts = %+v, want %+v", res.Counts, want)
	}
	// Обе аннотации на той же строке, в порядке обнаружения.
	wantLine := `<a><b></a> <--- MISMATCH: Expected </b>, found </a>. <--- MISSING CLOSING TAG: Tag <b> is never closed.`
	if res.Annotated != wantLine {
		t.Fatalf("Annotated = %q, want %q", res.Annotated, wantLine)
	}
}

func TestValidate_Orphan(t *testing.T) {
	res := validate.Validate("</lonely>", validate.Options{})

	want := validate.Counts{OrphanTags: 1, Mismatches: 0, MissingClosingTags: 0, Total: 1}
	if res.Counts != want {
		t.Fatalf("Counts = %+v, want %+v", res.Counts, want)
	}
	wantLine := "</lonely> <--- ORPHAN TAG: Found </lonely> but no opening tag exists."
	if res.Annotated != wantLine {
		t.Fatalf("Annotated = %q, want %q", res.Annotated, wantLine)
	}
}

func TestValidate_MissingAnnotatedOnOpeningLine(t *testing.T) {
	res := validate.Validate("<a>\n<b>\ntext", validate.Options{})

	if res.Counts.MissingClosingTags != 2 {
		t.Fatalf("MissingClosingTags = %d, want 2", res.Counts.MissingClosingTags)
	}
	lines := strings.Split(res.Annotated, "\n")
	if !strings.Contains(lines[0], "Tag <a> is never closed") {
		t.Fatalf("line 0 missing annotation: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Tag <b> is never closed") {
		t.Fatalf("line 1 missing annotation: %q", lines[1])
	}
	if lines[2] != "text" {
		t.Fatalf("line 2 = %q, want untouched", lines[2])
	}
}

func TestValidate_MultiLineTagInvisible(t *testing.T) {
	// Построчный скан: тег, разорванный переводом строки, не виден.
	res := validate.Validate("<user\nid=\"1\">\n</user>", validate.Options{})

	want := validate.Counts{OrphanTags: 1, Mismatches: 0, MissingClosingTags: 0, Total: 1}
	if res.Counts != want {
		t.Fatalf("Counts = %+v, want %+v", res.Counts, want)
	}
}

func TestValidate_MultipleTagsPerLine(t *testing.T) {
	res := validate.Validate(`<a><b>x</b></a>`, validate.Options{})
	if res.Counts.Total != 0 {
		t.Fatalf("Total = %d, want 0", res.Counts.Total)
	}
}

func TestValidate_BagCapDoesNotAffectCounts(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 10; i++ {
		sb.WriteString("</x>\n")
	}
	res := validate.Validate(sb.String(), validate.Options{MaxDiagnostics: 3})

	if res.Counts.OrphanTags != 10 {
		t.Fatalf("OrphanTags = %d, want 10 (counts are uncapped)", res.Counts.OrphanTags)
	}
	if res.Bag.Len() != 3 {
		t.Fatalf("Bag.Len() = %d, want cap of 3", res.Bag.Len())
	}
}
