package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtual_Resolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("doc", []byte("ab\ncd\n"))
	f := fs.Get(id)

	if f.Flags&FileVirtual == 0 {
		t.Fatal("virtual file must carry FileVirtual")
	}

	start, end := fs.Resolve(Span{File: id, Start: 3, End: 4})
	if start != (LineCol{Line: 2, Col: 1}) {
		t.Fatalf("start = %+v, want line 2 col 1", start)
	}
	if end != (LineCol{Line: 2, Col: 2}) {
		t.Fatalf("end = %+v, want line 2 col 2", end)
	}
}

func TestToLineCol(t *testing.T) {
	lineIdx := buildLineIndex([]byte("ab\ncd\nef"))

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{1, LineCol{Line: 1, Col: 2}},
		{3, LineCol{Line: 2, Col: 1}},
		{4, LineCol{Line: 2, Col: 2}},
		{6, LineCol{Line: 3, Col: 1}},
	}
	for _, c := range cases {
		if got := toLineCol(lineIdx, c.off); got != c.want {
			t.Fatalf("toLineCol(%d) = %+v, want %+v", c.off, got, c.want)
		}
	}
}

func TestToLineCol_SingleLine(t *testing.T) {
	if got := toLineCol(nil, 5); got != (LineCol{Line: 1, Col: 6}) {
		t.Fatalf("toLineCol = %+v", got)
	}
}

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc\n"))
	if !changed {
		t.Fatal("changed = false")
	}
	// Одиночный \r остаётся как есть.
	if string(out) != "a\nb\rc\n" {
		t.Fatalf("out = %q", out)
	}

	same, changed := normalizeCRLF([]byte("plain\n"))
	if changed || string(same) != "plain\n" {
		t.Fatalf("no-op path broken: %q, %v", same, changed)
	}
}

func TestRemoveBOM(t *testing.T) {
	out, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'h', 'i'})
	if !had || string(out) != "hi" {
		t.Fatalf("removeBOM = %q, %v", out, had)
	}
	short, had := removeBOM([]byte{0xEF})
	if had || len(short) != 1 {
		t.Fatal("short input must pass through")
	}
}

func TestLoad_NormalizesAndFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.xml")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("<a>\r\n</a>\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)

	if string(f.Content) != "<a>\n</a>\n" {
		t.Fatalf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("flags = %v, want BOM and CRLF bits", f.Flags)
	}

	if got, ok := fs.GetByPath(path); !ok || got.ID != id {
		t.Fatal("GetByPath must find the loaded file")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.xml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
