package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"sonet/internal/driver"
)

const followNet = `<users>
  <user id="1"><name>Ali</name>
    <followings><following><id>2</id></following></followings>
  </user>
  <user id="2"><name>Bob</name></user>
</users>`

func TestStatsOne(t *testing.T) {
	path := writeDoc(t, "net.xml", followNet)
	res := driver.StatsOne(path, 5)
	if res.Err != nil {
		t.Fatalf("StatsOne: %v", res.Err)
	}
	if res.Metrics.NumNodes != 2 || res.Metrics.NumEdges != 1 {
		t.Fatalf("metrics = %+v", res.Metrics)
	}
	if res.Metrics.MostInfluential == nil || res.Metrics.MostInfluential.ID != "2" {
		t.Fatalf("MostInfluential = %+v, want user 2", res.Metrics.MostInfluential)
	}
}

func TestLoadGraph(t *testing.T) {
	path := writeDoc(t, "net.xml", followNet)
	g, err := driver.LoadGraph(path)
	if err != nil {
		t.Fatalf("LoadGraph: %v", err)
	}
	if g.NumNodes() != 2 || g.NumEdges() != 1 {
		t.Fatalf("graph = %d nodes / %d edges, want 2/1", g.NumNodes(), g.NumEdges())
	}
	if d := g.InDegree("2"); d != 1 {
		t.Fatalf("InDegree(2) = %d, want 1", d)
	}
	if name := g.Name("1"); name != "Ali" {
		t.Fatalf("Name(1) = %q, want Ali", name)
	}

	if _, err := driver.LoadGraph(filepath.Join(t.TempDir(), "nope.xml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestStatsDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.xml", "a.xml"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(followNet), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	// Не-xml файлы игнорируются.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	results, err := driver.StatsDir(context.Background(), dir, 5, 2)
	if err != nil {
		t.Fatalf("StatsDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	// Порядок отсортирован по пути независимо от порядка записи.
	if filepath.Base(results[0].Path) != "a.xml" || filepath.Base(results[1].Path) != "b.xml" {
		t.Fatalf("order = %q, %q", results[0].Path, results[1].Path)
	}
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("%s: %v", r.Path, r.Err)
		}
		if r.Metrics.NumNodes != 2 {
			t.Fatalf("%s: metrics = %+v", r.Path, r.Metrics)
		}
	}
}

func TestStatsDir_EmptyDir(t *testing.T) {
	results, err := driver.StatsDir(context.Background(), t.TempDir(), 5, 0)
	if err != nil {
		t.Fatalf("StatsDir: %v", err)
	}
	if results != nil {
		t.Fatalf("results = %v, want nil for an empty directory", results)
	}
}

func TestStatsDir_EmptyDocumentIsEmptyNetwork(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "good.xml"), []byte(followNet), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "empty.xml"), nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	results, err := driver.StatsDir(context.Background(), dir, 5, 1)
	if err != nil {
		t.Fatalf("StatsDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	// Пустой документ — просто пустая сеть, не ошибка.
	if results[0].Err != nil || results[0].Metrics.NumNodes != 0 {
		t.Fatalf("empty doc result = %+v", results[0])
	}
}
