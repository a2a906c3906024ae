package driver

import (
	"testing"

	"sonet/internal/graph"
)

func testCache(t *testing.T) *DiskCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c, err := OpenDiskCache("sonet-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	return c
}

func TestDiskCache_PutGet(t *testing.T) {
	c := testCache(t)
	key := HashContent([]byte("<users></users>"))

	in := StatsPayload{
		Schema:      Schema(),
		Path:        "doc.xml",
		ContentHash: key,
		TopN:        5,
		Metrics:     graph.Metrics{NumNodes: 3, NumEdges: 4},
	}
	if err := c.Put(key, &in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out StatsPayload
	ok, err := c.Get(key, &out)
	if err != nil || !ok {
		t.Fatalf("Get = (%v, %v), want hit", ok, err)
	}
	if out.Metrics.NumNodes != 3 || out.Metrics.NumEdges != 4 || out.TopN != 5 {
		t.Fatalf("payload = %+v", out)
	}
}

func TestDiskCache_Miss(t *testing.T) {
	c := testCache(t)
	var out StatsPayload
	ok, err := c.Get(HashContent([]byte("never stored")), &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected a miss")
	}
}

func TestDiskCache_StaleSchemaIsMiss(t *testing.T) {
	c := testCache(t)
	key := HashContent([]byte("doc"))

	in := StatsPayload{Schema: Schema() + 1}
	if err := c.Put(key, &in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out StatsPayload
	ok, err := c.Get(key, &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("stale schema must read as a miss")
	}
}

func TestDiskCache_NilSafe(t *testing.T) {
	var c *DiskCache
	key := HashContent([]byte("doc"))
	if err := c.Put(key, &StatsPayload{}); err != nil {
		t.Fatalf("nil Put: %v", err)
	}
	if ok, err := c.Get(key, &StatsPayload{}); ok || err != nil {
		t.Fatalf("nil Get = (%v, %v)", ok, err)
	}
}

func TestDiskCache_DropAll(t *testing.T) {
	c := testCache(t)
	key := HashContent([]byte("doc"))
	if err := c.Put(key, &StatsPayload{Schema: Schema()}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	var out StatsPayload
	if ok, _ := c.Get(key, &out); ok {
		t.Fatal("cache must be empty after DropAll")
	}
}
