package graph_test

import (
	"reflect"
	"testing"

	"sonet/internal/graph"
	"sonet/internal/record"
)

func strp(s string) *string { return &s }

func user(id, name string, followings, followers []string) record.User {
	u := record.User{ID: strp(id), Name: strp(name)}
	for _, f := range followings {
		u.Followings = append(u.Followings, record.Relation{ID: strp(f)})
	}
	for _, f := range followers {
		u.Followers = append(u.Followers, record.Relation{ID: strp(f)})
	}
	return u
}

// Сеть: 1 -> 2, 1 -> 3, 2 -> 3, 3 -> 1.
func testGraph() *graph.Graph {
	return graph.Build(record.Root{Users: []record.User{
		user("1", "Ali", []string{"2", "3"}, nil),
		user("2", "Bob", []string{"3"}, nil),
		user("3", "Eve", []string{"1"}, nil),
	}})
}

func TestBuild_Degrees(t *testing.T) {
	g := testGraph()

	if g.NumNodes() != 3 {
		t.Fatalf("NumNodes = %d, want 3", g.NumNodes())
	}
	if g.NumEdges() != 4 {
		t.Fatalf("NumEdges = %d, want 4", g.NumEdges())
	}
	if d := g.OutDegree("1"); d != 2 {
		t.Fatalf("OutDegree(1) = %d, want 2", d)
	}
	if d := g.InDegree("3"); d != 2 {
		t.Fatalf("InDegree(3) = %d, want 2", d)
	}
}

func TestBuild_FollowerEdgesReversed(t *testing.T) {
	// <follower> с id X у пользователя U означает ребро X -> U.
	g := graph.Build(record.Root{Users: []record.User{
		user("1", "Ali", nil, []string{"2"}),
		user("2", "Bob", nil, nil),
	}})
	if d := g.OutDegree("2"); d != 1 {
		t.Fatalf("OutDegree(2) = %d, want 1", d)
	}
	if d := g.InDegree("1"); d != 1 {
		t.Fatalf("InDegree(1) = %d, want 1", d)
	}
}

func TestBuild_UnknownEdgeDropped(t *testing.T) {
	g := graph.Build(record.Root{Users: []record.User{
		user("1", "Ali", []string{"ghost"}, nil),
	}})
	if g.NumEdges() != 0 {
		t.Fatalf("NumEdges = %d, want 0 (unknown target)", g.NumEdges())
	}
}

func TestBuild_UserWithoutIDSkipped(t *testing.T) {
	g := graph.Build(record.Root{Users: []record.User{
		{Name: strp("anon")},
		user("1", "Ali", nil, nil),
	}})
	if g.NumNodes() != 1 {
		t.Fatalf("NumNodes = %d, want 1", g.NumNodes())
	}
}

func TestMutualFollowers(t *testing.T) {
	// 1 и 2 читают и 3, и 4.
	g := graph.Build(record.Root{Users: []record.User{
		user("1", "Ali", []string{"3", "4"}, nil),
		user("2", "Bob", []string{"3", "4"}, nil),
		user("3", "Eve", nil, nil),
		user("4", "Kim", nil, nil),
	}})
	got := g.MutualFollowers("3", "4")
	if !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Fatalf("MutualFollowers = %v, want [1 2]", got)
	}
}

func TestSuggestFollows(t *testing.T) {
	// 1 читает 2 и 3; оба читают 4 (2 голоса); 3 читает ещё 5 (1 голос).
	g := graph.Build(record.Root{Users: []record.User{
		user("1", "Ali", []string{"2", "3"}, nil),
		user("2", "Bob", []string{"4"}, nil),
		user("3", "Eve", []string{"4", "5"}, nil),
		user("4", "Kim", nil, nil),
		user("5", "Lou", nil, nil),
	}})
	got := g.SuggestFollows("1", 10)
	if !reflect.DeepEqual(got, []string{"4", "5"}) {
		t.Fatalf("SuggestFollows = %v, want [4 5]", got)
	}
	if capped := g.SuggestFollows("1", 1); !reflect.DeepEqual(capped, []string{"4"}) {
		t.Fatalf("SuggestFollows limit 1 = %v, want [4]", capped)
	}
}

func TestSuggestFollows_ExcludesSelfAndFollowed(t *testing.T) {
	// 1 <-> 2: кандидаты через 2 — это сам 1, исключается.
	g := graph.Build(record.Root{Users: []record.User{
		user("1", "Ali", []string{"2"}, nil),
		user("2", "Bob", []string{"1"}, nil),
	}})
	if got := g.SuggestFollows("1", 10); len(got) != 0 {
		t.Fatalf("SuggestFollows = %v, want empty", got)
	}
}

func TestComputeMetrics(t *testing.T) {
	m := testGraph().ComputeMetrics(2)

	if m.NumNodes != 3 || m.NumEdges != 4 {
		t.Fatalf("nodes/edges = %d/%d, want 3/4", m.NumNodes, m.NumEdges)
	}
	if want := 4.0 / 6.0; m.Density != want {
		t.Fatalf("Density = %v, want %v", m.Density, want)
	}
	if m.MostInfluential == nil || m.MostInfluential.ID != "3" {
		t.Fatalf("MostInfluential = %+v, want user 3", m.MostInfluential)
	}
	if m.MostActive == nil || m.MostActive.ID != "1" {
		t.Fatalf("MostActive = %+v, want user 1", m.MostActive)
	}
	if len(m.TopInfluencers) != 2 || len(m.TopActive) != 2 {
		t.Fatalf("topN not applied: %d/%d", len(m.TopInfluencers), len(m.TopActive))
	}
}

func TestComputeMetrics_RankingTiesByID(t *testing.T) {
	// Все степени нулевые: ранжирование падает на возрастающий id.
	g := graph.Build(record.Root{Users: []record.User{
		user("b", "B", nil, nil),
		user("a", "A", nil, nil),
	}})
	m := g.ComputeMetrics(0)
	if m.TopInfluencers[0].ID != "a" || m.TopInfluencers[1].ID != "b" {
		t.Fatalf("TopInfluencers = %+v, want ids ascending on ties", m.TopInfluencers)
	}
}

func TestComputeMetrics_Empty(t *testing.T) {
	m := graph.Build(record.Root{}).ComputeMetrics(5)
	if m.NumNodes != 0 || m.MostInfluential != nil || m.MostActive != nil {
		t.Fatalf("metrics of empty graph = %+v", m)
	}
}
