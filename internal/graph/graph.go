// Package graph builds a directed follow graph from the record projection
// and answers degree and mutual-follower queries. It consumes the
// projector's output only and contributes no structural algorithm over
// the document itself.
package graph

import (
	"sort"

	"sonet/internal/record"
)

// Graph is a directed follow graph: an edge A -> B means A follows B.
type Graph struct {
	names map[string]string
	// out[a] — кого читает a; in[b] — кто читает b.
	out map[string]map[string]bool
	in  map[string]map[string]bool
}

// Build constructs the graph from the record tree. Users without an id
// are skipped; edges referencing unknown users are dropped, matching the
// permissive projection.
func Build(root record.Root) *Graph {
	g := &Graph{
		names: make(map[string]string),
		out:   make(map[string]map[string]bool),
		in:    make(map[string]map[string]bool),
	}

	for _, u := range root.Users {
		if u.ID == nil {
			continue
		}
		name := ""
		if u.Name != nil {
			name = *u.Name
		}
		g.names[*u.ID] = name
		if g.out[*u.ID] == nil {
			g.out[*u.ID] = make(map[string]bool)
		}
		if g.in[*u.ID] == nil {
			g.in[*u.ID] = make(map[string]bool)
		}
	}

	for _, u := range root.Users {
		if u.ID == nil {
			continue
		}
		for _, rel := range u.Followings {
			if rel.ID != nil {
				g.addEdge(*u.ID, *rel.ID)
			}
		}
		for _, rel := range u.Followers {
			if rel.ID != nil {
				g.addEdge(*rel.ID, *u.ID)
			}
		}
	}

	return g
}

func (g *Graph) addEdge(from, to string) {
	if _, ok := g.names[from]; !ok {
		return
	}
	if _, ok := g.names[to]; !ok {
		return
	}
	g.out[from][to] = true
	g.in[to][from] = true
}

// NumNodes returns the user count.
func (g *Graph) NumNodes() int {
	return len(g.names)
}

// NumEdges returns the follow-relation count (deduplicated).
func (g *Graph) NumEdges() int {
	n := 0
	for _, set := range g.out {
		n += len(set)
	}
	return n
}

// Name returns the display name for a user id.
func (g *Graph) Name(id string) string {
	return g.names[id]
}

// IDs returns all user ids in ascending order.
func (g *Graph) IDs() []string {
	ids := make([]string, 0, len(g.names))
	for id := range g.names {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// InDegree returns how many users follow id.
func (g *Graph) InDegree(id string) int {
	return len(g.in[id])
}

// OutDegree returns how many users id follows.
func (g *Graph) OutDegree(id string) int {
	return len(g.out[id])
}

// MutualFollowers returns the ids following both a and b, ascending.
func (g *Graph) MutualFollowers(a, b string) []string {
	var mutual []string
	for id := range g.in[a] {
		if g.in[b][id] {
			mutual = append(mutual, id)
		}
	}
	sort.Strings(mutual)
	return mutual
}

// SuggestFollows recommends users for id to follow: users followed by the
// users id already follows, excluding id itself and anyone already
// followed. Ranked by how many of id's followings follow the candidate,
// ties by ascending id, capped at limit.
func (g *Graph) SuggestFollows(id string, limit int) []string {
	votes := make(map[string]int)
	for followed := range g.out[id] {
		for candidate := range g.out[followed] {
			if candidate == id || g.out[id][candidate] {
				continue
			}
			votes[candidate]++
		}
	}

	candidates := make([]string, 0, len(votes))
	for c := range votes {
		candidates = append(candidates, c)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if votes[candidates[i]] != votes[candidates[j]] {
			return votes[candidates[i]] > votes[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
