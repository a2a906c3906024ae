package graph

import (
	"sort"
)

// UserStat pairs a user with a degree count for ranking queries.
type UserStat struct {
	ID    string `json:"id" msgpack:"id"`
	Name  string `json:"name" msgpack:"name"`
	Count int    `json:"count" msgpack:"count"`
}

// Metrics summarizes the network.
type Metrics struct {
	NumNodes     int     `json:"num_nodes" msgpack:"num_nodes"`
	NumEdges     int     `json:"num_edges" msgpack:"num_edges"`
	Density      float64 `json:"density" msgpack:"density"`
	AvgInDegree  float64 `json:"avg_in_degree" msgpack:"avg_in_degree"`
	AvgOutDegree float64 `json:"avg_out_degree" msgpack:"avg_out_degree"`

	// MostInfluential has the most followers, MostActive follows the most.
	MostInfluential *UserStat `json:"most_influential,omitempty" msgpack:"most_influential,omitempty"`
	MostActive      *UserStat `json:"most_active,omitempty" msgpack:"most_active,omitempty"`

	TopInfluencers []UserStat `json:"top_influencers" msgpack:"top_influencers"`
	TopActive      []UserStat `json:"top_active" msgpack:"top_active"`
}

// ComputeMetrics derives the summary. Rankings are deterministic: degree
// descending, then id ascending.
func (g *Graph) ComputeMetrics(topN int) Metrics {
	m := Metrics{
		NumNodes: g.NumNodes(),
		NumEdges: g.NumEdges(),
	}

	if m.NumNodes > 1 {
		m.Density = float64(m.NumEdges) / float64(m.NumNodes*(m.NumNodes-1))
	}
	if m.NumNodes > 0 {
		m.AvgInDegree = float64(m.NumEdges) / float64(m.NumNodes)
		m.AvgOutDegree = m.AvgInDegree
	}

	m.TopInfluencers = g.rank(g.InDegree, topN)
	m.TopActive = g.rank(g.OutDegree, topN)
	if len(m.TopInfluencers) > 0 {
		m.MostInfluential = &m.TopInfluencers[0]
	}
	if len(m.TopActive) > 0 {
		m.MostActive = &m.TopActive[0]
	}

	return m
}

func (g *Graph) rank(degree func(string) int, topN int) []UserStat {
	stats := make([]UserStat, 0, len(g.names))
	for _, id := range g.IDs() {
		stats = append(stats, UserStat{ID: id, Name: g.names[id], Count: degree(id)})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].ID < stats[j].ID
	})
	if topN > 0 && len(stats) > topN {
		stats = stats[:topN]
	}
	return stats
}
