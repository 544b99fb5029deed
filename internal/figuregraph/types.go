package figuregraph

import "github.com/katalvlaran/latticepose/internal/model"

// Graph is a simple undirected graph over vertex indices [0,N), stored as an
// adjacency list. Edges is kept alongside Adj so callers that need to walk
// original edges (rather than neighbor lists) don't have to reconstruct it.
type Graph struct {
	N     int
	Adj   [][]int
	Edges []model.Edge
}

// Degree returns len(g.Adj[v]).
func (g *Graph) Degree(v int) int {
	return len(g.Adj[v])
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	for _, w := range g.Adj[u] {
		if w == v {
			return true
		}
	}
	return false
}
