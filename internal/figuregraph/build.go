package figuregraph

import "github.com/katalvlaran/latticepose/internal/model"

// BuildAdjacency builds the adjacency-list view of a figure with n vertices
// and the given edges. Edges must reference vertices in [0,n); callers
// (internal/model / internal/ioformat) are responsible for rejecting
// malformed input before this is called.
func BuildAdjacency(n int, edges []model.Edge) *Graph {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e.V] = append(adj[e.V], e.W)
		adj[e.W] = append(adj[e.W], e.V)
	}
	return &Graph{N: n, Adj: adj, Edges: edges}
}
