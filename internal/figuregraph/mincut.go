package figuregraph

import "github.com/katalvlaran/latticepose/internal/model"

// flowArc is one directed residual arc: to is the head vertex, cap is the
// remaining residual capacity, and rev is the index of the paired reverse
// arc in g.arcs[to].
type flowArc struct {
	to, cap, rev int
}

type flowNet struct {
	arcs [][]flowArc
}

func newFlowNet(n int) *flowNet {
	return &flowNet{arcs: make([][]flowArc, n)}
}

// addEdge installs a unit-capacity undirected edge as two opposing unit-cap
// arcs plus their zero-cap reverse twins, the standard residual-graph
// encoding for treating undirected edges in a max-flow computation.
func (f *flowNet) addEdge(u, v int) {
	f.arcs[u] = append(f.arcs[u], flowArc{to: v, cap: 1, rev: len(f.arcs[v])})
	f.arcs[v] = append(f.arcs[v], flowArc{to: u, cap: 0, rev: len(f.arcs[u]) - 1})
	f.arcs[v] = append(f.arcs[v], flowArc{to: u, cap: 1, rev: len(f.arcs[u])})
	f.arcs[u] = append(f.arcs[u], flowArc{to: v, cap: 0, rev: len(f.arcs[v]) - 1})
}

// MinCut computes a minimum edge cut separating s from t in g (treated as
// an undirected unit-capacity network) via Edmonds-Karp, grounded on the
// reference solver's maximum_flow/minimum_cut routines. It returns the
// original figure edges crossing the cut and the cut's value (equal to the
// max flow by the max-flow-min-cut theorem).
func MinCut(g *Graph, s, t int) ([]model.Edge, int, error) {
	if g.N == 0 {
		return nil, 0, ErrEmptyGraph
	}
	if s < 0 || s >= g.N || t < 0 || t >= g.N {
		return nil, 0, ErrVertexOutOfRange
	}

	net := newFlowNet(g.N)
	seen := make(map[model.Edge]bool)
	for v := 0; v < g.N; v++ {
		for _, u := range g.Adj[v] {
			e := (model.Edge{V: v, W: u}).Normalized()
			if seen[e] {
				continue
			}
			seen[e] = true
			net.addEdge(e.V, e.W)
		}
	}

	value := 0
	for {
		parentVertex := make([]int, g.N)
		for i := range parentVertex {
			parentVertex[i] = -1
		}
		parentArc := bfsAugment(net, s, t, parentVertex)
		if parentArc == nil {
			break
		}
		// Walk back from t to s along the augmenting path, saturating it.
		v := t
		for v != s {
			p := parentVertex[v]
			arcIdx := parentArc[v]
			a := &net.arcs[p][arcIdx]
			a.cap--
			net.arcs[a.to][a.rev].cap++
			v = p
		}
		value++
	}

	reachable := make([]bool, g.N)
	queue := []int{s}
	reachable[s] = true
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, a := range net.arcs[v] {
			if a.cap > 0 && !reachable[a.to] {
				reachable[a.to] = true
				queue = append(queue, a.to)
			}
		}
	}

	var cut []model.Edge
	for e := range seen {
		if reachable[e.V] != reachable[e.W] {
			cut = append(cut, e)
		}
	}
	return cut, value, nil
}

// bfsAugment finds a shortest augmenting path from s to t in the residual
// graph, filling parentVertex/returning the parent arc used to reach each
// vertex, or nil if t is unreachable. This is the Edmonds-Karp
// specialization of Ford-Fulkerson.
func bfsAugment(f *flowNet, s, t int, parentVertex []int) []int {
	parentArc := make([]int, len(f.arcs))
	parentVertex[s] = s
	queue := []int{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if v == t {
			break
		}
		for i, a := range f.arcs[v] {
			if a.cap > 0 && parentVertex[a.to] == -1 {
				parentVertex[a.to] = v
				parentArc[a.to] = i
				queue = append(queue, a.to)
			}
		}
	}
	if parentVertex[t] == -1 {
		return nil
	}
	return parentArc
}
