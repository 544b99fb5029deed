package figuregraph

import "github.com/katalvlaran/latticepose/internal/model"

// bridgeFrame is one stack frame of the iterative Tarjan bridge walk,
// standing in for a recursive call's local state (current vertex, parent
// edge, and the index of the next neighbor to visit).
type bridgeFrame struct {
	v, parentEdge, childIdx int
}

// Bridges returns every bridge (cut edge) of g using an iterative
// Tarjan low-link walk, grounded on the same low-link recurrence as
// decompose_by_bridges in the reference solver, reworked with an explicit
// stack per the spec's note that deep figures must avoid recursion. Graphs
// need not be connected; every component is visited.
func Bridges(g *Graph) []model.Edge {
	disc := make([]int, g.N)
	low := make([]int, g.N)
	visited := make([]bool, g.N)
	timer := 0
	var bridges []model.Edge

	for s := 0; s < g.N; s++ {
		if visited[s] {
			continue
		}
		stack := []bridgeFrame{{v: s, parentEdge: -1, childIdx: 0}}
		visited[s] = true
		timer++
		disc[s] = timer
		low[s] = timer

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			v := top.v
			if top.childIdx < len(g.Adj[v]) {
				u := g.Adj[v][top.childIdx]
				edgeID := top.childIdx
				top.childIdx++
				if edgeID == top.parentEdge {
					continue
				}
				if !visited[u] {
					visited[u] = true
					timer++
					disc[u] = timer
					low[u] = timer
					stack = append(stack, bridgeFrame{v: u, parentEdge: indexOfNeighbor(g, u, v), childIdx: 0})
				} else if disc[u] < low[v] {
					low[v] = disc[u]
				}
				continue
			}
			// v is fully explored; pop and propagate low[v] to its parent.
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				parent := &stack[len(stack)-1]
				p := parent.v
				if low[v] < low[p] {
					low[p] = low[v]
				}
				if low[v] > disc[p] {
					bridges = append(bridges, model.Edge{V: p, W: v}.Normalized())
				}
			}
		}
	}
	return bridges
}

// indexOfNeighbor returns the position of target within g.Adj[v], used to
// identify the parent edge slot when an iterative frame is pushed.
func indexOfNeighbor(g *Graph, v, target int) int {
	for i, u := range g.Adj[v] {
		if u == target {
			return i
		}
	}
	return -1
}

// TwoEdgeComponents partitions g's vertices into two-edge-connected
// components by removing every bridge and taking connected components of
// what remains.
func TwoEdgeComponents(g *Graph) [][]int {
	bridgeSet := make(map[model.Edge]bool, len(g.Adj))
	for _, b := range Bridges(g) {
		bridgeSet[b.Normalized()] = true
	}

	visited := make([]bool, g.N)
	var components [][]int
	for s := 0; s < g.N; s++ {
		if visited[s] {
			continue
		}
		var comp []int
		queue := []int{s}
		visited[s] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			comp = append(comp, v)
			for _, u := range g.Adj[v] {
				if bridgeSet[(model.Edge{V: v, W: u}).Normalized()] {
					continue
				}
				if !visited[u] {
					visited[u] = true
					queue = append(queue, u)
				}
			}
		}
		components = append(components, comp)
	}
	return components
}
