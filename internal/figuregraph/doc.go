// Package figuregraph views a model.Figure as a plain, undirected,
// integer-indexed adjacency-list graph and exposes the graph-theoretic
// operations the solver stages build on: determination ordering (used by
// repair and the snap adjuster), bridge / two-edge-connected-component
// decomposition (not called by any solver stage), and an
// Edmonds-Karp minimum-cut routine kept as an independent cross-check of
// the bridge decomposition.
//
// The figure graph is always small (a handful to a few dozen vertices),
// simple (no parallel edges or self-loops) and built once, then read-only
// for the lifetime of a solve, so none of these types carry a mutex.
package figuregraph
