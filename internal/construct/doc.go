// Package construct builds an initial pose from scratch by backtracking
// search. DFSPoints assigns each figure vertex, in determination order, to
// a candidate hole-interior lattice point. DFSEdges instead walks the
// figure's edges in a degree-ordered depth-first order, growing the pose
// edge by edge from a chosen start vertex and re-checking each candidate
// against every already-placed neighbor. The edge order is not derived
// from the bridge decomposition, and no precomputed possible-range map
// prunes candidates.
package construct
