// Package anneal implements the local-search stage: a single-vertex move
// operator shared by two selectable drivers, HillClimb (accepts only
// dislike-improving moves) and Anneal (a simulated-annealing loop blending
// a dislike score with a spread-encouraging variance score, plus a
// compound graph-distance-weighted displacement-and-repair operator).
package anneal
