package anneal

import "errors"

// ErrNeighborhoodEmpty names the case where no admissible ring point exists
// for the chosen vertex. The move operators report that case as a false ok
// result, not as this error, and the loops treat the iteration's proposed
// move as rejected, not as a hard failure.
var ErrNeighborhoodEmpty = errors.New("anneal: neighborhood empty for the chosen vertex")
