package ioformat

import "errors"

// ErrInvalidInput is returned for any malformed input JSON: bad shape,
// out-of-range vertex indices, self-loop edges, or an unknown bonus name.
var ErrInvalidInput = errors.New("ioformat: invalid input")
