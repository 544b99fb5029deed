// Package ioformat decodes the solver's input JSON into the internal/model
// and internal/geom types, and encodes a solved pose back into the output
// JSON shape, grounded on original_source/solver/src/inout.rs's
// InputJSON/FigureJSON/BonusInJSON/PoseJSON/BonusOutJSON.
package ioformat
