package placer

import "errors"

// ErrNoValidPlacement names the case where no orientation/translation
// combination in the swept range produces a valid pose. Place itself reports
// that case as Result.Found == false and does not return this error.
var ErrNoValidPlacement = errors.New("placer: no valid placement found in sweep range")
