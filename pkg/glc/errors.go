package glc

import "errors"

// ErrDegeneratePlane is returned when a camera plane triple cannot be
// parametrized, which would make every generated ray non-finite.
var ErrDegeneratePlane = errors.New("degenerate camera plane")
