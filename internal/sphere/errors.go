package sphere

import "errors"

// ErrInvalidCount indicates a point count below one.
var ErrInvalidCount = errors.New("sphere: point count must be positive")
