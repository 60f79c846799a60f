package solver

import "errors"

// ErrInvalidOptions indicates MaxIterations < 0 or ConvergenceThreshold < 0.
var ErrInvalidOptions = errors.New("solver: invalid options")
