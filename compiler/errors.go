package compiler

import "errors"

// ErrEmptyGraph indicates Compile was called against a graph with zero
// nodes.
var ErrEmptyGraph = errors.New("compiler: graph has no nodes")

// ErrMissingWeight indicates the weights map is missing an entry for an
// edge the graph reports.
var ErrMissingWeight = errors.New("compiler: no weight recorded for edge")
