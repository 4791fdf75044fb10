package hypergraph

import "errors"

// ErrDuplicateVertex indicates AddVertex was called with an ID already
// present in the graph.
var ErrDuplicateVertex = errors.New("hypergraph: duplicate vertex id")

// ErrVertexNotFound indicates an operation referenced a vertex ID absent
// from the graph.
var ErrVertexNotFound = errors.New("hypergraph: vertex not found")

// ErrEmptySinks indicates AddEdge was called with zero sink vertices; a
// hyperedge requires at least one.
var ErrEmptySinks = errors.New("hypergraph: hyperedge requires at least one sink")
