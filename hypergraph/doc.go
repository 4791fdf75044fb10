// Package hypergraph implements a generic, typed, multi-directed
// hypergraph: vertices keyed by a unique string ID, and hyperedges with one
// source vertex and one or more sink vertices. It is the C2 primitive layer
// beneath package depgraph, which specializes it into the option dependency
// graph.
//
// A hyperedge is "multi-directed" in the sense used throughout lvlath: the
// same (source, sinks) pair may be connected by more than one hyperedge, as
// long as their payloads differ — each insertion appends to an ordered edge
// list rather than overwriting.
//
// Graph is generic over the vertex payload type V and the hyperedge payload
// type E, so depgraph can key vertices by *option.Option and hyperedges by
// a condition.Condition without either package reaching into the other's
// internals.
package hypergraph
