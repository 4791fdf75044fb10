// Package option defines the typed parameter descriptors that every other
// package in phdtester-go builds on: a named value with a declared type,
// a belonging (who supplies it and how many values it takes), an optional
// default, and — for discrete options — an enumerated domain.
//
// Options are immutable once built: a Graph (see package depgraph) is wired
// together at program start and never mutated afterward.
package option
