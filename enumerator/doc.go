// Package enumerator implements the combination enumerator described in
// SPEC_FULL.md §4.4 (C5): given an option dependency graph (package
// depgraph) and a per-option value list for every UNDER_TEST and ENVIRONMENT
// option, it produces the deduplicated, relevance-pruned stream of test
// contexts a caller (typically package orchestrator) drives one at a time.
//
// The algorithm is the lexicographic Cartesian product of the value lists in
// option-declaration order, filtered through depgraph.Graph.Check, then
// deduplicated by equality over the pruned bundle — first-seen order is
// preserved throughout, which is what makes the whole pipeline
// deterministic end to end.
package enumerator
