// Package repository implements the test-context repository described in
// SPEC_FULL.md §4.5 (C6): an ordered, append-only list of test contexts,
// queryable by mask.TestContextMask. A query returns a view — still ordered,
// stable relative to the full repository — of the contexts compliant with
// the mask.
package repository
