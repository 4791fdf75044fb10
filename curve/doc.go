// Package curve implements the curve pipeline described in SPEC_FULL.md §4.7
// (C8): an ordered list of Changer stages threaded over a funcdict.FunctionsDict,
// each stage declaring whether it requires its input to already share a
// single x axis (RequireSameXAxis) and reporting, on exit, the resulting
// AbscissaStatus so the pipeline can tell whether the next same-axis-
// requiring stage needs a normalization pass first.
package curve
