// Package manifest loads a declarative YAML description of an experiment's
// options and constraints into a *depgraph.Builder, grounded on
// PhdTester/phdTester/options_builder.py's OptionBuilder/OptionGraph: the
// Python original re-exposes add_flag/add_choice/add_value/add_multivalue
// and the constraint_* family as a fluent object a research field builds
// once; package manifest replays the same calls from data instead of code,
// so a new experiment can be declared without writing a line of Go.
//
// Scope. Three of depgraph.Builder's eight constraint kinds
// (ConstraintOptionValueNeedsOption, ConstraintProhibitCombination,
// ConstraintEnsureCombination) take plain data — option names and a fixed
// value tuple — and are fully supported here. The remaining five
// (ConstraintOptionUsableOnlyWhen, ConstraintMultipleNeedsToHappen/
// CantHappen, ConstraintQuickWhichHasToHappen/CannotHappen) take an
// arbitrary Go predicate over live option values; a manifest file cannot
// name a closure, so they are out of scope for the declarative loader.
// Research fields whose constraints need one of those call depgraph.Builder
// directly, optionally seeding it with manifest.Load's Builder as a
// starting point.
package manifest
