// Package orchestrator implements the glue named in SPEC_FULL.md §4.9 (C10):
// for every compliant test context, run a caller-supplied external program,
// relocate its declared output artifacts into a resource.Manager, and track
// the per-context state machine
//
//	NEW -> SUBMITTED -> RUNNING -> COMPLETED | FAILED | SKIPPED
//
// Submission and completion are instrumented with
// github.com/prometheus/client_golang counters and a duration histogram,
// held on an explicit *Metrics field rather than registered against the
// global default registry.
package orchestrator
