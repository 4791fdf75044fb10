package condition

import "github.com/koldar/phdtester-go/bundle"

// Outcome is the result of evaluating a Condition against a candidate test
// context.
type Outcome int

const (
	// SUCCESS means the condition held.
	SUCCESS Outcome = iota
	// REJECT means the condition did not hold.
	REJECT
	// NotRelevant means the condition doesn't apply to this context and
	// should be skipped rather than counted as a rejection.
	NotRelevant
)

func (o Outcome) String() string {
	switch o {
	case SUCCESS:
		return "SUCCESS"
	case REJECT:
		return "REJECT"
	case NotRelevant:
		return "NOT_RELEVANT"
	default:
		return "UNKNOWN"
	}
}

// Priority ranks a hyperedge for the two-phase compliance/relevance
// evaluation described in SPEC_FULL.md §4.3.
type Priority int

const (
	// EssentialToRun constraints are cheap pre-filters evaluated first;
	// any rejection from one of these immediately fails a candidate
	// context.
	EssentialToRun Priority = iota
	// Important constraints seed the relevance DFS: any vertex that is
	// the sink of an IMPORTANT in-edge is excluded from the initial DFS
	// seed set.
	Important
	// Normal constraints participate in the relevance DFS but never seed
	// or exclude it.
	Normal
)

func (p Priority) String() string {
	switch p {
	case EssentialToRun:
		return "ESSENTIAL_TO_RUN"
	case Important:
		return "IMPORTANT"
	case Normal:
		return "NORMAL"
	default:
		return "UNKNOWN"
	}
}

// Endpoint pairs an option name with the value it holds in the candidate
// test context being evaluated.
type Endpoint struct {
	Name  string
	Value interface{}
}

// Condition is a pure predicate evaluated over a hyperedge's source and
// sinks, plus the whole test context for cases that need extra context
// (e.g. EqualsTo masks, late-bound values). Implementations must never
// mutate tc.
//
// Repeated evaluation of Accept for the same arguments must return the
// same Outcome — this is the purity invariant SPEC_FULL.md §8 tests.
type Condition interface {
	// Accept evaluates the condition.
	Accept(tc *bundle.TestContext, source Endpoint, sinks []Endpoint) Outcome
	// EnableSinkVisit reports whether a SUCCESS outcome should cause the
	// relevance DFS to recurse into this edge's sinks.
	EnableSinkVisit() bool
	// IsRequired reports whether a REJECT outcome on this edge fails the
	// whole candidate context.
	IsRequired() bool
	// Priority reports the edge's evaluation phase.
	Priority() Priority
}

// base centralizes the three flags shared by every built-in Condition.
type base struct {
	enableSinkVisit bool
	required        bool
	priority        Priority
}

func (b base) EnableSinkVisit() bool  { return b.enableSinkVisit }
func (b base) IsRequired() bool       { return b.required }
func (b base) Priority() Priority     { return b.priority }
