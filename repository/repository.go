package repository

import (
	"fmt"

	"github.com/koldar/phdtester-go/bundle"
	"github.com/koldar/phdtester-go/mask"
)

// Repository is an ordered, append-only store of test contexts.
type Repository struct {
	contexts []*bundle.TestContext
}

// New returns an empty Repository.
func New() *Repository {
	return &Repository{}
}

// Append adds tc to the end of the repository.
func (r *Repository) Append(tc *bundle.TestContext) {
	r.contexts = append(r.contexts, tc)
}

// Len returns the number of stored contexts.
func (r *Repository) Len() int { return len(r.contexts) }

// All returns every stored context, in insertion order. The returned slice
// shares no backing array with the repository's internals.
func (r *Repository) All() []*bundle.TestContext {
	return append([]*bundle.TestContext(nil), r.contexts...)
}

// QueryByMask returns the ordered view of contexts compliant with m, per
// SPEC_FULL.md §4.5: for each option name o with a non-nil mask-option Mo,
// Mo.IsCompliant(i, C[o], full-set) must hold. params late-binds any
// EqualsTo mask-options in m before evaluation.
func (r *Repository) QueryByMask(m mask.TestContextMask, params map[string]interface{}) []*bundle.TestContext {
	for _, opt := range m {
		if opt != nil {
			opt.SetParams(params)
		}
	}

	var out []*bundle.TestContext
	for i, tc := range r.contexts {
		if isCompliant(m, i, tc, r.contexts) {
			out = append(out, tc)
		}
	}
	return out
}

// QueryByFindingMask is QueryByMask plus an assertion that exactly one
// context matches.
func (r *Repository) QueryByFindingMask(m mask.TestContextMask, params map[string]interface{}) (*bundle.TestContext, error) {
	matches := r.QueryByMask(m, params)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: mask %v", ErrNoMatch, m)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %d contexts matched mask %v", ErrAmbiguousMatch, len(matches), m)
	}
}

func isCompliant(m mask.TestContextMask, i int, tc *bundle.TestContext, set []*bundle.TestContext) bool {
	for name, opt := range m {
		if opt == nil {
			continue
		}
		v, _ := tc.Get(name)
		if !opt.IsCompliant(i, v, set) {
			return false
		}
	}
	return true
}
