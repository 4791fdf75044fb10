package depgraph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/koldar/phdtester-go/condition"
	"github.com/koldar/phdtester-go/hypergraph"
	"github.com/koldar/phdtester-go/option"
)

// Builder is a fluent surface for declaring options and the constraints
// between them, grounded on lvlath/builder's BuildGraph/Constructor pattern:
// every method mutates the builder's internal hypergraph and returns the
// builder itself for chaining, and every error is accumulated rather than
// panicking — Build() surfaces them all at once.
type Builder struct {
	hg   *hypergraph.Graph[*option.Option, condition.Condition]
	errs []error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{hg: hypergraph.New[*option.Option, condition.Condition]()}
}

func (b *Builder) fail(err error) *Builder {
	b.errs = append(b.errs, err)
	return b
}

func (b *Builder) has(name string) bool {
	return b.hg.HasVertex(name)
}

// AddFlag declares a boolean Option with no domain restriction beyond
// {true,false}.
func (b *Builder) AddFlag(belonging option.Belonging, name, description string) *Builder {
	return b.addOption(belonging, name, description, option.Bool, nil, false, nil)
}

// AddChoice declares a discrete Option restricted to domain.
func (b *Builder) AddChoice(belonging option.Belonging, name, description string, vt option.ValueType, domain []interface{}, defaultValue interface{}, hasDefault bool) *Builder {
	return b.addOption(belonging, name, description, vt, domain, hasDefault, defaultValue)
}

// AddValue declares a scalar Option with no enumerated domain.
func (b *Builder) AddValue(belonging option.Belonging, name, description string, vt option.ValueType, defaultValue interface{}, hasDefault bool) *Builder {
	return b.addOption(belonging, name, description, vt, nil, hasDefault, defaultValue)
}

// AddMultivalue declares a list-typed Option (IntList/FloatList/BoolList/
// StrList/PercentageIntList).
func (b *Builder) AddMultivalue(belonging option.Belonging, name, description string, vt option.ValueType) *Builder {
	if !vt.IsList() {
		return b.fail(fmt.Errorf("depgraph: AddMultivalue(%s): %w: %s is not a list type", name, ErrUnknownOption, vt))
	}
	return b.addOption(belonging, name, description, vt, nil, false, nil)
}

func (b *Builder) addOption(belonging option.Belonging, name, description string, vt option.ValueType, domain []interface{}, hasDefault bool, defaultValue interface{}) *Builder {
	if b.has(name) {
		return b.fail(fmt.Errorf("depgraph: %q: %w", name, ErrDuplicateOption))
	}
	o, err := option.New(name, description, vt, belonging)
	if err != nil {
		return b.fail(err)
	}
	if len(domain) > 0 {
		o.WithDomain(domain...)
	}
	if hasDefault {
		o.WithDefault(defaultValue)
	}
	if err := b.hg.AddVertex(name, o); err != nil {
		return b.fail(err)
	}
	return b
}

func (b *Builder) requireKnown(names ...string) error {
	for _, n := range names {
		if !b.has(n) {
			return fmt.Errorf("depgraph: %q: %w", n, ErrUnknownOption)
		}
	}
	return nil
}

// ConstraintOptionValueNeedsOption adds an IMPORTANT hyperedge: if src's
// value is one of vals, dst must be non-null.
func (b *Builder) ConstraintOptionValueNeedsOption(src string, vals []interface{}, dst string) *Builder {
	if err := b.requireKnown(src, dst); err != nil {
		return b.fail(err)
	}
	cond := condition.NewInSetImpliesNotNullSink(true, true, condition.Important, vals)
	if err := b.hg.AddEdge(src, []string{dst}, cond); err != nil {
		return b.fail(err)
	}
	return b
}

// ConstraintOptionUsableOnlyWhen adds a NORMAL hyperedge relating src's
// value to dst's value via predicate.
func (b *Builder) ConstraintOptionUsableOnlyWhen(src, dst string, predicate func(srcValue, dstValue interface{}) bool) *Builder {
	if err := b.requireKnown(src, dst); err != nil {
		return b.fail(err)
	}
	cond := condition.NewSimplePairCondition(true, true, condition.Normal, predicate)
	if err := b.hg.AddEdge(src, []string{dst}, cond); err != nil {
		return b.fail(err)
	}
	return b
}

// ConstraintMultipleNeedsToHappen adds a NORMAL hyperedge over names[0]
// (source) and names[1:] (sinks) that is SUCCESS iff predicate holds.
func (b *Builder) ConstraintMultipleNeedsToHappen(names []string, predicate condition.Predicate) *Builder {
	return b.addMultiEdge(names, condition.NewNeedsToHappen(true, true, condition.Normal, predicate))
}

// ConstraintMultipleCantHappen adds a NORMAL hyperedge over names[0]
// (source) and names[1:] (sinks) that is SUCCESS iff predicate does NOT
// hold.
func (b *Builder) ConstraintMultipleCantHappen(names []string, predicate condition.Predicate) *Builder {
	return b.addMultiEdge(names, condition.NewCantHappen(true, true, condition.Normal, predicate))
}

// ConstraintProhibitCombination adds a NORMAL hyperedge rejecting the exact
// value tuple given in combo (option name -> forbidden value), treating the
// first name (in map iteration via sortedKeys) as source.
func (b *Builder) ConstraintProhibitCombination(combo map[string]interface{}) *Builder {
	names, pred := tupleEqualityPredicate(combo)
	return b.addMultiEdge(names, condition.NewCantHappen(false, true, condition.Normal, pred))
}

// ConstraintEnsureCombination adds a NORMAL hyperedge requiring the exact
// value tuple given in combo; a null value for any of its names does not
// match the tuple and so rejects the candidate.
func (b *Builder) ConstraintEnsureCombination(combo map[string]interface{}) *Builder {
	names, pred := tupleEqualityPredicate(combo)
	return b.addMultiEdge(names, condition.NewNeedsToHappen(false, true, condition.Normal, pred))
}

// ConstraintQuickWhichHasToHappen adds a cheap ESSENTIAL_TO_RUN pre-filter:
// the candidate context is dropped immediately unless predicate holds.
func (b *Builder) ConstraintQuickWhichHasToHappen(names []string, predicate condition.Predicate) *Builder {
	return b.addMultiEdge(names, condition.NewNeedsToHappen(false, true, condition.EssentialToRun, predicate))
}

// ConstraintQuickCannotHappen adds a cheap ESSENTIAL_TO_RUN pre-filter: the
// candidate context is dropped immediately if predicate holds.
func (b *Builder) ConstraintQuickCannotHappen(names []string, predicate condition.Predicate) *Builder {
	return b.addMultiEdge(names, condition.NewCantHappen(false, true, condition.EssentialToRun, predicate))
}

func (b *Builder) addMultiEdge(names []string, cond condition.Condition) *Builder {
	if len(names) < 2 {
		return b.fail(ErrEmptyConstraintNames)
	}
	if err := b.requireKnown(names...); err != nil {
		return b.fail(err)
	}
	if err := b.hg.AddEdge(names[0], names[1:], cond); err != nil {
		return b.fail(err)
	}
	return b
}

// tupleEqualityPredicate returns a deterministically-ordered name list (the
// map's keys, sorted) and a Predicate that holds iff every endpoint's value
// equals combo[name].
func tupleEqualityPredicate(combo map[string]interface{}) ([]string, condition.Predicate) {
	names := sortedKeys(combo)
	pred := condition.PredicateFunc(func(endpoints []condition.Endpoint) bool {
		want := make(map[string]interface{}, len(endpoints))
		for _, e := range endpoints {
			want[e.Name] = e.Value
		}
		for name, expected := range combo {
			if want[name] != expected {
				return false
			}
		}
		return true
	})
	return names, pred
}

func sortedKeys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Build finalizes the graph, returning ErrBuildFailed (wrapping every
// accumulated error) if any AddX/Constraint* call failed.
func (b *Builder) Build() (*Graph, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(append([]error{ErrBuildFailed}, b.errs...)...)
	}
	return &Graph{hg: b.hg}, nil
}
