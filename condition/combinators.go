package condition

// Predicate is a named, one-method stand-in for the bare callables the
// original design passed around (conditions, extractors). Representing them
// as an interface rather than a func value keeps them inspectable and
// composable via And/Or/Not instead of hand-rolled closures.
type Predicate interface {
	Eval(endpoints []Endpoint) bool
}

// PredicateFunc adapts a plain function to the Predicate interface.
type PredicateFunc func(endpoints []Endpoint) bool

func (f PredicateFunc) Eval(endpoints []Endpoint) bool { return f(endpoints) }

type andPredicate struct{ ps []Predicate }

func (a andPredicate) Eval(endpoints []Endpoint) bool {
	for _, p := range a.ps {
		if !p.Eval(endpoints) {
			return false
		}
	}
	return true
}

type orPredicate struct{ ps []Predicate }

func (o orPredicate) Eval(endpoints []Endpoint) bool {
	for _, p := range o.ps {
		if p.Eval(endpoints) {
			return true
		}
	}
	return false
}

type notPredicate struct{ p Predicate }

func (n notPredicate) Eval(endpoints []Endpoint) bool { return !n.p.Eval(endpoints) }

// And returns a Predicate that holds iff every given predicate holds.
func And(ps ...Predicate) Predicate { return andPredicate{ps: ps} }

// Or returns a Predicate that holds iff at least one given predicate holds.
func Or(ps ...Predicate) Predicate { return orPredicate{ps: ps} }

// Not negates a Predicate.
func Not(p Predicate) Predicate { return notPredicate{p: p} }
