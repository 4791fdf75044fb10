package enumerator

import (
	"fmt"

	"github.com/koldar/phdtester-go/bundle"
	"github.com/koldar/phdtester-go/depgraph"
	"github.com/koldar/phdtester-go/option"
)

// ValueLists maps an UNDER_TEST or ENVIRONMENT option name to the ordered
// list of values the experiment ranges it over.
type ValueLists map[string][]interface{}

type dimension struct {
	name   string
	values []interface{}
}

// Stream enumerates the deduplicated, relevance-pruned test contexts
// described by g and values, in the deterministic order SPEC_FULL.md §4.4/§5
// mandates: lexicographic Cartesian product in option-declaration order,
// first-seen-order deduplication after relevance pruning. Returning an empty,
// non-nil slice is legal — the caller must handle zero enumerated contexts.
func Stream(g *depgraph.Graph, values ValueLists) ([]*bundle.TestContext, error) {
	dims, err := buildDimensions(g, values)
	if err != nil {
		return nil, err
	}

	stuffSchema := schemaFor(g, option.UnderTest, bundle.StuffUnderTest)
	envSchema := schemaFor(g, option.Environment, bundle.EnvironmentKind)

	seen := make(map[string]struct{})
	out := make([]*bundle.TestContext, 0)

	err = forEachCombination(dims, func(assignment map[string]interface{}) error {
		tc, err := newTestContext(stuffSchema, envSchema, assignment)
		if err != nil {
			return err
		}
		pruned, ok := g.Check(tc)
		if !ok {
			return nil
		}
		key := pruned.Key()
		if _, dup := seen[key]; dup {
			return nil
		}
		seen[key] = struct{}{}
		out = append(out, pruned)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func buildDimensions(g *depgraph.Graph, values ValueLists) ([]dimension, error) {
	var dims []dimension
	for _, o := range g.Options() {
		if o.Belonging != option.UnderTest && o.Belonging != option.Environment {
			continue
		}
		vs, ok := values[o.Name]
		if !ok || len(vs) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingValueList, o.Name)
		}
		dims = append(dims, dimension{name: o.Name, values: vs})
	}
	return dims, nil
}

func schemaFor(g *depgraph.Graph, belonging option.Belonging, kind bundle.Kind) *bundle.Schema {
	opts := g.OptionsByBelonging(belonging)
	names := make([]string, 0, len(opts))
	for _, o := range opts {
		names = append(names, o.Name)
	}
	return bundle.NewSchema(kind, names...)
}

func newTestContext(stuffSchema, envSchema *bundle.Schema, assignment map[string]interface{}) (*bundle.TestContext, error) {
	stuff := bundle.New(stuffSchema)
	env := bundle.New(envSchema)
	for _, n := range stuffSchema.Names {
		if v, ok := assignment[n]; ok {
			if err := stuff.Set(n, v); err != nil {
				return nil, err
			}
		}
	}
	for _, n := range envSchema.Names {
		if v, ok := assignment[n]; ok {
			if err := env.Set(n, v); err != nil {
				return nil, err
			}
		}
	}
	return bundle.NewTestContext(stuff, env)
}

// forEachCombination walks the lexicographic Cartesian product of dims,
// varying the first-declared dimension slowest, calling visit once per
// combination with a fresh assignment map.
func forEachCombination(dims []dimension, visit func(map[string]interface{}) error) error {
	assignment := make(map[string]interface{}, len(dims))

	var rec func(i int) error
	rec = func(i int) error {
		if i == len(dims) {
			clone := make(map[string]interface{}, len(assignment))
			for k, v := range assignment {
				clone[k] = v
			}
			return visit(clone)
		}
		for _, v := range dims[i].values {
			assignment[dims[i].name] = v
			if err := rec(i + 1); err != nil {
				return err
			}
		}
		return nil
	}
	return rec(0)
}
