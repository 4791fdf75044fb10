package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koldar/phdtester-go/bundle"
	"github.com/koldar/phdtester-go/manifest"
	"github.com/koldar/phdtester-go/option"
)

const sortingManifest = `
options:
  - name: algorithm
    belonging: UNDER_TEST
    type: Str
    description: sorting algorithm under test
    domain: ["BUBBLE", "MERGE"]
  - name: heuristic
    belonging: UNDER_TEST
    type: Str
    description: merge heuristic, only relevant when algorithm is MERGE
  - name: size
    belonging: ENVIRONMENT
    type: Int
    description: input size
  - name: verbose
    belonging: SETTINGS
    flag: true
    description: verbose logging
  - name: seeds
    belonging: ENVIRONMENT
    type: IntList
    multivalue: true
    description: random seeds to repeat each run with

constraints:
  - kind: option_value_needs_option
    source: algorithm
    values: ["MERGE"]
    target: heuristic
`

func TestLoad_BuildsGraphMatchingHandWrittenBuilder(t *testing.T) {
	b, err := manifest.Load([]byte(sortingManifest))
	require.NoError(t, err)

	g, err := b.Build()
	require.NoError(t, err)

	algo, ok := g.Option("algorithm")
	require.True(t, ok)
	require.Equal(t, option.UnderTest, algo.Belonging)
	require.Equal(t, option.Str, algo.Type)
	require.True(t, algo.IsDiscrete())
	require.True(t, algo.InDomain("BUBBLE"))
	require.False(t, algo.InDomain("QUICK"))

	size, ok := g.Option("size")
	require.True(t, ok)
	require.Equal(t, option.Environment, size.Belonging)
	require.Equal(t, option.Int, size.Type)

	verbose, ok := g.Option("verbose")
	require.True(t, ok)
	require.Equal(t, option.Bool, verbose.Type)

	seeds, ok := g.Option("seeds")
	require.True(t, ok)
	require.Equal(t, option.IntList, seeds.Type)

	require.Len(t, g.Options(), 5)
}

func TestLoad_OptionValueNeedsOptionConstraintIsWired(t *testing.T) {
	b, err := manifest.Load([]byte(sortingManifest))
	require.NoError(t, err)
	g, err := b.Build()
	require.NoError(t, err)

	sut := bundle.New(bundle.NewSchema(bundle.StuffUnderTest, "algorithm", "heuristic"))
	env := bundle.New(bundle.NewSchema(bundle.EnvironmentKind, "size"))
	require.NoError(t, sut.Set("algorithm", "MERGE"))
	require.NoError(t, env.Set("size", int64(10)))
	tc, err := bundle.NewTestContext(sut, env)
	require.NoError(t, err)

	_, ok := g.Check(tc)
	require.False(t, ok, "algorithm=MERGE with no heuristic must fail the IMPORTANT constraint")
}

func TestLoad_WithDefaultAndDomain(t *testing.T) {
	data := `
options:
  - name: algorithm
    belonging: UNDER_TEST
    type: Str
    domain: ["BUBBLE", "MERGE"]
    default: "BUBBLE"
`
	b, err := manifest.Load([]byte(data))
	require.NoError(t, err)
	g, err := b.Build()
	require.NoError(t, err)

	algo, ok := g.Option("algorithm")
	require.True(t, ok)
	require.True(t, algo.HasDefault)
	require.Equal(t, "BUBBLE", algo.Default)
}

func TestLoad_ProhibitAndEnsureCombination(t *testing.T) {
	data := `
options:
  - name: algorithm
    belonging: UNDER_TEST
    type: Str
  - name: heuristic
    belonging: UNDER_TEST
    type: Str

constraints:
  - kind: prohibit_combination
    combo: {algorithm: "BUBBLE", heuristic: "QUICK"}
  - kind: ensure_combination
    combo: {algorithm: "MERGE", heuristic: "QUICK"}
`
	b, err := manifest.Load([]byte(data))
	require.NoError(t, err)
	_, err = b.Build()
	require.NoError(t, err)
}

func TestLoad_UnknownConstraintKindFails(t *testing.T) {
	data := `
options:
  - name: algorithm
    belonging: UNDER_TEST
    type: Str
constraints:
  - kind: not_a_real_kind
    source: algorithm
`
	_, err := manifest.Load([]byte(data))
	require.Error(t, err)
}

func TestLoad_UnknownBelongingFails(t *testing.T) {
	data := `
options:
  - name: algorithm
    belonging: WEIRD
    type: Str
`
	_, err := manifest.Load([]byte(data))
	require.Error(t, err)
}
