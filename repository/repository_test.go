package repository_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koldar/phdtester-go/bundle"
	"github.com/koldar/phdtester-go/mask"
	"github.com/koldar/phdtester-go/repository"
)

func newContext(t *testing.T, algorithm string, size int64) *bundle.TestContext {
	t.Helper()
	sut := bundle.New(bundle.NewSchema(bundle.StuffUnderTest, "algorithm"))
	env := bundle.New(bundle.NewSchema(bundle.EnvironmentKind, "size"))
	require.NoError(t, sut.Set("algorithm", algorithm))
	require.NoError(t, env.Set("size", size))
	tc, err := bundle.NewTestContext(sut, env)
	require.NoError(t, err)
	return tc
}

func TestRepository_QueryByMask(t *testing.T) {
	r := repository.New()
	r.Append(newContext(t, "BUBBLE", 10))
	r.Append(newContext(t, "MERGE", 10))
	r.Append(newContext(t, "MERGE", 100))

	m := mask.TestContextMask{"algorithm": mask.NewEquals("MERGE")}
	matches := r.QueryByMask(m, nil)
	require.Len(t, matches, 2)
	v, _ := matches[0].Get("size")
	require.Equal(t, int64(10), v)
}

func TestRepository_QueryByFindingMask(t *testing.T) {
	r := repository.New()
	r.Append(newContext(t, "BUBBLE", 10))
	r.Append(newContext(t, "MERGE", 10))

	m := mask.TestContextMask{"algorithm": mask.NewEquals("MERGE")}
	found, err := r.QueryByFindingMask(m, nil)
	require.NoError(t, err)
	v, _ := found.Get("size")
	require.Equal(t, int64(10), v)

	_, err = r.QueryByFindingMask(mask.TestContextMask{"algorithm": mask.NewEquals("QUICK")}, nil)
	require.ErrorIs(t, err, repository.ErrNoMatch)

	r.Append(newContext(t, "MERGE", 999))
	_, err = r.QueryByFindingMask(m, nil)
	require.ErrorIs(t, err, repository.ErrAmbiguousMatch)
}

func TestRepository_EqualsToLateBound(t *testing.T) {
	r := repository.New()
	r.Append(newContext(t, "BUBBLE", 10))
	r.Append(newContext(t, "MERGE", 10))

	m := mask.TestContextMask{"algorithm": mask.NewEqualsTo("wanted")}
	matches := r.QueryByMask(m, map[string]interface{}{"wanted": "MERGE"})
	require.Len(t, matches, 1)
}
