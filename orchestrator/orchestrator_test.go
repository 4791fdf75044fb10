package orchestrator_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/koldar/phdtester-go/bundle"
	"github.com/koldar/phdtester-go/orchestrator"
	"github.com/koldar/phdtester-go/resource"
	"github.com/koldar/phdtester-go/resource/memstore"
)

func newContext(t *testing.T, size int64) *bundle.TestContext {
	t.Helper()
	sut := bundle.New(bundle.NewSchema(bundle.StuffUnderTest, "algorithm"))
	env := bundle.New(bundle.NewSchema(bundle.EnvironmentKind, "size"))
	require.NoError(t, sut.Set("algorithm", "BUBBLE"))
	require.NoError(t, env.Set("size", size))
	tc, err := bundle.NewTestContext(sut, env)
	require.NoError(t, err)
	return tc
}

// builderFor returns a CommandBuilder that, via the shell, writes a fixed
// payload to "out.txt" in the working directory and declares that file as
// the test context's sole binary output keyed by its size.
func builderFor(t *testing.T, workDir string) orchestrator.CommandBuilder {
	t.Helper()
	return func(tc *bundle.TestContext) (orchestrator.Invocation, error) {
		size, _ := tc.Get("size")
		key := resource.Key{Path: "runs", Name: fmt.Sprintf("k%v", size), DataType: resource.Binary}
		return orchestrator.Invocation{
			Command: "sh",
			Args:    []string{"-c", fmt.Sprintf("printf 'result-%v' > out.txt", size)},
			WorkDir: workDir,
			Outputs: []orchestrator.OutputArtifact{{Key: key, RelativePath: "out.txt"}},
		}, nil
	}
}

func TestOrchestrator_RunThenRerun_SecondRunIsFullySkipped(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	dir := t.TempDir()
	build := builderFor(t, dir)

	orc := orchestrator.New(store, build, zerolog.Nop())

	contexts := []*bundle.TestContext{newContext(t, 1), newContext(t, 2)}

	outcomes, err := orc.Run(ctx, contexts)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		require.Equal(t, orchestrator.Completed, o.State)
	}

	k1 := resource.Key{Path: "runs", Name: "k1", DataType: resource.Binary}
	k2 := resource.Key{Path: "runs", Name: "k2", DataType: resource.Binary}
	v1, err := store.Get(ctx, k1)
	require.NoError(t, err)
	require.Equal(t, "result-1", string(v1))
	v2, err := store.Get(ctx, k2)
	require.NoError(t, err)
	require.Equal(t, "result-2", string(v2))

	// Rerun: every context transitions NEW -> SKIPPED, no external process
	// spawned, artifact store contents unchanged.
	second, err := orc.Run(ctx, contexts)
	require.NoError(t, err)
	require.Len(t, second, 2)
	for _, o := range second {
		require.Equal(t, orchestrator.Skipped, o.State)
	}

	afterV1, err := store.Get(ctx, k1)
	require.NoError(t, err)
	require.Equal(t, v1, afterV1)
}

func TestOrchestrator_PropagateAbortsOnFirstFailure(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	build := func(tc *bundle.TestContext) (orchestrator.Invocation, error) {
		return orchestrator.Invocation{
			Command: "sh",
			Args:    []string{"-c", "exit 7"},
			WorkDir: t.TempDir(),
		}, nil
	}
	orc := orchestrator.New(store, build, zerolog.Nop())

	contexts := []*bundle.TestContext{newContext(t, 1), newContext(t, 2)}
	outcomes, err := orc.Run(ctx, contexts)
	require.Error(t, err)
	require.Len(t, outcomes, 1)
	require.Equal(t, orchestrator.Failed, outcomes[0].State)

	var failure *orchestrator.ExternalProgramFailureError
	require.ErrorAs(t, err, &failure)
	require.Equal(t, 7, failure.ExitCode)
}

func TestOrchestrator_ContinueOnFailureProcessesEveryContext(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	build := func(tc *bundle.TestContext) (orchestrator.Invocation, error) {
		return orchestrator.Invocation{Command: "sh", Args: []string{"-c", "exit 1"}, WorkDir: t.TempDir()}, nil
	}
	orc := orchestrator.New(store, build, zerolog.Nop())
	orc.FailurePolicy = orchestrator.ContinueOnFailure

	contexts := []*bundle.TestContext{newContext(t, 1), newContext(t, 2)}
	outcomes, err := orc.Run(ctx, contexts)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		require.Equal(t, orchestrator.Failed, o.State)
		require.Error(t, o.Err)
	}
}
