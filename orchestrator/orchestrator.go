package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/koldar/phdtester-go/bundle"
	"github.com/koldar/phdtester-go/resource"
)

// OutputArtifact declares one artifact an external program is expected to
// write, relative to its working directory, and the store Key it should be
// relocated to once the program exits successfully.
type OutputArtifact struct {
	Key          resource.Key
	RelativePath string
}

// Invocation is everything needed to spawn one external program run for a
// test context: the command line, the working directory, and the output
// artifacts the program is contractually required to produce.
type Invocation struct {
	Command string
	Args    []string
	WorkDir string
	Outputs []OutputArtifact
}

// CommandBuilder constructs the Invocation for a test context, per
// spec.md §6: "the orchestrator invokes a caller-supplied command line
// constructed from the test context".
type CommandBuilder func(tc *bundle.TestContext) (Invocation, error)

// Outcome is the result of running (or skipping) one test context.
type Outcome struct {
	TestContext *bundle.TestContext
	State       State
	Err         error
	Duration    time.Duration
}

// Orchestrator runs a sequence of test contexts through a CommandBuilder and
// relocates their artifacts into Store, per spec.md §4.9/§5: single
// threaded, sequential, the external-process spawn/wait being the only
// suspension point.
type Orchestrator struct {
	Store         resource.Manager
	Build         CommandBuilder
	FailurePolicy FailurePolicy
	Metrics       *Metrics
	Logger        zerolog.Logger
	// RowExtractor customizes how a tabular output's CSV records become
	// resource.Rows. Nil keeps the plain column-by-position mapping.
	RowExtractor RowExtractor
}

// New builds an Orchestrator with fresh Metrics and the Propagate failure
// policy.
func New(store resource.Manager, build CommandBuilder, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		Store:         store,
		Build:         build,
		FailurePolicy: Propagate,
		Metrics:       NewMetrics(),
		Logger:        logger,
	}
}

// Run iterates tcs sequentially, running each through the state machine.
// Under Propagate (the default), Run returns as soon as one context fails;
// the returned outcomes cover every context processed up to and including
// the failure. Under ContinueOnFailure, Run always processes every context
// and never returns an error itself — failures are visible in each
// Outcome.Err.
func (o *Orchestrator) Run(ctx context.Context, tcs []*bundle.TestContext) ([]Outcome, error) {
	if o.Build == nil {
		return nil, ErrMissingCommandBuilder
	}
	outcomes := make([]Outcome, 0, len(tcs))
	for _, tc := range tcs {
		outcome := o.runOne(ctx, tc)
		outcomes = append(outcomes, outcome)
		if outcome.State == Failed && o.FailurePolicy == Propagate {
			return outcomes, outcome.Err
		}
	}
	return outcomes, nil
}

func (o *Orchestrator) runOne(ctx context.Context, tc *bundle.TestContext) Outcome {
	invocation, err := o.Build(tc)
	if err != nil {
		return Outcome{TestContext: tc, State: Failed, Err: err}
	}

	if skipped, err := o.allOutputsPresent(ctx, invocation.Outputs); err != nil {
		return Outcome{TestContext: tc, State: Failed, Err: err}
	} else if skipped {
		o.Metrics.Skipped.Inc()
		o.Logger.Debug().Strs("cmd", append([]string{invocation.Command}, invocation.Args...)).Msg("skipping: outputs already present")
		return Outcome{TestContext: tc, State: Skipped}
	}

	o.Metrics.Submitted.Inc()
	o.Logger.Info().Str("cwd", invocation.WorkDir).Strs("cmd", append([]string{invocation.Command}, invocation.Args...)).Msg("submitting external program")

	start := time.Now()
	runErr := o.spawn(ctx, invocation)
	duration := time.Since(start)
	o.Metrics.observeDuration(duration)

	if runErr != nil {
		o.Metrics.Failed.Inc()
		o.Logger.Error().Err(runErr).Str("cwd", invocation.WorkDir).Msg("external program failed")
		return Outcome{TestContext: tc, State: Failed, Err: runErr, Duration: duration}
	}

	if err := o.relocateOutputs(ctx, invocation); err != nil {
		o.Metrics.Failed.Inc()
		return Outcome{TestContext: tc, State: Failed, Err: err, Duration: duration}
	}

	o.Metrics.Completed.Inc()
	o.Logger.Info().Str("cwd", invocation.WorkDir).Dur("duration", duration).Msg("external program completed")
	return Outcome{TestContext: tc, State: Completed, Duration: duration}
}

func (o *Orchestrator) allOutputsPresent(ctx context.Context, outputs []OutputArtifact) (bool, error) {
	if len(outputs) == 0 {
		return false, nil
	}
	for _, out := range outputs {
		present, err := o.Store.Contains(ctx, out.Key)
		if err != nil {
			return false, err
		}
		if !present {
			return false, nil
		}
	}
	return true, nil
}

func (o *Orchestrator) spawn(ctx context.Context, inv Invocation) error {
	cmd := exec.CommandContext(ctx, inv.Command, inv.Args...)
	cmd.Dir = inv.WorkDir
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		exitCode := -1
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return &ExternalProgramFailureError{
			Cwd:         inv.WorkDir,
			CommandLine: append([]string{inv.Command}, inv.Args...),
			ExitCode:    exitCode,
		}
	}
	return nil
}

func (o *Orchestrator) relocateOutputs(ctx context.Context, inv Invocation) error {
	for _, out := range inv.Outputs {
		path := filepath.Join(inv.WorkDir, out.RelativePath)
		if out.Key.DataType == resource.Tabular {
			rows, err := readCSVRows(path, o.RowExtractor)
			if err != nil {
				return fmt.Errorf("orchestrator: reading tabular output %s: %w", path, err)
			}
			if err := o.Store.SaveRows(ctx, out.Key, rows); err != nil {
				return fmt.Errorf("orchestrator: relocating tabular output %s: %w", path, err)
			}
			continue
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("orchestrator: reading output %s: %w", path, err)
		}
		if err := o.Store.SaveAt(ctx, out.Key, content); err != nil {
			return fmt.Errorf("orchestrator: relocating output %s: %w", path, err)
		}
	}
	return nil
}
