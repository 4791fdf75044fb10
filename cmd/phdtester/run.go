package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/koldar/phdtester-go/bundle"
	"github.com/koldar/phdtester-go/bundlecodec"
	"github.com/koldar/phdtester-go/depgraph"
	"github.com/koldar/phdtester-go/enumerator"
	"github.com/koldar/phdtester-go/option"
	"github.com/koldar/phdtester-go/orchestrator"
	"github.com/koldar/phdtester-go/resource"
	"github.com/koldar/phdtester-go/resource/fsstore"
	"github.com/koldar/phdtester-go/resource/memstore"
	"github.com/koldar/phdtester-go/resource/sqlstore"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Enumerate the declared experiment and invoke the external program for every compliant test context",
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	if manifestPath == "" {
		return fmt.Errorf("phdtester: --manifest is required")
	}
	g, err := loadGraph(manifestPath)
	if err != nil {
		return fmt.Errorf("phdtester: %w", err)
	}

	settings, err := loadRunSettings(settingsPath)
	if err != nil {
		return err
	}

	values, err := readValueLists(cmd.Flags(), g)
	if err != nil {
		return err
	}

	contexts, err := enumerator.Stream(g, values)
	if err != nil {
		return fmt.Errorf("phdtester: enumerating test contexts: %w", err)
	}
	logger.Info().Int("count", len(contexts)).Msg("enumerated compliant test contexts")

	store, closeStore, err := openStore(settings)
	if err != nil {
		return err
	}
	defer closeStore()

	if settings.Program.Path == "" {
		return fmt.Errorf("phdtester: run-settings profile must set [program].path")
	}

	build := commandBuilder(settings)
	orc := orchestrator.New(store, build, logger)
	if settings.ContinueOnFailure {
		orc.FailurePolicy = orchestrator.ContinueOnFailure
	}

	outcomes, err := orc.Run(context.Background(), contexts)
	summarize(outcomes)
	if err != nil {
		return fmt.Errorf("phdtester: %w", err)
	}
	return nil
}

// readValueLists pulls every registered UNDER_TEST/ENVIRONMENT flag's raw
// string and SETTINGS flag's raw string off the flag set, converting each
// through option.ParseValue against its declared type. SETTINGS values
// aren't part of a test context (spec.md §4.1: exactly one value per
// program run) and are validated here but not threaded any further — a
// research field that needs one exposes it to its external program via
// settings.Program or its own environment.
func readValueLists(flags *pflag.FlagSet, g *depgraph.Graph) (enumerator.ValueLists, error) {
	values := make(enumerator.ValueLists)
	for _, o := range g.Options() {
		if o.Type == option.Bool {
			v, err := flags.GetBool(o.Name)
			if err != nil {
				return nil, fmt.Errorf("phdtester: reading flag %q: %w", o.Name, err)
			}
			if o.Belonging != option.Settings {
				values[o.Name] = []interface{}{v}
			}
			continue
		}

		raw, err := flags.GetString(o.Name)
		if err != nil {
			return nil, fmt.Errorf("phdtester: reading flag %q: %w", o.Name, err)
		}
		if raw == "" {
			if !o.HasDefault {
				return nil, fmt.Errorf("phdtester: option %q has no value and no default", o.Name)
			}
			if o.Belonging != option.Settings {
				if o.Type.IsList() {
					values[o.Name] = o.Default.([]interface{})
				} else {
					values[o.Name] = []interface{}{o.Default}
				}
			}
			continue
		}

		if o.Belonging == option.Settings {
			if _, err := option.ParseValue(o.Type, raw); err != nil {
				return nil, fmt.Errorf("phdtester: option %q: %w", o.Name, err)
			}
			continue
		}

		v, err := option.ParseValue(o.Type, raw)
		if err != nil {
			return nil, fmt.Errorf("phdtester: option %q: %w", o.Name, err)
		}
		if o.Type.IsList() {
			values[o.Name] = v.([]interface{})
		} else {
			values[o.Name] = []interface{}{v}
		}
	}
	return values, nil
}

func openStore(s RunSettings) (resource.Manager, func(), error) {
	switch s.Store.Kind {
	case "", "memstore":
		return memstore.New(), func() {}, nil
	case "fsstore":
		dir := s.Store.Dir
		if dir == "" {
			dir = "./phdtester-artifacts"
		}
		st, err := fsstore.New(dir)
		if err != nil {
			return nil, nil, fmt.Errorf("phdtester: opening fsstore at %s: %w", dir, err)
		}
		return st, func() {}, nil
	case "sqlstore":
		dsn := s.Store.DSN
		if dsn == "" {
			dsn = "./phdtester-artifacts.db"
		}
		st, err := sqlstore.Open(dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("phdtester: opening sqlstore at %s: %w", dsn, err)
		}
		return st, func() { st.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("phdtester: unknown store kind %q", s.Store.Kind)
	}
}

// commandBuilder builds the CommandBuilder the orchestrator runs every
// test context through: the external program is handed the context's
// bundlecodec-serialized identity as its sole argument and a fresh working
// directory, and is expected to write its declared output relative to that
// directory — spec.md §6's "external executable contract".
func commandBuilder(s RunSettings) orchestrator.CommandBuilder {
	dataType := resource.Binary
	if s.Program.OutputIsTable {
		dataType = resource.Tabular
	}
	return func(tc *bundle.TestContext) (orchestrator.Invocation, error) {
		identity := bundlecodec.NewWithGeneratedIdentifier()
		doc := bundlecodec.FromTestContext(tc, identity.Identifier, identity.HasIdentifier)
		serialized := bundlecodec.Dump(doc, bundlecodec.DefaultDumpOptions())

		workDir, err := os.MkdirTemp("", "phdtester-run-*")
		if err != nil {
			return orchestrator.Invocation{}, fmt.Errorf("phdtester: creating work directory: %w", err)
		}

		key := resource.Key{Path: s.Program.ArtifactPath, Name: identity.Identifier, DataType: dataType}
		return orchestrator.Invocation{
			Command: s.Program.Path,
			Args:    []string{serialized},
			WorkDir: workDir,
			Outputs: []orchestrator.OutputArtifact{{
				Key:          key,
				RelativePath: s.Program.OutputRelPath,
			}},
		}, nil
	}
}

func summarize(outcomes []orchestrator.Outcome) {
	var completed, failed, skipped int
	for _, o := range outcomes {
		switch o.State {
		case orchestrator.Completed:
			completed++
		case orchestrator.Failed:
			failed++
		case orchestrator.Skipped:
			skipped++
		}
	}
	fmt.Fprintf(os.Stderr, "phdtester: %d completed, %d failed, %d skipped (of %d)\n",
		completed, failed, skipped, len(outcomes))
}
