package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	manifestPath string
	settingsPath string
	logLevel     string
)

// rootCmd is the phdtester entry point. Its only always-present flags are
// the ones needed to bootstrap everything else (the manifest and the
// optional run-settings profile); every experiment-specific flag is
// registered dynamically on runCmd once the manifest is loaded, see
// flags.go.
var rootCmd = &cobra.Command{
	Use:   "phdtester",
	Short: "Run a declared experiment's test contexts through an external program",
	Long: `phdtester enumerates the compliant test contexts of a declared
option dependency graph and, for each one, invokes an external program,
relocating its declared output artifacts into an artifact store.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "", "path to the experiment manifest YAML file (required)")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "path to an optional TOML run-settings profile")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "zerolog level: debug, info, warn, error")
	rootCmd.AddCommand(runCmd)
}

func newLogger() zerolog.Logger {
	lvl, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}

// Execute pre-scans argv for --manifest, loads the graph it names, attaches
// one flag per declared option to runCmd, then hands off to cobra's normal
// parse-and-dispatch.
func Execute() error {
	if path := scanManifestPath(os.Args[1:]); path != "" {
		manifestPath = path
		g, err := loadGraph(path)
		if err == nil {
			registerOptionFlags(runCmd.Flags(), g)
		}
		// A bad manifest is reported again, with full context, once runCmd
		// actually runs and reloads it — registerOptionFlags is best-effort
		// here so `phdtester run --help` still works against a broken file.
	}
	return rootCmd.Execute()
}
