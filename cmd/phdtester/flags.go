package main

import (
	"os"
	"strings"

	"github.com/koldar/phdtester-go/depgraph"
	"github.com/koldar/phdtester-go/manifest"
	"github.com/koldar/phdtester-go/option"
)

// scanManifestPath looks for --manifest/-m in raw before cobra ever parses
// argv: the run command's per-option flags don't exist until the manifest
// is loaded, so the manifest path itself has to be found the hard way,
// ahead of normal flag parsing. This mirrors how plenty of plugin-style
// CLIs resolve a config file before registering the flags that config
// implies.
func scanManifestPath(argv []string) string {
	for i, a := range argv {
		switch {
		case a == "--manifest" || a == "-m":
			if i+1 < len(argv) {
				return argv[i+1]
			}
		case strings.HasPrefix(a, "--manifest="):
			return strings.TrimPrefix(a, "--manifest=")
		}
	}
	if v := os.Getenv("PHDTESTER_MANIFEST"); v != "" {
		return v
	}
	return ""
}

// cobraFlagSet is the subset of *pflag.FlagSet registerOptionFlags needs;
// satisfied by (*cobra.Command).Flags().
type cobraFlagSet interface {
	Bool(name string, value bool, usage string) *bool
	String(name string, value string, usage string) *string
}

// registerOptionFlags adds one flag per option in g to the command's flag
// set, per spec.md §6: SETTINGS options get a scalar flag (required unless
// a default is set), UNDER_TEST/ENVIRONMENT options get a single
// list-literal string flag, Bool-typed options get a presence/absence
// pflag.Bool. Every non-bool flag is read back as a raw string and
// converted through option.ParseValue against its declared type, so list
// parsing (the evaluator spec.md §6 delegates to) is handled in one place.
func registerOptionFlags(cmd cobraFlagSet, g *depgraph.Graph) {
	for _, o := range g.Options() {
		desc := o.Description
		if o.Type == option.Bool {
			cmd.Bool(o.Name, boolDefault(o), desc)
			continue
		}
		def := ""
		if o.HasDefault {
			def = option.FormatValue(o.Type, o.Default)
		}
		cmd.String(o.Name, def, desc)
	}
}

func boolDefault(o *option.Option) bool {
	if !o.HasDefault {
		return false
	}
	b, _ := o.Default.(bool)
	return b
}

// loadGraph reads and builds the option dependency graph from a manifest
// file path.
func loadGraph(path string) (*depgraph.Graph, error) {
	b, err := manifest.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return b.Build()
}
