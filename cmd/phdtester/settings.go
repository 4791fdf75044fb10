package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// RunSettings is the optional TOML profile: everything about *how* a run
// executes that isn't one of the experiment's own declared options —
// artifact-store selection, failure policy, and the external
// program's invocation contract. spec.md §6 keeps this outside the option
// graph entirely ("Environment variables: none required by the core";
// "Persisted state... backend-defined and opaque to the core").
type RunSettings struct {
	Store struct {
		Kind string `toml:"kind"` // "memstore" (default), "fsstore", "sqlstore"
		Dir  string `toml:"dir"`  // fsstore base directory
		DSN  string `toml:"dsn"`  // sqlstore data source name
	} `toml:"store"`

	Program struct {
		Path          string `toml:"path"`            // external executable
		OutputRelPath string `toml:"output_rel_path"` // artifact relative to the run's workdir
		OutputIsTable bool   `toml:"output_is_table"` // Tabular vs Binary DataType
		ArtifactPath  string `toml:"artifact_path"`   // resource.Key.Path every run's artifact lands under
	} `toml:"program"`

	ContinueOnFailure bool `toml:"continue_on_failure"`
}

func defaultRunSettings() RunSettings {
	var s RunSettings
	s.Store.Kind = "memstore"
	s.Program.OutputRelPath = "output.txt"
	s.Program.ArtifactPath = "runs"
	return s
}

func loadRunSettings(path string) (RunSettings, error) {
	s := defaultRunSettings()
	if path == "" {
		return s, nil
	}
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return s, fmt.Errorf("phdtester: parsing run-settings profile %s: %w", path, err)
	}
	return s, nil
}
