package manifest

// Document is the top-level shape of a manifest YAML file.
type Document struct {
	Options     []OptionEntry     `yaml:"options"`
	Constraints []ConstraintEntry `yaml:"constraints"`
}

// OptionEntry declares one option. Domain/Default/Combo values are kept as
// raw strings and parsed through option.ParseValue against the entry's own
// Type, the same conversion the CLI driver (C12) applies to a flag's raw
// argument — this sidesteps yaml.v3's int/int64/float64 scalar decoding
// entirely.
type OptionEntry struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Belonging   string   `yaml:"belonging"`
	Type        string   `yaml:"type"`
	Flag        bool     `yaml:"flag"`
	Multivalue  bool     `yaml:"multivalue"`
	Domain      []string `yaml:"domain"`
	Default     *string  `yaml:"default"`
}

// ConstraintEntry declares one constraint. Which fields apply depends on
// Kind; see addConstraint in loader.go.
type ConstraintEntry struct {
	Kind string `yaml:"kind"`

	// option_value_needs_option
	Source string   `yaml:"source"`
	Values []string `yaml:"values"`
	Target string   `yaml:"target"`

	// prohibit_combination / ensure_combination
	Combo map[string]string `yaml:"combo"`
}

const (
	kindOptionValueNeedsOption = "option_value_needs_option"
	kindProhibitCombination    = "prohibit_combination"
	kindEnsureCombination      = "ensure_combination"
)
