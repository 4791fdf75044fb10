package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/koldar/phdtester-go/depgraph"
	"github.com/koldar/phdtester-go/option"
)

// LoadFile reads path and parses it the same way Load does.
func LoadFile(path string) (*depgraph.Builder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: reading %s: %w", path, err)
	}
	return Load(data)
}

// Load parses a manifest YAML document and replays it into a fresh
// depgraph.Builder, grounded on options_builder.py's OptionBuilder.from_dict
// style of construction: declare every option first, then every constraint,
// in document order. Load never calls Builder.Build itself — the caller
// decides when to finalize, the same way a Python research field's
// option_graph() method hands back a builder its caller still owns.
func Load(data []byte) (*depgraph.Builder, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("manifest: parsing YAML: %w", err)
	}

	b := depgraph.NewBuilder()
	types := make(map[string]option.ValueType, len(doc.Options))

	for _, e := range doc.Options {
		vt, err := addOption(b, e)
		if err != nil {
			return nil, err
		}
		types[e.Name] = vt
	}

	for _, c := range doc.Constraints {
		if err := addConstraint(b, c, types); err != nil {
			return nil, err
		}
	}

	return b, nil
}

func addOption(b *depgraph.Builder, e OptionEntry) (option.ValueType, error) {
	if e.Name == "" {
		return 0, fmt.Errorf("%w: option name", ErrMissingField)
	}

	belonging, err := parseBelonging(e.Belonging)
	if err != nil {
		return 0, fmt.Errorf("manifest: option %q: %w", e.Name, err)
	}

	if e.Flag {
		b.AddFlag(belonging, e.Name, e.Description)
		return option.Bool, nil
	}

	vt, err := parseValueType(e.Type)
	if err != nil {
		return 0, fmt.Errorf("manifest: option %q: %w", e.Name, err)
	}

	if e.Multivalue {
		b.AddMultivalue(belonging, e.Name, e.Description, vt)
		return vt, nil
	}

	if len(e.Domain) > 0 {
		domain := make([]interface{}, 0, len(e.Domain))
		for _, raw := range e.Domain {
			v, err := option.ParseValue(vt, raw)
			if err != nil {
				return 0, fmt.Errorf("manifest: option %q: domain entry %q: %w", e.Name, raw, err)
			}
			domain = append(domain, v)
		}
		defaultValue, hasDefault, err := parseDefault(vt, e.Default)
		if err != nil {
			return 0, fmt.Errorf("manifest: option %q: %w", e.Name, err)
		}
		b.AddChoice(belonging, e.Name, e.Description, vt, domain, defaultValue, hasDefault)
		return vt, nil
	}

	defaultValue, hasDefault, err := parseDefault(vt, e.Default)
	if err != nil {
		return 0, fmt.Errorf("manifest: option %q: %w", e.Name, err)
	}
	b.AddValue(belonging, e.Name, e.Description, vt, defaultValue, hasDefault)
	return vt, nil
}

func parseDefault(vt option.ValueType, raw *string) (interface{}, bool, error) {
	if raw == nil {
		return nil, false, nil
	}
	v, err := option.ParseValue(vt, *raw)
	if err != nil {
		return nil, false, fmt.Errorf("default %q: %w", *raw, err)
	}
	return v, true, nil
}

func addConstraint(b *depgraph.Builder, c ConstraintEntry, types map[string]option.ValueType) error {
	switch c.Kind {
	case kindOptionValueNeedsOption:
		if c.Source == "" || c.Target == "" {
			return fmt.Errorf("%w: option_value_needs_option requires source and target", ErrMissingField)
		}
		vt, ok := types[c.Source]
		if !ok {
			return fmt.Errorf("manifest: option_value_needs_option: unknown source option %q", c.Source)
		}
		vals, err := parseValueList(vt, c.Values)
		if err != nil {
			return fmt.Errorf("manifest: option_value_needs_option(%s): %w", c.Source, err)
		}
		b.ConstraintOptionValueNeedsOption(c.Source, vals, c.Target)
		return nil

	case kindProhibitCombination:
		combo, err := parseCombo(c.Combo, types)
		if err != nil {
			return fmt.Errorf("manifest: prohibit_combination: %w", err)
		}
		b.ConstraintProhibitCombination(combo)
		return nil

	case kindEnsureCombination:
		combo, err := parseCombo(c.Combo, types)
		if err != nil {
			return fmt.Errorf("manifest: ensure_combination: %w", err)
		}
		b.ConstraintEnsureCombination(combo)
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownConstraintKind, c.Kind)
	}
}

func parseValueList(vt option.ValueType, raws []string) ([]interface{}, error) {
	out := make([]interface{}, 0, len(raws))
	for _, raw := range raws {
		v, err := option.ParseValue(vt, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseCombo(raw map[string]string, types map[string]option.ValueType) (map[string]interface{}, error) {
	if len(raw) < 2 {
		return nil, fmt.Errorf("combo needs at least two options, got %d", len(raw))
	}
	combo := make(map[string]interface{}, len(raw))
	for name, value := range raw {
		vt, ok := types[name]
		if !ok {
			return nil, fmt.Errorf("unknown option %q", name)
		}
		v, err := option.ParseValue(vt, value)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", name, err)
		}
		combo[name] = v
	}
	return combo, nil
}

func parseBelonging(s string) (option.Belonging, error) {
	switch s {
	case "SETTINGS":
		return option.Settings, nil
	case "UNDER_TEST":
		return option.UnderTest, nil
	case "ENVIRONMENT":
		return option.Environment, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBelonging, s)
	}
}

func parseValueType(s string) (option.ValueType, error) {
	switch s {
	case "Int":
		return option.Int, nil
	case "Float":
		return option.Float, nil
	case "Bool":
		return option.Bool, nil
	case "Str":
		return option.Str, nil
	case "IntList":
		return option.IntList, nil
	case "FloatList":
		return option.FloatList, nil
	case "BoolList":
		return option.BoolList, nil
	case "StrList":
		return option.StrList, nil
	case "PercentageInt":
		return option.PercentageInt, nil
	case "PercentageIntList":
		return option.PercentageIntList, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownValueType, s)
	}
}
