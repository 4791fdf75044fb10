package option

import "reflect"

// ValueType enumerates the primitive shapes an Option's value may take.
type ValueType int

const (
	Int ValueType = iota
	Float
	Bool
	Str
	IntList
	FloatList
	BoolList
	StrList
	PercentageInt
	PercentageIntList
)

// String renders the ValueType the way error messages and manifest
// diagnostics expect to see it.
func (vt ValueType) String() string {
	switch vt {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Bool:
		return "Bool"
	case Str:
		return "Str"
	case IntList:
		return "IntList"
	case FloatList:
		return "FloatList"
	case BoolList:
		return "BoolList"
	case StrList:
		return "StrList"
	case PercentageInt:
		return "PercentageInt"
	case PercentageIntList:
		return "PercentageIntList"
	default:
		return "Unknown"
	}
}

// IsList reports whether the ValueType carries a slice of scalars rather
// than a single scalar.
func (vt ValueType) IsList() bool {
	switch vt {
	case IntList, FloatList, BoolList, StrList, PercentageIntList:
		return true
	default:
		return false
	}
}

// Belonging says who supplies an Option's value and how many values a single
// program run may see for it.
type Belonging int

const (
	// Settings options take exactly one value per program run.
	Settings Belonging = iota
	// UnderTest options range over a user-supplied value list; they are the
	// dimensions of the experiment's parameter space.
	UnderTest
	// Environment options also range over a value list, but describe the
	// execution environment rather than the thing being tested.
	Environment
)

func (b Belonging) String() string {
	switch b {
	case Settings:
		return "SETTINGS"
	case UnderTest:
		return "UNDER_TEST"
	case Environment:
		return "ENVIRONMENT"
	default:
		return "UNKNOWN"
	}
}

// Option is a named parameter descriptor. Options are built once (via
// depgraph.Builder) and never mutated afterward.
type Option struct {
	Name        string
	Description string
	Type        ValueType
	Belonging   Belonging
	Default     interface{} // nil means "no default"
	HasDefault  bool
	Domain      []interface{} // nil means "not discrete" (no enumerated domain)
}

// New builds an Option, returning ErrEmptyName if name is empty.
func New(name, description string, vt ValueType, belonging Belonging) (*Option, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Option{
		Name:        name,
		Description: description,
		Type:        vt,
		Belonging:   belonging,
	}, nil
}

// WithDefault attaches a default value, returned by value-resolution helpers
// when a bundle carries no explicit entry for this option.
func (o *Option) WithDefault(v interface{}) *Option {
	o.Default = v
	o.HasDefault = true
	return o
}

// WithDomain attaches the enumerated domain of a discrete option. Passing no
// values clears the domain (option becomes non-discrete).
func (o *Option) WithDomain(values ...interface{}) *Option {
	o.Domain = values
	return o
}

// IsDiscrete reports whether the option has an enumerated domain.
func (o *Option) IsDiscrete() bool {
	return len(o.Domain) > 0
}

// InDomain reports whether v is an allowed value for a discrete option. Non
// discrete options accept any value.
func (o *Option) InDomain(v interface{}) bool {
	if !o.IsDiscrete() {
		return true
	}
	for _, d := range o.Domain {
		if reflect.DeepEqual(d, v) {
			return true
		}
	}
	return false
}
