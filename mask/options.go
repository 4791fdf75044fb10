package mask

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/koldar/phdtester-go/bundle"
)

// Ignore is always compliant.
type Ignore struct{}

func NewIgnore() Ignore { return Ignore{} }

func (Ignore) IsCompliant(int, interface{}, []*bundle.TestContext) bool { return true }
func (Ignore) SetParams(map[string]interface{})                        {}
func (Ignore) String() string                                          { return "ignore" }

// Equals is compliant iff actual == want.
type Equals struct{ Want interface{} }

func NewEquals(want interface{}) *Equals { return &Equals{Want: want} }

func (m *Equals) IsCompliant(_ int, actual interface{}, _ []*bundle.TestContext) bool {
	return reflect.DeepEqual(actual, m.Want)
}
func (*Equals) SetParams(map[string]interface{}) {}
func (m *Equals) String() string                 { return fmt.Sprintf("has to be %v", m.Want) }

// NotEquals is compliant iff actual != avoid.
type NotEquals struct{ Avoid interface{} }

func NewNotEquals(avoid interface{}) *NotEquals { return &NotEquals{Avoid: avoid} }

func (m *NotEquals) IsCompliant(_ int, actual interface{}, _ []*bundle.TestContext) bool {
	return !reflect.DeepEqual(actual, m.Avoid)
}
func (*NotEquals) SetParams(map[string]interface{}) {}
func (m *NotEquals) String() string                 { return fmt.Sprintf("can't have value %v", m.Avoid) }

// InSet is compliant iff actual is one of Values.
type InSet struct{ Values []interface{} }

func NewInSet(values ...interface{}) *InSet { return &InSet{Values: values} }

func (m *InSet) IsCompliant(_ int, actual interface{}, _ []*bundle.TestContext) bool {
	for _, v := range m.Values {
		if reflect.DeepEqual(v, actual) {
			return true
		}
	}
	return false
}
func (*InSet) SetParams(map[string]interface{}) {}
func (m *InSet) String() string                 { return fmt.Sprintf("has to be in %v", m.Values) }

// IsNull is compliant iff actual is nil.
type IsNull struct{}

func NewIsNull() IsNull { return IsNull{} }

func (IsNull) IsCompliant(_ int, actual interface{}, _ []*bundle.TestContext) bool { return actual == nil }
func (IsNull) SetParams(map[string]interface{})                                   {}
func (IsNull) String() string                                                      { return "has to be null" }

// IsNotNull is compliant iff actual is non-nil.
type IsNotNull struct{}

func NewIsNotNull() IsNotNull { return IsNotNull{} }

func (IsNotNull) IsCompliant(_ int, actual interface{}, _ []*bundle.TestContext) bool {
	return actual != nil
}
func (IsNotNull) SetParams(map[string]interface{}) {}
func (IsNotNull) String() string                   { return "has not to be null" }

// MatchesRegex is compliant iff actual is non-nil and its fmt.Sprint form
// matches Pattern.
type MatchesRegex struct {
	Pattern string
	re      *regexp.Regexp
}

func NewMatchesRegex(pattern string) (*MatchesRegex, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &RegexError{Pattern: pattern, Err: err}
	}
	return &MatchesRegex{Pattern: pattern, re: re}, nil
}

func (m *MatchesRegex) IsCompliant(_ int, actual interface{}, _ []*bundle.TestContext) bool {
	if actual == nil {
		return false
	}
	return m.re.MatchString(fmt.Sprint(actual))
}
func (*MatchesRegex) SetParams(map[string]interface{}) {}
func (m *MatchesRegex) String() string                 { return fmt.Sprintf("needs to match regex %q", m.Pattern) }

// ConstantOverSet is compliant iff every context in set holds the same value
// for this option as set[0] does — it inspects the whole candidate set
// holistically rather than a single value, per SPEC_FULL.md §4.5.
type ConstantOverSet struct{ optionName string }

func NewConstantOverSet(optionName string) *ConstantOverSet {
	return &ConstantOverSet{optionName: optionName}
}

func (m *ConstantOverSet) IsCompliant(_ int, _ interface{}, set []*bundle.TestContext) bool {
	if len(set) == 0 {
		return true
	}
	first, _ := set[0].Get(m.optionName)
	for _, tc := range set[1:] {
		v, _ := tc.Get(m.optionName)
		if !reflect.DeepEqual(v, first) {
			return false
		}
	}
	return true
}
func (*ConstantOverSet) SetParams(map[string]interface{}) {}
func (*ConstantOverSet) String() string                   { return "has to be the same over a set" }

// EqualsTo is compliant iff actual equals a value supplied late, via
// SetParams(map[string]interface{}{paramName: ...}), paramName being the
// key given to NewEqualsTo — grounded on
// TestContextMaskNeedsToBeSameAsNonComputation's set_params contract. A mask
// that was never parameterized is never compliant.
type EqualsTo struct {
	paramName string
	value     interface{}
	bound     bool
}

// NewEqualsTo builds an EqualsTo mask-option that reads its comparison value
// from params[paramName] at evaluation time.
func NewEqualsTo(paramName string) *EqualsTo {
	return &EqualsTo{paramName: paramName}
}

func (m *EqualsTo) SetParams(params map[string]interface{}) {
	v, ok := params[m.paramName]
	m.value, m.bound = v, ok
}

func (m *EqualsTo) IsCompliant(_ int, actual interface{}, _ []*bundle.TestContext) bool {
	if !m.bound {
		return false
	}
	return reflect.DeepEqual(actual, m.value)
}

func (m *EqualsTo) String() string {
	if !m.bound {
		return fmt.Sprintf("has to match late-bound parameter %q", m.paramName)
	}
	return fmt.Sprintf("has to be %v", m.value)
}
