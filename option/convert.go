package option

import (
	"fmt"
	"strconv"
	"strings"
)

// listSeparator is the delimiter the evaluator uses for the "single string
// that parses into a list of values" CLI convention described for
// UNDER_TEST/ENVIRONMENT options.
const listSeparator = ","

// ParseValue converts a raw CLI string into a value of the option's declared
// ValueType. Scalars are parsed directly; list types split on listSeparator
// and parse each element. Wraps strconv failures in ErrConversionFailed.
func ParseValue(vt ValueType, raw string) (interface{}, error) {
	if vt.IsList() {
		return parseList(vt, raw)
	}
	return parseScalar(vt, raw)
}

func parseScalar(vt ValueType, raw string) (interface{}, error) {
	switch vt {
	case Int:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q as Int: %v", ErrConversionFailed, raw, err)
		}
		return n, nil
	case Float:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q as Float: %v", ErrConversionFailed, raw, err)
		}
		return f, nil
	case Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: %q as Bool: %v", ErrConversionFailed, raw, err)
		}
		return b, nil
	case Str:
		return raw, nil
	case PercentageInt:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q as PercentageInt: %v", ErrConversionFailed, raw, err)
		}
		if n < 0 || n > 100 {
			return nil, fmt.Errorf("%w: %d out of [0,100]", ErrConversionFailed, n)
		}
		return n, nil
	default:
		return nil, ErrUnknownValueType
	}
}

func parseList(vt ValueType, raw string) (interface{}, error) {
	raw = strings.TrimSpace(raw)
	var elem ValueType
	switch vt {
	case IntList:
		elem = Int
	case FloatList:
		elem = Float
	case BoolList:
		elem = Bool
	case StrList:
		elem = Str
	case PercentageIntList:
		elem = PercentageInt
	default:
		return nil, ErrUnknownValueType
	}

	if raw == "" {
		return []interface{}{}, nil
	}
	parts := strings.Split(raw, listSeparator)
	out := make([]interface{}, 0, len(parts))
	for _, p := range parts {
		v, err := parseScalar(elem, strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// FormatValue renders a value back into the CLI-literal form ParseValue
// would accept, for diagnostics and for the CLI driver's flag defaults.
func FormatValue(vt ValueType, v interface{}) string {
	if v == nil {
		return ""
	}
	if vt.IsList() {
		items, ok := v.([]interface{})
		if !ok {
			return fmt.Sprintf("%v", v)
		}
		parts := make([]string, len(items))
		for i, it := range items {
			parts[i] = fmt.Sprintf("%v", it)
		}
		return strings.Join(parts, listSeparator)
	}
	return fmt.Sprintf("%v", v)
}
