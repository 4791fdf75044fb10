package manifest

import "errors"

// ErrUnknownBelonging indicates an option entry's belonging field was
// neither SETTINGS, UNDER_TEST nor ENVIRONMENT.
var ErrUnknownBelonging = errors.New("manifest: unknown option belonging")

// ErrUnknownValueType indicates an option entry's type field did not match
// one of option.ValueType's names.
var ErrUnknownValueType = errors.New("manifest: unknown option value type")

// ErrUnknownConstraintKind indicates a constraint entry's kind field did not
// match one of the three data-representable constraint kinds this package
// supports.
var ErrUnknownConstraintKind = errors.New("manifest: unknown or unsupported constraint kind")

// ErrMissingField indicates a required field was empty in an options or
// constraints entry.
var ErrMissingField = errors.New("manifest: missing required field")
