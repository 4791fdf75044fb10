package resource

import (
	"errors"
	"fmt"
)

// ErrResourceNotFound indicates a Get/Head/Tail/IterateOver was attempted
// against a key absent from the store. Remove of an absent key is a no-op.
var ErrResourceNotFound = errors.New("resource: key not found")

// ErrResourceTypeUnhandled indicates an operation expecting a tabular
// artifact was attempted on a binary one, or vice versa.
var ErrResourceTypeUnhandled = errors.New("resource: data type not handled by this operation")

// NotFoundError wraps ErrResourceNotFound with the offending key for
// diagnostics.
type NotFoundError struct {
	Key Key
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource: %s/%s (%s): %v", e.Key.Path, e.Key.Name, e.Key.DataType, ErrResourceNotFound)
}

func (e *NotFoundError) Unwrap() error { return ErrResourceNotFound }

// TypeUnhandledError wraps ErrResourceTypeUnhandled with the offending key.
type TypeUnhandledError struct {
	Key Key
}

func (e *TypeUnhandledError) Error() string {
	return fmt.Sprintf("resource: %s/%s: %v (got %s)", e.Key.Path, e.Key.Name, ErrResourceTypeUnhandled, e.Key.DataType)
}

func (e *TypeUnhandledError) Unwrap() error { return ErrResourceTypeUnhandled }
