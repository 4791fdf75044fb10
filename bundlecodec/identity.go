package bundlecodec

import "github.com/google/uuid"

// NewWithGeneratedIdentifier creates an empty Document whose identifier is
// a freshly generated UUID, for callers that need a guaranteed-unique
// bundle identity but don't want to manage one themselves.
func NewWithGeneratedIdentifier() *Document {
	return New().WithIdentifier(uuid.New().String())
}
