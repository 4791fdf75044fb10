package resource

import "context"

// DataType distinguishes a tabular artifact (rows of named fields,
// line-oriented) from an opaque binary blob.
type DataType int

const (
	Tabular DataType = iota
	Binary
)

func (d DataType) String() string {
	if d == Tabular {
		return "TABULAR"
	}
	return "BINARY"
}

// Key identifies one artifact: a logical path, a name within that path, and
// its DataType (the same (path, name) pair may exist once per DataType).
type Key struct {
	Path     string
	Name     string
	DataType DataType
}

// Row is one tabular record, field name to string value (matching the CSV
// shape artifacts are archived in, per SPEC_FULL.md §4.8 and the
// orchestrator's external-program contract).
type Row map[string]string

// Manager is the artifact store interface every backend implements
// identically.
type Manager interface {
	// SaveAt writes content as a binary artifact at key.
	SaveAt(ctx context.Context, key Key, content []byte) error
	// Get returns the binary content stored at key.
	Get(ctx context.Context, key Key) ([]byte, error)
	// Contains reports whether key exists.
	Contains(ctx context.Context, key Key) (bool, error)
	// Remove deletes key. A no-op, not an error, if key is absent.
	Remove(ctx context.Context, key Key) error

	// SaveRows writes rows as a tabular artifact at key.
	SaveRows(ctx context.Context, key Key, rows []Row) error
	// IterateOver streams the rows of a tabular artifact.
	IterateOver(ctx context.Context, key Key) ([]Row, error)
	// Head returns the first i rows of a tabular artifact.
	Head(ctx context.Context, key Key, i int) ([]Row, error)
	// Tail returns the last i rows of a tabular artifact.
	Tail(ctx context.Context, key Key, i int) ([]Row, error)
	// HeadRaw returns the first i bytes of a binary artifact.
	HeadRaw(ctx context.Context, key Key, i int) ([]byte, error)
	// TailRaw returns the last i bytes of a binary artifact.
	TailRaw(ctx context.Context, key Key, i int) ([]byte, error)

	// GetAll enumerates every key matching the optional path/dataType
	// filters. A filter applies only when its hasPath/hasDataType flag is
	// true; pass the flag false to skip that filter entirely, whatever the
	// path or dataType value.
	GetAll(ctx context.Context, path string, hasPath bool, dataType DataType, hasDataType bool) ([]Key, error)
}
