// Package sqlstore implements resource.Manager as a relational backend over
// modernc.org/sqlite, the pure-Go driver used elsewhere in the domain stack
// for storage that needs query-ability rather than filesystem layout.
// Binary artifacts are stored as a single blob row; tabular artifacts are
// stored one row per record with a JSON-encoded column map, preserving row
// order via an explicit sequence column.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/koldar/phdtester-go/resource"
)

const schema = `
CREATE TABLE IF NOT EXISTS artifacts (
	path      TEXT NOT NULL,
	name      TEXT NOT NULL,
	data_type INTEGER NOT NULL,
	blob      BLOB,
	PRIMARY KEY (path, name, data_type)
);
CREATE TABLE IF NOT EXISTS artifact_rows (
	path      TEXT NOT NULL,
	name      TEXT NOT NULL,
	seq       INTEGER NOT NULL,
	payload   TEXT NOT NULL,
	PRIMARY KEY (path, name, seq)
);
`

// Store is a resource.Manager backed by a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if absent) a SQLite database at dsn and prepares its
// schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlstore: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) SaveAt(ctx context.Context, key resource.Key, content []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO artifacts (path, name, data_type, blob) VALUES (?, ?, ?, ?)
		 ON CONFLICT(path, name, data_type) DO UPDATE SET blob = excluded.blob`,
		key.Path, key.Name, int(key.DataType), content)
	return err
}

func (s *Store) SaveRows(ctx context.Context, key resource.Key, rows []resource.Row) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM artifact_rows WHERE path = ? AND name = ?`, key.Path, key.Name); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO artifacts (path, name, data_type, blob) VALUES (?, ?, ?, NULL)
		 ON CONFLICT(path, name, data_type) DO NOTHING`,
		key.Path, key.Name, int(resource.Tabular)); err != nil {
		return err
	}
	for i, row := range rows {
		payload, err := json.Marshal(row)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO artifact_rows (path, name, seq, payload) VALUES (?, ?, ?, ?)`,
			key.Path, key.Name, i, string(payload)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) Get(ctx context.Context, key resource.Key) ([]byte, error) {
	if key.DataType == resource.Tabular {
		rows, err := s.IterateOver(ctx, key)
		if err != nil {
			return nil, err
		}
		return json.Marshal(rows)
	}
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT blob FROM artifacts WHERE path = ? AND name = ? AND data_type = ?`,
		key.Path, key.Name, int(key.DataType)).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, &resource.NotFoundError{Key: key}
	}
	if err != nil {
		return nil, err
	}
	return blob, nil
}

func (s *Store) Contains(ctx context.Context, key resource.Key) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM artifacts WHERE path = ? AND name = ? AND data_type = ?`,
		key.Path, key.Name, int(key.DataType)).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) Remove(ctx context.Context, key resource.Key) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM artifacts WHERE path = ? AND name = ? AND data_type = ?`,
		key.Path, key.Name, int(key.DataType)); err != nil {
		return err
	}
	if key.DataType == resource.Tabular {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM artifact_rows WHERE path = ? AND name = ?`, key.Path, key.Name); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) IterateOver(ctx context.Context, key resource.Key) ([]resource.Row, error) {
	if key.DataType != resource.Tabular {
		return nil, &resource.TypeUnhandledError{Key: key}
	}
	present, err := s.Contains(ctx, key)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, &resource.NotFoundError{Key: key}
	}
	rs, err := s.db.QueryContext(ctx,
		`SELECT payload FROM artifact_rows WHERE path = ? AND name = ? ORDER BY seq ASC`,
		key.Path, key.Name)
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	var rows []resource.Row
	for rs.Next() {
		var payload string
		if err := rs.Scan(&payload); err != nil {
			return nil, err
		}
		row := resource.Row{}
		if err := json.Unmarshal([]byte(payload), &row); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, rs.Err()
}

func (s *Store) Head(ctx context.Context, key resource.Key, i int) ([]resource.Row, error) {
	rows, err := s.IterateOver(ctx, key)
	if err != nil {
		return nil, err
	}
	if i > len(rows) {
		i = len(rows)
	}
	return rows[:i], nil
}

func (s *Store) Tail(ctx context.Context, key resource.Key, i int) ([]resource.Row, error) {
	rows, err := s.IterateOver(ctx, key)
	if err != nil {
		return nil, err
	}
	if i > len(rows) {
		i = len(rows)
	}
	return rows[len(rows)-i:], nil
}

func (s *Store) HeadRaw(ctx context.Context, key resource.Key, i int) ([]byte, error) {
	content, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if i > len(content) {
		i = len(content)
	}
	return content[:i], nil
}

func (s *Store) TailRaw(ctx context.Context, key resource.Key, i int) ([]byte, error) {
	content, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if i > len(content) {
		i = len(content)
	}
	return content[len(content)-i:], nil
}

func (s *Store) GetAll(ctx context.Context, path string, hasPath bool, dataType resource.DataType, hasDataType bool) ([]resource.Key, error) {
	query := `SELECT path, name, data_type FROM artifacts WHERE 1=1`
	var args []interface{}
	if hasPath {
		query += ` AND path = ?`
		args = append(args, path)
	}
	if hasDataType {
		query += ` AND data_type = ?`
		args = append(args, int(dataType))
	}
	rs, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	var out []resource.Key
	for rs.Next() {
		var k resource.Key
		var dt int
		if err := rs.Scan(&k.Path, &k.Name, &dt); err != nil {
			return nil, err
		}
		k.DataType = resource.DataType(dt)
		out = append(out, k)
	}
	return out, rs.Err()
}
