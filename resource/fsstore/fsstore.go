// Package fsstore implements resource.Manager as a local-directory backend:
// every artifact is a file under a base directory, tabular artifacts
// serialized as CSV (encoding/csv) and binary artifacts written as-is.
// No example repo in the retrieval pack ships a virtual filesystem or
// blob-store client for this concern, so this backend is plain stdlib I/O —
// see DESIGN.md.
package fsstore

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/koldar/phdtester-go/resource"
)

// Store is a resource.Manager rooted at a base directory on disk.
type Store struct {
	baseDir string
}

// New returns a Store rooted at baseDir, creating it if necessary.
func New(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}
	return &Store{baseDir: baseDir}, nil
}

func (s *Store) filePath(key resource.Key) string {
	ext := ".bin"
	if key.DataType == resource.Tabular {
		ext = ".csv"
	}
	return filepath.Join(s.baseDir, key.Path, key.Name+ext)
}

func (s *Store) SaveAt(_ context.Context, key resource.Key, content []byte) error {
	path := s.filePath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, content, 0o644)
}

func (s *Store) SaveRows(_ context.Context, key resource.Key, rows []resource.Row) error {
	path := s.filePath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeRows(f, rows)
}

func writeRows(w io.Writer, rows []resource.Row) error {
	header := columnNames(rows)
	writer := csv.NewWriter(w)
	defer writer.Flush()
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := make([]string, len(header))
		for i, col := range header {
			record[i] = row[col]
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func columnNames(rows []resource.Row) []string {
	seen := map[string]struct{}{}
	var names []string
	for _, row := range rows {
		for col := range row {
			if _, ok := seen[col]; !ok {
				seen[col] = struct{}{}
				names = append(names, col)
			}
		}
	}
	sort.Strings(names)
	return names
}

func (s *Store) Get(_ context.Context, key resource.Key) ([]byte, error) {
	content, err := os.ReadFile(s.filePath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &resource.NotFoundError{Key: key}
		}
		return nil, err
	}
	return content, nil
}

func (s *Store) Contains(_ context.Context, key resource.Key) (bool, error) {
	_, err := os.Stat(s.filePath(key))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (s *Store) Remove(_ context.Context, key resource.Key) error {
	err := os.Remove(s.filePath(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) IterateOver(_ context.Context, key resource.Key) ([]resource.Row, error) {
	if key.DataType != resource.Tabular {
		return nil, &resource.TypeUnhandledError{Key: key}
	}
	f, err := os.Open(s.filePath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &resource.NotFoundError{Key: key}
		}
		return nil, err
	}
	defer f.Close()
	return readRows(f)
}

func readRows(r io.Reader) ([]resource.Row, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	header := records[0]
	rows := make([]resource.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := resource.Row{}
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
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

func (s *Store) GetAll(_ context.Context, path string, hasPath bool, dataType resource.DataType, hasDataType bool) ([]resource.Key, error) {
	var out []resource.Key
	root := s.baseDir
	if hasPath {
		root = filepath.Join(s.baseDir, path)
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return out, nil
	}
	err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		ext := filepath.Ext(p)
		dt := resource.Binary
		if ext == ".csv" {
			dt = resource.Tabular
		}
		if hasDataType && dt != dataType {
			return nil
		}
		rel, err := filepath.Rel(s.baseDir, filepath.Dir(p))
		if err != nil {
			return err
		}
		if rel == "." {
			rel = ""
		}
		name := bytes.TrimSuffix([]byte(filepath.Base(p)), []byte(ext))
		out = append(out, resource.Key{Path: rel, Name: string(name), DataType: dt})
		return nil
	})
	return out, err
}
