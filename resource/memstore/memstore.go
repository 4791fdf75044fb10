// Package memstore implements resource.Manager as an in-process,
// document-store-shaped backend: every artifact is a record keyed by
// resource.Key, held in memory as Go values (Get renders a tabular record's
// rows as JSON). It is the orchestrator's default
// store for dry runs and the reference backend exercised by fsstore/
// sqlstore's parity tests.
package memstore

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/koldar/phdtester-go/resource"
)

type record struct {
	binary []byte
	rows   []resource.Row
	isRows bool
}

// Store is an in-memory resource.Manager.
type Store struct {
	mu      sync.RWMutex
	records map[resource.Key]record
	order   []resource.Key
}

// New returns an empty Store.
func New() *Store {
	return &Store{records: map[resource.Key]record{}}
}

func (s *Store) SaveAt(_ context.Context, key resource.Key, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(key, record{binary: append([]byte(nil), content...)})
	return nil
}

func (s *Store) SaveRows(_ context.Context, key resource.Key, rows []resource.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(key, record{rows: append([]resource.Row(nil), rows...), isRows: true})
	return nil
}

func (s *Store) put(key resource.Key, r record) {
	if _, exists := s.records[key]; !exists {
		s.order = append(s.order, key)
	}
	s.records[key] = r
}

func (s *Store) Get(_ context.Context, key resource.Key) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[key]
	if !ok {
		return nil, &resource.NotFoundError{Key: key}
	}
	if r.isRows {
		return json.Marshal(r.rows)
	}
	return append([]byte(nil), r.binary...), nil
}

func (s *Store) Contains(_ context.Context, key resource.Key) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[key]
	return ok, nil
}

func (s *Store) Remove(_ context.Context, key resource.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; !ok {
		return nil
	}
	delete(s.records, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) IterateOver(_ context.Context, key resource.Key) ([]resource.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[key]
	if !ok {
		return nil, &resource.NotFoundError{Key: key}
	}
	if !r.isRows {
		return nil, &resource.TypeUnhandledError{Key: key}
	}
	return append([]resource.Row(nil), r.rows...), nil
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
	content, err := s.rawBytes(key)
	if err != nil {
		return nil, err
	}
	if i > len(content) {
		i = len(content)
	}
	return content[:i], nil
}

func (s *Store) TailRaw(ctx context.Context, key resource.Key, i int) ([]byte, error) {
	content, err := s.rawBytes(key)
	if err != nil {
		return nil, err
	}
	if i > len(content) {
		i = len(content)
	}
	return content[len(content)-i:], nil
}

func (s *Store) rawBytes(key resource.Key) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[key]
	if !ok {
		return nil, &resource.NotFoundError{Key: key}
	}
	if r.isRows {
		return nil, &resource.TypeUnhandledError{Key: key}
	}
	return r.binary, nil
}

func (s *Store) GetAll(_ context.Context, path string, hasPath bool, dataType resource.DataType, hasDataType bool) ([]resource.Key, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []resource.Key
	for _, k := range s.order {
		if hasPath && k.Path != path {
			continue
		}
		if hasDataType && k.DataType != dataType {
			continue
		}
		out = append(out, k)
	}
	return out, nil
}
