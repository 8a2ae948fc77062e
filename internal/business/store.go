package business

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// ErrNotFound is returned when an entity does not exist.
var ErrNotFound = errors.New("not found")

// Store is an in-memory database with one table per entity type.
type Store struct {
	mu     sync.Mutex
	tables map[string]*table
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{tables: make(map[string]*table)}
}

func (s *Store) table(name string) *table {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[name]
	if !ok {
		t = &table{rows: make(map[string]any)}
		s.tables[name] = t
	}
	return t
}

type table struct {
	mu   sync.RWMutex
	rows map[string]any
}

// Repository gives typed access to the table holding T. The zero value is
// unusable; obtain one from NewRepository or RepositoryFor.
type Repository[T any] struct {
	table *table
}

// NewRepository returns the repository for T in s.
func NewRepository[T any](s *Store) Repository[T] {
	return Repository[T]{table: s.table(entityName[T]())}
}

// Get returns the entity stored under id.
func (r Repository[T]) Get(id string) (T, error) {
	r.table.mu.RLock()
	defer r.table.mu.RUnlock()

	var zero T
	v, ok := r.table.rows[id]
	if !ok {
		return zero, fmt.Errorf("%s %q: %w", entityName[T](), id, ErrNotFound)
	}
	return v.(T), nil
}

// Put stores entity under id, replacing any previous value.
func (r Repository[T]) Put(id string, entity T) {
	r.table.mu.Lock()
	defer r.table.mu.Unlock()
	r.table.rows[id] = entity
}

// List returns every entity ordered by id.
func (r Repository[T]) List() []T {
	r.table.mu.RLock()
	defer r.table.mu.RUnlock()

	ids := make([]string, 0, len(r.table.rows))
	for id := range r.table.rows {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]T, len(ids))
	for i, id := range ids {
		out[i] = r.table.rows[id].(T)
	}
	return out
}

// Len returns the number of stored entities.
func (r Repository[T]) Len() int {
	r.table.mu.RLock()
	defer r.table.mu.RUnlock()
	return len(r.table.rows)
}

func (r Repository[T]) bind(s *Store) any {
	return NewRepository[T](s)
}

type binder interface {
	bind(*Store) any
}

// RepositoryFor returns the Repository[T] for the instantiated type t, for
// containers that build repositories from an open generic registration.
func RepositoryFor(t reflect.Type, s *Store) (any, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%v is not a repository type", t)
	}
	b, ok := reflect.Zero(t).Interface().(binder)
	if !ok {
		return nil, fmt.Errorf("%s is not a repository type", t)
	}
	return b.bind(s), nil
}

func entityName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
