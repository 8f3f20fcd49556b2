package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

var (
	// ErrNotFound is returned when an item does not exist in the store.
	ErrNotFound = errors.New("item not found")
	// ErrAlreadyExists is returned when creating an item with a taken id.
	ErrAlreadyExists = errors.New("item already exists")
)

// InMemoryStore is a thread-safe map-backed store used by the in-memory
// repository implementations in service tests.
type InMemoryStore[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

func NewInMemoryStore[T any]() *InMemoryStore[T] {
	return &InMemoryStore[T]{
		items: make(map[string]T),
	}
}

func (s *InMemoryStore[T]) Create(ctx context.Context, id string, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; exists {
		return ErrAlreadyExists
	}
	s.items[id] = item
	return nil
}

func (s *InMemoryStore[T]) Get(ctx context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.items[id]
	if !exists {
		var zero T
		return zero, ErrNotFound
	}
	return item, nil
}

func (s *InMemoryStore[T]) Update(ctx context.Context, id string, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return ErrNotFound
	}
	s.items[id] = item
	return nil
}

func (s *InMemoryStore[T]) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}

// List returns items matching filterFn, ordered by sortFn. A nil filterFn
// matches everything; a nil sortFn leaves the order unspecified.
func (s *InMemoryStore[T]) List(
	ctx context.Context,
	filter interface{},
	filterFn func(ctx context.Context, item T, filter interface{}) bool,
	sortFn func(i, j T) bool,
) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if filterFn == nil || filterFn(ctx, item, filter) {
			result = append(result, item)
		}
	}
	if sortFn != nil {
		sort.Slice(result, func(i, j int) bool {
			return sortFn(result[i], result[j])
		})
	}
	return result, nil
}

func (s *InMemoryStore[T]) Count(
	ctx context.Context,
	filter interface{},
	filterFn func(ctx context.Context, item T, filter interface{}) bool,
) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, item := range s.items {
		if filterFn == nil || filterFn(ctx, item, filter) {
			count++
		}
	}
	return count, nil
}

// applyPagination slices a sorted result the way the SQL repositories
// apply LIMIT and OFFSET. A nil Limit means unbounded, matching the
// no-limit filters used by report aggregations.
func applyPagination[T any](items []T, q *types.QueryFilter) []T {
	if q == nil {
		return items
	}
	if offset := q.GetOffset(); offset > 0 {
		if offset >= len(items) {
			return nil
		}
		items = items[offset:]
	}
	if q.Limit != nil && len(items) > q.GetLimit() {
		items = items[:q.GetLimit()]
	}
	return items
}

// Clear removes all items from the store.
func (s *InMemoryStore[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]T)
}
