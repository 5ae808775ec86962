package store

import (
	"context"
	"sync"

	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

// Memory is the in-process backend, used as the default and in tests.
type Memory[T any] struct {
	mu   sync.RWMutex
	docs map[uuid.UUID]T
}

func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{
		docs: make(map[uuid.UUID]T),
	}
}

func (m *Memory[T]) Create(_ context.Context, id uuid.UUID, doc T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[id]; exists {
		return errs.Newf("document %s already exists", id)
	}
	m.docs[id] = doc
	return nil
}

func (m *Memory[T]) FindOne(_ context.Context, id uuid.UUID) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return doc, nil
}

func (m *Memory[T]) FindOneAndUpdate(_ context.Context, id uuid.UUID, apply func(T) T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	updated := apply(doc)
	m.docs[id] = updated
	return updated, nil
}

func (m *Memory[T]) FindOneAndDelete(_ context.Context, id uuid.UUID) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	delete(m.docs, id)
	return doc, nil
}

func (m *Memory[T]) Find(_ context.Context, match func(T) bool) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]T, 0, len(m.docs))
	for _, doc := range m.docs {
		if match == nil || match(doc) {
			result = append(result, doc)
		}
	}
	return result, nil
}
