// Package store provides the generic keyed document store the services
// persist through. Entities are plain structs; there is no shared document
// base type, just this interface implemented once per backend.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("document not found")

type Store[T any] interface {
	Create(ctx context.Context, id uuid.UUID, doc T) error
	FindOne(ctx context.Context, id uuid.UUID) (T, error)
	// FindOneAndUpdate applies apply to the current document and persists the
	// result, returning the updated document.
	FindOneAndUpdate(ctx context.Context, id uuid.UUID, apply func(T) T) (T, error)
	// FindOneAndDelete removes the document and returns its last value.
	FindOneAndDelete(ctx context.Context, id uuid.UUID) (T, error)
	// Find returns all documents matching the predicate. A nil predicate
	// matches everything.
	Find(ctx context.Context, match func(T) bool) ([]T, error)
}
