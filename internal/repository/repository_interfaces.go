// Package repository provides interfaces for repository operations.
package repository

import (
	"context"
)

// PackSizesRepositoryInterface persists the pack size registry, one document per size.
type PackSizesRepositoryInterface interface {
	// List returns every stored size in ascending order.
	List(ctx context.Context) ([]int, error)
	// Insert stores size. It reports false when the size was already stored.
	Insert(ctx context.Context, size int, createdBy string) (bool, error)
	// Delete removes size, returning ErrPackSizeNotFound when nothing matched.
	Delete(ctx context.Context, size int) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
