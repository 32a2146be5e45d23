package repository

import (
	"context"
	"errors"

	"github.com/guttosm/pack-planner/internal/circuitbreaker"
)

// PackSizesRepositoryWithCircuitBreaker guards a pack sizes store with a circuit breaker.
// An open circuit surfaces as circuitbreaker.ErrCircuitOpen so the registry refuses
// to mutate instead of diverging from the store.
type PackSizesRepositoryWithCircuitBreaker struct {
	repo           PackSizesRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewPackSizesRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewPackSizesRepositoryWithCircuitBreaker(repo PackSizesRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *PackSizesRepositoryWithCircuitBreaker {
	return &PackSizesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// List returns the stored sizes.
func (r *PackSizesRepositoryWithCircuitBreaker) List(ctx context.Context) ([]int, error) {
	var result []int
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx)
		return cbErr
	})
	return result, err
}

// Insert stores size.
func (r *PackSizesRepositoryWithCircuitBreaker) Insert(ctx context.Context, size int, createdBy string) (bool, error) {
	var inserted bool
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		inserted, cbErr = r.repo.Insert(ctx, size, createdBy)
		return cbErr
	})
	return inserted, err
}

// Delete removes size. A missing document is a valid answer and does not trip the breaker.
func (r *PackSizesRepositoryWithCircuitBreaker) Delete(ctx context.Context, size int) error {
	var notFound bool
	err := r.circuitBreaker.Execute(ctx, func() error {
		cbErr := r.repo.Delete(ctx, size)
		if errors.Is(cbErr, ErrPackSizeNotFound) {
			notFound = true
			return nil
		}
		return cbErr
	})
	if err != nil {
		return err
	}
	if notFound {
		return ErrPackSizeNotFound
	}
	return nil
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *PackSizesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps a logs store with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry. Writes are dropped while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries. Writes are dropped while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
