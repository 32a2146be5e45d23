package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/pack-planner/internal/domain/model"
	"github.com/guttosm/pack-planner/internal/metrics"
	"github.com/guttosm/pack-planner/internal/repository"
)

// Registry owns the set of available pack sizes.
//
// Readers take an immutable snapshot and never block. Writers are serialised,
// and a configured store is written before the in-memory set changes, so a store
// failure leaves the set untouched.
type Registry struct {
	mu      sync.Mutex
	current atomic.Pointer[model.PackSizeSet]
	repo    repository.PackSizesRepositoryInterface
}

// NewRegistry creates an empty registry. repo may be nil for an in-memory registry.
func NewRegistry(repo repository.PackSizesRepositoryInterface) *Registry {
	r := &Registry{repo: repo}
	r.current.Store(&model.PackSizeSet{Sizes: []int{}})
	return r
}

// Load replaces the set with the stored sizes, or with defaults when there is no
// store or it is empty or unreachable. It always bumps the version.
func (r *Registry) Load(ctx context.Context, defaults []int) model.PackSizeSet {
	r.mu.Lock()
	defer r.mu.Unlock()

	sizes := defaults
	if r.repo != nil {
		stored, err := r.repo.List(ctx)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("Failed to load pack sizes from store, using defaults")
		case len(stored) > 0:
			sizes = stored
		}
	}

	next := &model.PackSizeSet{
		Sizes:   sortedPositive(sizes),
		Version: r.current.Load().Version + 1,
	}
	r.current.Store(next)
	metrics.PackSizesRegistered.Set(float64(next.Len()))

	log.Info().
		Ints("sizes", next.Sizes).
		Uint64("version", next.Version).
		Msg("Pack size registry loaded")
	return *next
}

// Add registers size. Adding a registered size is a no-op reported as added=false.
func (r *Registry) Add(ctx context.Context, size int) (bool, error) {
	if size <= 0 {
		metrics.RecordRegistryMutation("add", "invalid", r.Snapshot().Len())
		return false, fmt.Errorf("add pack size %d: %w", size, ErrInvalidSize)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.current.Load()
	if cur.Contains(size) {
		metrics.RecordRegistryMutation("add", "noop", cur.Len())
		return false, nil
	}

	if r.repo != nil {
		if _, err := r.repo.Insert(ctx, size, OperatorFromContext(ctx)); err != nil {
			metrics.RecordRegistryMutation("add", "error", cur.Len())
			return false, fmt.Errorf("persist pack size %d: %w", size, err)
		}
	}

	next := &model.PackSizeSet{Sizes: insertSorted(cur.Sizes, size), Version: cur.Version + 1}
	r.current.Store(next)
	metrics.RecordRegistryMutation("add", "added", next.Len())
	return true, nil
}

// Remove unregisters size. An unknown size, including any non-positive value,
// is ErrPackSizeNotFound and leaves the set unchanged.
func (r *Registry) Remove(ctx context.Context, size int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.current.Load()
	if !cur.Contains(size) {
		metrics.RecordRegistryMutation("remove", "not_found", cur.Len())
		return fmt.Errorf("remove pack size %d: %w", size, ErrPackSizeNotFound)
	}

	if r.repo != nil {
		err := r.repo.Delete(ctx, size)
		switch {
		case errors.Is(err, repository.ErrPackSizeNotFound):
			// store already lacks it; converge memory to the store
			log.Warn().Int("size", size).Msg("Pack size missing from store during remove")
		case err != nil:
			metrics.RecordRegistryMutation("remove", "error", cur.Len())
			return fmt.Errorf("delete pack size %d: %w", size, err)
		}
	}

	next := &model.PackSizeSet{Sizes: deleteSorted(cur.Sizes, size), Version: cur.Version + 1}
	r.current.Store(next)
	metrics.RecordRegistryMutation("remove", "removed", next.Len())
	return nil
}

// List returns the sizes in ascending order. The slice is a copy.
func (r *Registry) List() []int {
	sizes := r.current.Load().Sizes
	out := make([]int, len(sizes))
	copy(out, sizes)
	return out
}

// Snapshot returns the current immutable set. Callers must not modify Sizes.
func (r *Registry) Snapshot() model.PackSizeSet {
	return *r.current.Load()
}

func sortedPositive(sizes []int) []int {
	out := make([]int, 0, len(sizes))
	for _, s := range sizes {
		if s > 0 {
			out = append(out, s)
		}
	}
	sort.Ints(out)

	uniq := out[:0]
	for i, s := range out {
		if i == 0 || s != out[i-1] {
			uniq = append(uniq, s)
		}
	}
	return uniq
}

func insertSorted(sizes []int, size int) []int {
	i := sort.SearchInts(sizes, size)
	out := make([]int, 0, len(sizes)+1)
	out = append(out, sizes[:i]...)
	out = append(out, size)
	return append(out, sizes[i:]...)
}

func deleteSorted(sizes []int, size int) []int {
	i := sort.SearchInts(sizes, size)
	out := make([]int, 0, len(sizes)-1)
	out = append(out, sizes[:i]...)
	return append(out, sizes[i+1:]...)
}
