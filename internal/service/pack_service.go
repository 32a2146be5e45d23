package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/guttosm/pack-planner/internal/domain/model"
	"github.com/guttosm/pack-planner/internal/metrics"
	"github.com/guttosm/pack-planner/internal/service/cache"
)

// DefaultPackSizes are used when neither the store nor the configuration provide sizes.
var DefaultPackSizes = []int{250, 500, 1000, 2000, 5000}

// PackService defines the pack size and plan operations exposed to the transport layer.
type PackService interface {
	AddPackSize(ctx context.Context, size int) (model.PackSizeSet, bool, error)
	RemovePackSize(ctx context.Context, size int) (model.PackSizeSet, error)
	ListPackSizes(ctx context.Context) model.PackSizeSet
	ComputePacks(ctx context.Context, quantity int) (model.PackResult, error)
	ComputePacksWithSizes(ctx context.Context, quantity int, sizes []int) (model.PackResult, error)
}

// PackOption configures a PackServiceImpl.
type PackOption func(*PackServiceImpl)

// PackServiceImpl implements PackService on top of a Registry and an Optimizer.
type PackServiceImpl struct {
	registry  *Registry
	optimizer *Optimizer
	cache     cache.Cache
	group     singleflight.Group
}

// NewPackService creates a pack service. Without options it has no cache.
func NewPackService(registry *Registry, optimizer *Optimizer, opts ...PackOption) *PackServiceImpl {
	s := &PackServiceImpl{
		registry:  registry,
		optimizer: optimizer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCache enables a sharded result cache with the given capacity and TTL.
func WithCache(capacity int, ttl time.Duration) PackOption {
	return func(s *PackServiceImpl) {
		if capacity > 0 {
			s.cache = NewShardedCache(capacity, ttl, 0)
		}
	}
}

// WithCacheInterface injects a custom cache implementation.
func WithCacheInterface(c cache.Cache) PackOption {
	return func(s *PackServiceImpl) {
		s.cache = c
	}
}

// Registry returns the underlying registry.
func (s *PackServiceImpl) Registry() *Registry {
	return s.registry
}

// Cache returns the result cache, or nil when caching is disabled.
func (s *PackServiceImpl) Cache() cache.Cache {
	return s.cache
}

// AddPackSize registers size and returns the resulting set.
func (s *PackServiceImpl) AddPackSize(ctx context.Context, size int) (model.PackSizeSet, bool, error) {
	added, err := s.registry.Add(ctx, size)
	if err != nil {
		return s.registry.Snapshot(), false, err
	}
	if added {
		s.invalidate()
		log.Info().
			Int("size", size).
			Str("operator", OperatorFromContext(ctx)).
			Msg("Pack size added")
	}
	return s.registry.Snapshot(), added, nil
}

// RemovePackSize unregisters size and returns the resulting set.
func (s *PackServiceImpl) RemovePackSize(ctx context.Context, size int) (model.PackSizeSet, error) {
	if err := s.registry.Remove(ctx, size); err != nil {
		return s.registry.Snapshot(), err
	}
	s.invalidate()
	log.Info().
		Int("size", size).
		Str("operator", OperatorFromContext(ctx)).
		Msg("Pack size removed")
	return s.registry.Snapshot(), nil
}

// ListPackSizes returns the current registry snapshot.
func (s *PackServiceImpl) ListPackSizes(_ context.Context) model.PackSizeSet {
	return s.registry.Snapshot()
}

// ComputePacks plans quantity against one registry snapshot. Identical concurrent
// requests for the same snapshot share one computation, which is detached from
// the cancellation of whichever caller started it. Each caller still returns as
// soon as its own context is done.
func (s *PackServiceImpl) ComputePacks(ctx context.Context, quantity int) (model.PackResult, error) {
	if quantity <= 0 {
		return model.Empty(quantity), fmt.Errorf("compute packs for %d: %w", quantity, ErrInvalidQuantity)
	}
	if err := ctx.Err(); err != nil {
		return model.Empty(quantity), err
	}

	snap := s.registry.Snapshot()
	if snap.Len() == 0 {
		return model.Empty(quantity), ErrNoPackSizesConfigured
	}

	key := cache.Key{Quantity: quantity, Version: snap.Version}
	if s.cache != nil {
		if result, ok := s.cache.Get(key); ok {
			metrics.RecordPackComputation(0, metrics.StatusCached)
			return result, nil
		}
	}

	ch := s.group.DoChan(key.String(), func() (interface{}, error) {
		result, err := s.compute(context.WithoutCancel(ctx), quantity, snap.Sizes)
		if err == nil && s.cache != nil {
			s.cache.Set(key, result)
		}
		return result, err
	})

	select {
	case <-ctx.Done():
		return model.Empty(quantity), ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return model.Empty(quantity), res.Err
		}
		if res.Shared {
			metrics.RecordPackComputation(0, metrics.StatusShared)
		}
		return res.Val.(model.PackResult), nil
	}
}

// ComputePacksWithSizes plans quantity against ad-hoc sizes, bypassing the
// registry and the cache.
func (s *PackServiceImpl) ComputePacksWithSizes(ctx context.Context, quantity int, sizes []int) (model.PackResult, error) {
	if quantity <= 0 {
		return model.Empty(quantity), fmt.Errorf("compute packs for %d: %w", quantity, ErrInvalidQuantity)
	}
	if len(sizes) == 0 {
		return model.Empty(quantity), ErrNoPackSizesConfigured
	}
	for _, size := range sizes {
		if size <= 0 {
			return model.Empty(quantity), fmt.Errorf("pack size %d: %w", size, ErrInvalidSize)
		}
	}
	return s.compute(ctx, quantity, sizes)
}

func (s *PackServiceImpl) compute(ctx context.Context, quantity int, sizes []int) (model.PackResult, error) {
	if err := ctx.Err(); err != nil {
		metrics.RecordPackComputation(0, metrics.StatusError)
		return model.Empty(quantity), err
	}

	start := time.Now()
	plan := s.optimizer.Compute(quantity, sizes)
	elapsed := time.Since(start)
	if err := ctx.Err(); err != nil {
		metrics.RecordPackComputation(elapsed, metrics.StatusError)
		return model.Empty(quantity), err
	}
	metrics.RecordPackComputation(elapsed, metrics.StatusSuccess)

	result := model.NewPackResult(quantity, plan)
	log.Debug().
		Int("quantity", quantity).
		Int("total_items", result.TotalItems).
		Int("total_packs", result.TotalPacks).
		Dur("elapsed", elapsed).
		Msg("Pack plan computed")
	return result, nil
}

// invalidate drops cached plans after an effective mutation. Entries are already
// unreachable through the new version; clearing releases their memory.
func (s *PackServiceImpl) invalidate() {
	if s.cache == nil {
		return
	}
	s.cache.Clear()
	if cm, ok := s.cache.(cache.CacheWithMetrics); ok {
		m := cm.Metrics()
		metrics.UpdateCacheMetrics(m.Size, m.Capacity)
	}
}
