package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pack-planner/internal/domain/model"
	"github.com/guttosm/pack-planner/internal/mocks"
	"github.com/guttosm/pack-planner/internal/service/cache"
)

// countingCache records calls so tests can observe cache use.
type countingCache struct {
	mu      sync.Mutex
	entries map[cache.Key]model.PackResult
	gets    int
	sets    int
	clears  int
}

func newCountingCache() *countingCache {
	return &countingCache{entries: make(map[cache.Key]model.PackResult)}
}

func (c *countingCache) Get(key cache.Key) (model.PackResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	v, ok := c.entries[key]
	return v, ok
}

func (c *countingCache) Set(key cache.Key, value model.PackResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.entries[key] = value
}

func (c *countingCache) Invalidate(key cache.Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *countingCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clears++
	c.entries = make(map[cache.Key]model.PackResult)
}

func (c *countingCache) Stop() {}

func newTestPackService(t *testing.T, sizes []int, opts ...PackOption) *PackServiceImpl {
	t.Helper()
	return NewPackService(newLoadedRegistry(t, sizes...), NewOptimizer(), opts...)
}

func TestPackService_ComputePacks(t *testing.T) {
	tests := []struct {
		name        string
		sizes       []int
		quantity    int
		expected    model.PackResult
		expectedErr error
	}{
		{
			name:     "single item",
			sizes:    defaultSizes,
			quantity: 1,
			expected: model.PackResult{
				OrderedItems: 1, TotalItems: 250, TotalPacks: 1,
				Packs: []model.Pack{{Size: 250, Quantity: 1}},
			},
		},
		{
			name:     "twelve thousand and one",
			sizes:    defaultSizes,
			quantity: 12001,
			expected: model.PackResult{
				OrderedItems: 12001, TotalItems: 15000, TotalPacks: 3,
				Packs: []model.Pack{{Size: 5000, Quantity: 3}},
			},
		},
		{
			name:     "co-prime sizes",
			sizes:    []int{23, 31, 53},
			quantity: 500000,
			expected: model.PackResult{
				OrderedItems: 500000, TotalItems: 500002, TotalPacks: 9434,
				Packs: []model.Pack{{Size: 53, Quantity: 9434}},
			},
		},
		{
			name:        "zero quantity",
			sizes:       defaultSizes,
			quantity:    0,
			expected:    model.Empty(0),
			expectedErr: ErrInvalidQuantity,
		},
		{
			name:        "negative quantity",
			sizes:       defaultSizes,
			quantity:    -5,
			expected:    model.Empty(-5),
			expectedErr: ErrInvalidQuantity,
		},
		{
			name:        "empty registry",
			sizes:       nil,
			quantity:    10,
			expected:    model.Empty(10),
			expectedErr: ErrNoPackSizesConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestPackService(t, tt.sizes)

			result, err := svc.ComputePacks(context.Background(), tt.quantity)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPackService_ComputePacks_Cache(t *testing.T) {
	c := newCountingCache()
	svc := newTestPackService(t, defaultSizes, WithCacheInterface(c))
	ctx := context.Background()

	first, err := svc.ComputePacks(ctx, 12001)
	require.NoError(t, err)
	second, err := svc.ComputePacks(ctx, 12001)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.sets)
	assert.Equal(t, 2, c.gets)

	_, err = svc.ComputePacks(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, 2, c.gets)
}

func TestPackService_MutationChangesPlan(t *testing.T) {
	c := newCountingCache()
	svc := newTestPackService(t, []int{250, 500}, WithCacheInterface(c))
	ctx := context.Background()

	before, err := svc.ComputePacks(ctx, 5000)
	require.NoError(t, err)
	assert.Equal(t, 10, before.TotalPacks)

	set, added, err := svc.AddPackSize(ctx, 5000)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []int{250, 500, 5000}, set.Sizes)
	assert.Equal(t, 1, c.clears)

	after, err := svc.ComputePacks(ctx, 5000)
	require.NoError(t, err)
	assert.Equal(t, []model.Pack{{Size: 5000, Quantity: 1}}, after.Packs)

	_, added, err = svc.AddPackSize(ctx, 5000)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, c.clears)

	set, err = svc.RemovePackSize(ctx, 5000)
	require.NoError(t, err)
	assert.Equal(t, []int{250, 500}, set.Sizes)
	assert.Equal(t, 2, c.clears)

	_, err = svc.RemovePackSize(ctx, 5000)
	assert.ErrorIs(t, err, ErrPackSizeNotFound)
	assert.Equal(t, 2, c.clears)
}

func TestPackService_AddPackSize_Errors(t *testing.T) {
	errDown := errors.New("store unavailable")
	repo := mocks.NewMockPackSizesRepositoryInterface(t)
	repo.On("List", mock.Anything).Return([]int{250}, nil)
	repo.On("Insert", mock.Anything, 500, SystemOperator).Return(false, errDown)

	reg := NewRegistry(repo)
	reg.Load(context.Background(), nil)
	svc := NewPackService(reg, NewOptimizer())

	set, added, err := svc.AddPackSize(context.Background(), 500)
	assert.ErrorIs(t, err, errDown)
	assert.False(t, added)
	assert.Equal(t, []int{250}, set.Sizes)

	_, _, err = svc.AddPackSize(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestPackService_ComputePacksWithSizes(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		sizes         []int
		expectedPacks []model.Pack
		expectedErr   error
	}{
		{
			name:          "ad-hoc sizes",
			quantity:      501,
			sizes:         []int{250, 500, 1000},
			expectedPacks: []model.Pack{{Size: 1000, Quantity: 1}},
		},
		{
			name:          "duplicates allowed",
			quantity:      40,
			sizes:         []int{23, 23, 31},
			expectedPacks: []model.Pack{{Size: 23, Quantity: 2}},
		},
		{
			name:        "non-positive size",
			quantity:    10,
			sizes:       []int{5, 0},
			expectedErr: ErrInvalidSize,
		},
		{
			name:        "empty sizes",
			quantity:    10,
			sizes:       []int{},
			expectedErr: ErrNoPackSizesConfigured,
		},
		{
			name:        "invalid quantity",
			quantity:    0,
			sizes:       []int{5},
			expectedErr: ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCountingCache()
			svc := newTestPackService(t, defaultSizes, WithCacheInterface(c))

			result, err := svc.ComputePacksWithSizes(context.Background(), tt.quantity, tt.sizes)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, result.Packs)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedPacks, result.Packs)
			}
			assert.Zero(t, c.gets)
			assert.Zero(t, c.sets)
		})
	}
}

func TestPackService_LargeOrdersWithCloseSizes(t *testing.T) {
	ctx := context.Background()
	svc := newTestPackService(t, defaultSizes)
	_, added, err := svc.AddPackSize(ctx, 4999)
	require.NoError(t, err)
	require.True(t, added)

	tests := []struct {
		name          string
		quantity      int
		expectedItems int
		expectedPacks int
	}{
		{name: "one million", quantity: 1_000_000, expectedItems: 1_000_000, expectedPacks: 200},
		{name: "twenty million and one", quantity: 20_000_001, expectedItems: 20_000_001, expectedPacks: 4001},
		{name: "one billion", quantity: 1_000_000_000, expectedItems: 1_000_000_000, expectedPacks: 200_000},
		{name: "one billion minus one", quantity: 999_999_999, expectedItems: 999_999_999, expectedPacks: 200_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.ComputePacks(ctx, tt.quantity)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedItems, result.TotalItems)
			assert.Equal(t, tt.expectedPacks, result.TotalPacks)
		})
	}

	result, err := svc.ComputePacksWithSizes(ctx, 50_000_001, []int{99_991, 100_000})
	require.NoError(t, err)
	assert.Equal(t, []model.Pack{{Size: 99_991, Quantity: 501}}, result.Packs)
	assert.Equal(t, 50_095_491, result.TotalItems)
}

// blockingCache holds every Set until released so tests can keep a computation in flight.
type blockingCache struct {
	*countingCache
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (c *blockingCache) Set(key cache.Key, value model.PackResult) {
	c.once.Do(func() { close(c.entered) })
	<-c.release
	c.countingCache.Set(key, value)
}

func TestPackService_SharedComputationOutlivesCanceledCaller(t *testing.T) {
	bc := &blockingCache{
		countingCache: newCountingCache(),
		entered:       make(chan struct{}),
		release:       make(chan struct{}),
	}
	svc := newTestPackService(t, defaultSizes, WithCacheInterface(bc))

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.ComputePacks(firstCtx, 12001)
		firstErr <- err
	}()
	<-bc.entered

	type outcome struct {
		result model.PackResult
		err    error
	}
	second := make(chan outcome, 1)
	go func() {
		result, err := svc.ComputePacks(context.Background(), 12001)
		second <- outcome{result, err}
	}()

	cancelFirst()
	select {
	case err := <-firstErr:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("canceled caller did not return")
	}

	close(bc.release)
	select {
	case out := <-second:
		require.NoError(t, out.err)
		assert.Equal(t, 15000, out.result.TotalItems)
	case <-time.After(2 * time.Second):
		t.Fatal("second caller did not return")
	}

	_, ok := bc.countingCache.Get(cache.Key{Quantity: 12001, Version: svc.ListPackSizes(context.Background()).Version})
	assert.True(t, ok)
}

func TestPackService_CanceledContext(t *testing.T) {
	svc := newTestPackService(t, defaultSizes)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ComputePacks(ctx, 12001)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPackService_ExpiredDeadline(t *testing.T) {
	svc := newTestPackService(t, defaultSizes)
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := svc.ComputePacks(ctx, 12001)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = svc.ComputePacksWithSizes(ctx, 12001, []int{250, 5000})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPackService_ListPackSizes(t *testing.T) {
	svc := newTestPackService(t, []int{500, 250})

	set := svc.ListPackSizes(context.Background())
	assert.Equal(t, []int{250, 500}, set.Sizes)
	assert.Equal(t, uint64(1), set.Version)
}

func TestPackService_ConcurrentCompute(t *testing.T) {
	svc := newTestPackService(t, []int{23, 31, 53}, WithCache(128, time.Minute))
	t.Cleanup(svc.Cache().Stop)

	want := model.PackResult{
		OrderedItems: 500000, TotalItems: 500002, TotalPacks: 9434,
		Packs: []model.Pack{{Size: 53, Quantity: 9434}},
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := svc.ComputePacks(context.Background(), 500000)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

func TestWithCache_DisabledForZeroCapacity(t *testing.T) {
	svc := newTestPackService(t, defaultSizes, WithCache(0, time.Minute))
	assert.Nil(t, svc.Cache())
	assert.NotNil(t, svc.Registry())
}
