// Package cache defines the result cache contract of the pack service.
package cache

import (
	"strconv"

	"github.com/guttosm/pack-planner/internal/domain/model"
)

// Key identifies a computed plan: the same quantity against the same registry version.
type Key struct {
	Quantity int
	Version  uint64
}

// String renders the key as "quantity:version".
func (k Key) String() string {
	return strconv.Itoa(k.Quantity) + ":" + strconv.FormatUint(k.Version, 10)
}

// Cache defines the interface for cache operations.
type Cache interface {
	Get(key Key) (model.PackResult, bool)
	Set(key Key, value model.PackResult)
	Invalidate(key Key)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
