package offline

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	QuerySymptoms       = "symptoms"
	QueryTriggers       = "triggers"
	QueryCommonSymptoms = "common_symptoms"

	defaultQueryCacheSize = 32
	defaultQueryTTL       = 30 * time.Second
)

// QueryCache memoizes read results by query key until they expire or are
// invalidated by a write.
type QueryCache struct {
	entries *expirable.LRU[string, any]
}

func NewQueryCache(size int, ttl time.Duration) *QueryCache {
	if size <= 0 {
		size = defaultQueryCacheSize
	}
	if ttl <= 0 {
		ttl = defaultQueryTTL
	}
	return &QueryCache{entries: expirable.NewLRU[string, any](size, nil, ttl)}
}

func (cache *QueryCache) Get(key string) (any, bool) {
	return cache.entries.Get(key)
}

func (cache *QueryCache) Set(key string, value any) {
	cache.entries.Add(key, value)
}

func (cache *QueryCache) Invalidate(keys ...string) {
	for _, key := range keys {
		cache.entries.Remove(key)
	}
}
