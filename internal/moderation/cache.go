package moderation

import (
	"sync"
	"time"

	"chebplace/internal/domain/reviews"
	"chebplace/internal/metrics"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// approvedCache keeps the public review list of recently viewed places. A
// list read from the store is only cached if no invalidation happened while
// it was being read, otherwise an approval could be hidden until the entry
// expires.
type approvedCache struct {
	mu         sync.Mutex
	lru        *expirable.LRU[int64, []reviews.Review]
	generation uint64
}

func newApprovedCache(size int, ttl time.Duration) *approvedCache {
	if size <= 0 {
		return nil
	}
	return &approvedCache{lru: expirable.NewLRU[int64, []reviews.Review](size, nil, ttl)}
}

func (c *approvedCache) get(placeID int64) ([]reviews.Review, uint64, bool) {
	if c == nil {
		return nil, 0, false
	}
	c.mu.Lock()
	gen := c.generation
	c.mu.Unlock()

	list, ok := c.lru.Get(placeID)
	if ok {
		metrics.CacheHit()
		return list, gen, true
	}
	metrics.CacheMiss()
	return nil, gen, false
}

func (c *approvedCache) put(placeID int64, list []reviews.Review, gen uint64) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	c.lru.Add(placeID, list)
}

func (c *approvedCache) invalidate(placeID int64) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.lru.Remove(placeID)
}
