package cache

import (
	"sync"
	"time"

	"github.com/kiranabill/backend/internal/domain"
)

// CatalogCache is a thread-safe TTL cache for the product catalog.
// Every parse request needs the full catalog for matching; caching it
// briefly avoids a database read per receipt or transcript. Product
// mutations invalidate the cache so matching never runs against a
// catalog older than the TTL.
type CatalogCache struct {
	mutex      sync.RWMutex
	products   []domain.CatalogProduct
	expiration time.Time
	ttl        time.Duration
}

// NewCatalogCache creates a catalog cache with the given TTL.
func NewCatalogCache(ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CatalogCache{ttl: ttl}
}

// Get returns the cached catalog and true, or nil and false when the
// cache is empty or expired.
func (c *CatalogCache) Get() ([]domain.CatalogProduct, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if c.products == nil || time.Now().After(c.expiration) {
		return nil, false
	}
	return c.products, true
}

// Set replaces the cached catalog and restarts the TTL clock.
func (c *CatalogCache) Set(products []domain.CatalogProduct) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.products = products
	c.expiration = time.Now().Add(c.ttl)
}

// Invalidate drops the cached catalog. Called after any product
// mutation so the next parse sees fresh data.
func (c *CatalogCache) Invalidate() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.products = nil
}

// Size returns the number of cached products (for debugging).
func (c *CatalogCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.products)
}
