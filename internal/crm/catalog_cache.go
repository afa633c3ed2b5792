package crm

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/leadbrief/pkg/models"
)

const catalogCacheKey = "product_catalog"

// CachedStore wraps a Store with a process-wide TTL cache for the
// product catalog. Catalog staleness is acceptable; concurrent
// refreshes race safely since entries are immutable snapshots and the
// last writer wins. All other queries pass through uncached.
type CachedStore struct {
	Store
	catalog *expirable.LRU[string, models.Catalog]
}

// NewCachedStore wraps store with a catalog cache holding one entry
// for ttl. A non-positive ttl disables expiry.
func NewCachedStore(store Store, ttl time.Duration) *CachedStore {
	return &CachedStore{
		Store:   store,
		catalog: expirable.NewLRU[string, models.Catalog](1, nil, ttl),
	}
}

// ProductCatalog returns the cached catalog snapshot, refreshing it
// from the CRM when absent or expired.
func (s *CachedStore) ProductCatalog(ctx context.Context) (models.Catalog, error) {
	if cached, ok := s.catalog.Get(catalogCacheKey); ok {
		return cached, nil
	}

	catalog, err := s.Store.ProductCatalog(ctx)
	if err != nil {
		return models.Catalog{}, err
	}

	s.catalog.Add(catalogCacheKey, catalog)
	return catalog, nil
}
