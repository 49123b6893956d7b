package inventory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shapedthought/azure-vm-assessment/model"
)

// SKUCache memoizes, per region, the mapping from a VM size name to its
// hardware capability. The catalog for a region is fetched once on first
// access and never refreshed or evicted within a run; capability data is
// keyed by region rather than subscription, so the cache is shared
// across subscription passes.
type SKUCache struct {
	fetcher SizeCatalogFetcher

	mu      sync.Mutex
	regions map[string]map[string]model.SizeCapability
}

func NewSKUCache(fetcher SizeCatalogFetcher) *SKUCache {
	return &SKUCache{
		fetcher: fetcher,
		regions: make(map[string]map[string]model.SizeCapability),
	}
}

// Resolve returns the capability for a size in a region. The second
// return is false when the size is absent from the region's catalog
// (deprecated or legacy sizes); the caller substitutes placeholders and
// continues. The mutex is held across the one-time catalog fetch, so
// population for a region happens-before any read for that region.
func (c *SKUCache) Resolve(ctx context.Context, location, size string) (model.SizeCapability, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := strings.ToLower(location)
	catalog, ok := c.regions[key]
	if !ok {
		sizes, err := c.fetcher.ListSizes(ctx, location)
		if err != nil {
			return model.SizeCapability{}, false, fmt.Errorf("size catalog for %s: %w", location, err)
		}
		catalog = make(map[string]model.SizeCapability, len(sizes))
		for _, s := range sizes {
			catalog[strings.ToLower(s.Name)] = s
		}
		c.regions[key] = catalog
	}

	capability, found := catalog[strings.ToLower(size)]
	return capability, found, nil
}
