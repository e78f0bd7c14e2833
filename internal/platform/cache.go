package platform

import (
	"context"
	"sync"
	"time"

	"github.com/daleelbalady/storefront-gateway/internal/catalog"
)

// MenuSource is the slice of the client the cache needs.
type MenuSource interface {
	GetMenu(ctx context.Context, shopID string) ([]catalog.MenuItem, error)
	GetShop(ctx context.Context, identifier string) (*catalog.Shop, error)
}

type menuEntry struct {
	items     []catalog.MenuItem
	fetchedAt time.Time
}

type shopEntry struct {
	shop      *catalog.Shop
	fetchedAt time.Time
}

// MenuCache keeps per-shop catalog snapshots for a short TTL so repeated
// storefront reads don't hammer the platform. Stale entries are refetched
// on demand; a failed refresh falls back to the stale copy.
type MenuCache struct {
	source MenuSource
	ttl    time.Duration

	mu    sync.RWMutex
	menus map[string]menuEntry
	shops map[string]shopEntry

	now func() time.Time
}

// NewMenuCache wraps a menu source with TTL caching.
func NewMenuCache(source MenuSource, ttl time.Duration) *MenuCache {
	return &MenuCache{
		source: source,
		ttl:    ttl,
		menus:  make(map[string]menuEntry),
		shops:  make(map[string]shopEntry),
		now:    time.Now,
	}
}

// Menu returns the shop's catalog, from cache when fresh.
func (c *MenuCache) Menu(ctx context.Context, shopID string) ([]catalog.MenuItem, error) {
	c.mu.RLock()
	entry, ok := c.menus[shopID]
	c.mu.RUnlock()

	fresh := ok && c.now().Sub(entry.fetchedAt) < c.ttl
	if fresh {
		return entry.items, nil
	}

	items, err := c.source.GetMenu(ctx, shopID)
	if err != nil {
		if ok {
			return entry.items, nil
		}
		return nil, err
	}

	c.mu.Lock()
	c.menus[shopID] = menuEntry{items: items, fetchedAt: c.now()}
	c.mu.Unlock()
	return items, nil
}

// Shop returns the shop profile, from cache when fresh.
func (c *MenuCache) Shop(ctx context.Context, identifier string) (*catalog.Shop, error) {
	c.mu.RLock()
	entry, ok := c.shops[identifier]
	c.mu.RUnlock()

	fresh := ok && c.now().Sub(entry.fetchedAt) < c.ttl
	if fresh {
		return entry.shop, nil
	}

	shop, err := c.source.GetShop(ctx, identifier)
	if err != nil {
		if ok {
			return entry.shop, nil
		}
		return nil, err
	}

	c.mu.Lock()
	c.shops[identifier] = shopEntry{shop: shop, fetchedAt: c.now()}
	c.mu.Unlock()
	return shop, nil
}

// Item looks up one item within the cached catalog.
func (c *MenuCache) Item(ctx context.Context, shopID, itemID string) (*catalog.MenuItem, error) {
	items, err := c.Menu(ctx, shopID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == itemID {
			return &items[i], nil
		}
	}
	return nil, nil
}

// Invalidate drops cached state for a shop after an admin mutation.
func (c *MenuCache) Invalidate(shopID string) {
	c.mu.Lock()
	delete(c.menus, shopID)
	delete(c.shops, shopID)
	c.mu.Unlock()
}
