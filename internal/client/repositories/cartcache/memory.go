// Package cartcache holds the last server-reported cart snapshot in
// memory. It exists to answer cheap "is this already in my cart" checks
// without a network round trip; it dies with the process and is never
// authoritative.
package cartcache

import (
	"sync"

	"github.com/sunflowers/shopfront/internal/client/models"
)

type Cache struct {
	mu    sync.RWMutex
	lines []models.CartItem
}

func New() *Cache {
	return &Cache{}
}

// Put replaces the cached snapshot. The slice is copied so later mutations
// by the caller cannot alias cached state.
func (c *Cache) Put(lines []models.CartItem) {
	cp := make([]models.CartItem, len(lines))
	copy(cp, lines)

	c.mu.Lock()
	c.lines = cp
	c.mu.Unlock()
}

// Lines returns a copy of the cached snapshot.
func (c *Cache) Lines() []models.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cp := make([]models.CartItem, len(c.lines))
	copy(cp, c.lines)
	return cp
}

// Contains reports whether any cached line refers to the given product.
// Display hint only: the cache can be stale relative to the server.
func (c *Cache) Contains(productID int64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.lines {
		if c.lines[i].Inventory.Product.ID == productID {
			return true
		}
	}
	return false
}

// Purge drops the snapshot (logout, token expiry).
func (c *Cache) Purge() {
	c.mu.Lock()
	c.lines = nil
	c.mu.Unlock()
}
