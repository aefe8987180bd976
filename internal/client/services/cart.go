package services

import (
	"context"
	"net/http"
	"sync"

	"github.com/sunflowers/shopfront/internal/client/api"
	"github.com/sunflowers/shopfront/internal/client/models"
	"github.com/sunflowers/shopfront/internal/client/repositories/cartcache"
	"github.com/sunflowers/shopfront/internal/common"
	"github.com/sunflowers/shopfront/internal/logging"
)

// addItemRequest is the POST /cart/ body.
type addItemRequest struct {
	InventoryID int64 `json:"inventoryId"`
	Amount      int   `json:"amount"`
}

// CartService keeps an in-memory cart line list responsive to mutations
// without waiting for the network, then converges it to the server's
// authoritative snapshot.
//
// Every mutation applies optimistically, issues the server call, and on a
// success response replaces the whole line list with the server's (never a
// merge). On failure the pre-mutation snapshot is restored. A per-line
// sequence counter discards responses from superseded requests so a late
// arrival cannot overwrite newer state.
type CartService struct {
	gateway   *api.Gateway
	endpoints *api.Endpoints
	cache     *cartcache.Cache
	log       logging.Logger

	mu    sync.Mutex
	lines []models.CartItem
	seq   map[int64]uint64
}

func NewCartService(gw *api.Gateway, endpoints *api.Endpoints, cache *cartcache.Cache, log logging.Logger) *CartService {
	return &CartService{
		gateway:   gw,
		endpoints: endpoints,
		cache:     cache,
		log:       log,
		seq:       make(map[int64]uint64),
	}
}

// Load fetches the authoritative cart (cart view mount).
func (c *CartService) Load(ctx context.Context) error {
	var resp api.Envelope[[]models.CartItem]
	status, err := c.gateway.JSON(ctx, http.MethodGet, c.endpoints.Cart(), nil, &resp, nil)
	if err != nil {
		return err
	}
	if !api.IsSuccess(status) {
		return statusToErr(status)
	}

	c.mu.Lock()
	c.lines = resp.Data
	c.mu.Unlock()
	c.cache.Put(resp.Data)
	return nil
}

// Lines returns a copy of the displayed line list.
func (c *CartService) Lines() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	cp := make([]models.CartItem, len(c.lines))
	copy(cp, c.lines)
	return cp
}

// TotalCents is the displayed total: sum of price × quantity over all
// lines, in cents.
func (c *CartService) TotalCents() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return models.CartTotalCents(c.lines)
}

// InCart reports whether the product appears in the last-known snapshot.
// Display hint only; it can be stale relative to the server.
func (c *CartService) InCart(productID int64) bool {
	return c.cache.Contains(productID)
}

// Add puts one unit of the selected product variant in the cart. Local
// validation runs first and short-circuits without any network call:
// missing selection, unknown color+size combination, and zero stock each
// fail with their own error.
func (c *CartService) Add(ctx context.Context, product *models.Product, colorName, size string) error {
	if colorName == "" || size == "" {
		return common.ErrNoSelection
	}
	inv := product.FindInventory(colorName, size)
	if inv == nil {
		return common.ErrVariantUnavailable
	}
	if inv.Stock == 0 {
		return common.ErrOutOfStock
	}

	provisional := *inv
	provisional.Product = *product
	provisional.Product.Inventories = nil

	return c.mutate(ctx, inv.ID,
		func(lines []models.CartItem) []models.CartItem {
			for i := range lines {
				if lines[i].Inventory.ID == inv.ID {
					lines[i].CartStock++
					return lines
				}
			}
			return append(lines, models.CartItem{Inventory: provisional, CartStock: 1})
		},
		func(ctx context.Context, out *api.Envelope[[]models.CartItem]) (int, error) {
			body := addItemRequest{InventoryID: inv.ID, Amount: 1}
			return c.gateway.JSON(ctx, http.MethodPost, c.endpoints.Cart(), body, out, nil)
		},
	)
}

// Increment adds one unit to an existing line.
func (c *CartService) Increment(ctx context.Context, inventoryID int64) error {
	return c.mutate(ctx, inventoryID,
		func(lines []models.CartItem) []models.CartItem {
			for i := range lines {
				if lines[i].Inventory.ID == inventoryID {
					lines[i].CartStock++
				}
			}
			return lines
		},
		func(ctx context.Context, out *api.Envelope[[]models.CartItem]) (int, error) {
			body := addItemRequest{InventoryID: inventoryID, Amount: 1}
			return c.gateway.JSON(ctx, http.MethodPost, c.endpoints.Cart(), body, out, nil)
		},
	)
}

// Decrement removes one unit; a line reaching zero is dropped, never kept.
func (c *CartService) Decrement(ctx context.Context, inventoryID int64) error {
	return c.mutate(ctx, inventoryID,
		func(lines []models.CartItem) []models.CartItem {
			out := lines[:0]
			for _, l := range lines {
				if l.Inventory.ID == inventoryID {
					l.CartStock--
				}
				if l.CartStock > 0 {
					out = append(out, l)
				}
			}
			return out
		},
		func(ctx context.Context, out *api.Envelope[[]models.CartItem]) (int, error) {
			return c.gateway.JSON(ctx, http.MethodDelete, c.endpoints.CartItem(inventoryID, 1), nil, out, nil)
		},
	)
}

// Remove drops the whole line regardless of quantity.
func (c *CartService) Remove(ctx context.Context, inventoryID int64) error {
	return c.mutate(ctx, inventoryID,
		func(lines []models.CartItem) []models.CartItem {
			out := lines[:0]
			for _, l := range lines {
				if l.Inventory.ID != inventoryID {
					out = append(out, l)
				}
			}
			return out
		},
		func(ctx context.Context, out *api.Envelope[[]models.CartItem]) (int, error) {
			return c.gateway.JSON(ctx, http.MethodDelete, c.endpoints.CartItem(inventoryID, 0), nil, out, nil)
		},
	)
}

// Purge drops local cart state (logout, token expiry).
func (c *CartService) Purge() {
	c.mu.Lock()
	c.lines = nil
	c.mu.Unlock()
	c.cache.Purge()
}

// mutate runs one optimistic mutation round: apply locally, call the
// server, then either replace state with the server's snapshot, restore
// the pre-mutation snapshot on failure, or discard the response entirely
// when a newer mutation for the same line has been issued meanwhile.
func (c *CartService) mutate(
	ctx context.Context,
	inventoryID int64,
	apply func([]models.CartItem) []models.CartItem,
	call func(context.Context, *api.Envelope[[]models.CartItem]) (int, error),
) error {
	c.mu.Lock()
	snapshot := make([]models.CartItem, len(c.lines))
	copy(snapshot, c.lines)
	c.lines = apply(c.lines)
	c.seq[inventoryID]++
	seq := c.seq[inventoryID]
	c.mu.Unlock()

	var resp api.Envelope[[]models.CartItem]
	status, err := call(ctx, &resp)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq[inventoryID] {
		// Superseded by a newer mutation; that request owns the state now.
		c.log.Debug(ctx, "discarding stale cart response", "inventory_id", inventoryID)
		if err != nil {
			return err
		}
		return nil
	}

	if err != nil {
		c.lines = snapshot
		return err
	}
	if !api.IsSuccess(status) {
		c.lines = snapshot
		return statusToErr(status)
	}

	c.lines = resp.Data
	c.cache.Put(resp.Data)
	return nil
}
