package api

import (
	"fmt"
	"net/url"
	"strings"
)

// Endpoints is the typed table of backend routes, built from the configured
// base URL (e.g. "http://localhost:8080/api/v1").
type Endpoints struct {
	base string
}

func NewEndpoints(base string) *Endpoints {
	return &Endpoints{base: strings.TrimRight(base, "/")}
}

func (e *Endpoints) Login() string    { return e.base + "/auth/login" }
func (e *Endpoints) Register() string { return e.base + "/auth/register" }
func (e *Endpoints) Verify() string   { return e.base + "/auth/verify" }
func (e *Endpoints) Complete() string { return e.base + "/auth/complete" }

func (e *Endpoints) Profile() string { return e.base + "/user/profile" }

// Products returns the catalog listing route, with optional query filters
// (category, size, color).
func (e *Endpoints) Products(filters url.Values) string {
	u := e.base + "/product/"
	if len(filters) > 0 {
		u += "?" + filters.Encode()
	}
	return u
}

func (e *Endpoints) Product(id int64) string {
	return fmt.Sprintf("%s/product/%d", e.base, id)
}

func (e *Endpoints) Banners() string         { return e.base + "/product/banner" }
func (e *Endpoints) UniqueInventory() string { return e.base + "/product/inventory/unique" }

func (e *Endpoints) ProductImages(productID int64) string {
	return fmt.Sprintf("%s/product/%d/images", e.base, productID)
}

func (e *Endpoints) Cart() string { return e.base + "/cart/" }

// CartItem addresses one cart line by its inventory id. With amount > 0 a
// DELETE removes that many units; without the query the whole line goes.
func (e *Endpoints) CartItem(inventoryID int64, amount int) string {
	u := fmt.Sprintf("%s/cart/%d", e.base, inventoryID)
	if amount > 0 {
		u += fmt.Sprintf("?amount=%d", amount)
	}
	return u
}

func (e *Endpoints) CheckoutPayPal() string { return e.base + "/checkout/paypal" }

func (e *Endpoints) CheckoutStatus(orderID string) string {
	return e.base + "/checkout/status?order=" + url.QueryEscape(orderID)
}

func (e *Endpoints) AdminUsers() string { return e.base + "/admin/user/" }
