package models

import "math"

// Color is a named product color with its display code (hex).
type Color struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// ProductImage is a hosted product picture.
type ProductImage struct {
	URL string `json:"url"`
}

// Inventory is one purchasable variant of a product: a concrete
// color + size combination with its remaining stock.
type Inventory struct {
	ID      int64   `json:"id"`
	Product Product `json:"product"`
	Size    string  `json:"size"`
	Color   Color   `json:"color"`
	Stock   int     `json:"stock"`
}

// Product is a catalog item. Inventories is populated on catalog listings
// but left empty when the product is embedded inside a cart line.
type Product struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	Price         float64        `json:"price"`
	ProductImages []ProductImage `json:"productImages,omitempty"`
	Inventories   []Inventory    `json:"inventories,omitempty"`
}

// PriceCents returns the product price in integer cents. Prices travel as
// JSON floats; rounding here keeps total arithmetic exact to the cent.
func (p *Product) PriceCents() int64 {
	return int64(math.Round(p.Price * 100))
}

// FindInventory returns the variant matching the given color name and
// size, or nil when the combination does not exist.
func (p *Product) FindInventory(colorName, size string) *Inventory {
	for i := range p.Inventories {
		inv := &p.Inventories[i]
		if inv.Color.Name == colorName && inv.Size == size {
			return inv
		}
	}
	return nil
}

// Banner is a promotional image shown on the landing page.
type Banner struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// UniqueInventory lists the distinct sizes and colors across the catalog,
// used to build filter controls.
type UniqueInventory struct {
	Sizes  []string `json:"sizes"`
	Colors []Color  `json:"colors"`
}
