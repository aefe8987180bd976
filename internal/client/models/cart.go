package models

// CartItem is one authoritative cart line as reported by the server.
type CartItem struct {
	CartItemID int64     `json:"cartItemId"`
	Inventory  Inventory `json:"inventory"`
	CartStock  int       `json:"cartStock"`
}

// LineTotalCents is price × quantity for this line, in cents.
func (c *CartItem) LineTotalCents() int64 {
	return c.Inventory.Product.PriceCents() * int64(c.CartStock)
}

// CartTotalCents sums line totals over a server-reported cart snapshot.
func CartTotalCents(lines []CartItem) int64 {
	var total int64
	for i := range lines {
		total += lines[i].LineTotalCents()
	}
	return total
}
