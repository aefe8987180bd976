package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sunflowers/shopfront/internal/client/services"
)

// formatCents renders an integer cent amount as a decimal price string.
func formatCents(c int64) string {
	return fmt.Sprintf("%d.%02d", c/100, c%100)
}

// Products lists the catalog, optionally narrowed by a category filter.
func (a *App) Products(ctx context.Context) error {
	category, err := getSimpleText(a.reader, "Category filter (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	products, err := a.catalog.List(ctx, services.Filter{Category: category})
	if err != nil {
		return a.report(ctx, err)
	}

	for _, p := range products {
		marker := " "
		if a.carts.InCart(p.ID) {
			marker = "*"
		}
		fmt.Printf("%s #%d %s — %s\n", marker, p.ID, p.Name, formatCents(p.PriceCents()))
		for _, inv := range p.Inventories {
			fmt.Printf("    [%d] %s / %s (stock %d)\n", inv.ID, inv.Color.Name, inv.Size, inv.Stock)
		}
	}
	return nil
}

// Banners prints the landing-page banner URLs.
func (a *App) Banners(ctx context.Context) error {
	banners, err := a.catalog.Banners(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	for _, b := range banners {
		fmt.Printf("#%d %s\n", b.ID, b.URL)
	}
	return nil
}

// Profile prints the account record and its delivery addresses.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.catalog.Profile(ctx)
	if err != nil {
		return a.report(ctx, err)
	}

	fmt.Printf("%s %s <%s> [%s]\n", p.FirstName, p.LastName, p.Email, p.Role)
	for _, addr := range p.Addresses {
		fmt.Printf("  address #%d: %s, %s, %s %s\n", addr.ID, addr.Street, addr.City, addr.Country, addr.ZipCode)
	}
	return nil
}
