package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// promptInt64 reads a numeric identifier from the interactive prompt.
func (a *App) promptInt64(prompt string) (int64, error) {
	raw, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	return id, nil
}

// ShowCart prints the current cart lines and the running total.
func (a *App) ShowCart(ctx context.Context) error {
	lines := a.carts.Lines()
	if len(lines) == 0 {
		fmt.Println("Cart is empty")
		return nil
	}

	for _, l := range lines {
		fmt.Printf("[%d] %s %s/%s × %d — %s\n",
			l.Inventory.ID, l.Inventory.Product.Name,
			l.Inventory.Color.Name, l.Inventory.Size,
			l.CartStock, formatCents(l.LineTotalCents()))
	}
	fmt.Printf("Total: %s\n", formatCents(a.carts.TotalCents()))
	return nil
}

// AddToCart prompts for a product id and a variant selection, then puts one
// unit in the cart.
func (a *App) AddToCart(ctx context.Context) error {
	id, err := a.promptInt64("Enter product id")
	if err != nil {
		return a.report(ctx, err)
	}

	product, err := a.catalog.Get(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}

	for _, inv := range product.Inventories {
		fmt.Printf("  %s / %s (stock %d)\n", inv.Color.Name, inv.Size, inv.Stock)
	}

	color, err := getSimpleText(a.reader, "Enter color", os.Stdout)
	if err != nil {
		return err
	}
	size, err := getSimpleText(a.reader, "Enter size", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.carts.Add(ctx, product, color, size); err != nil {
		return a.report(ctx, err)
	}
	return a.ShowCart(ctx)
}

// IncrementItem adds one unit to an existing cart line.
func (a *App) IncrementItem(ctx context.Context) error {
	id, err := a.promptInt64("Enter inventory id")
	if err != nil {
		return a.report(ctx, err)
	}
	if err := a.carts.Increment(ctx, id); err != nil {
		return a.report(ctx, err)
	}
	return a.ShowCart(ctx)
}

// DecrementItem removes one unit; the line disappears at zero.
func (a *App) DecrementItem(ctx context.Context) error {
	id, err := a.promptInt64("Enter inventory id")
	if err != nil {
		return a.report(ctx, err)
	}
	if err := a.carts.Decrement(ctx, id); err != nil {
		return a.report(ctx, err)
	}
	return a.ShowCart(ctx)
}

// RemoveItem drops a whole cart line regardless of quantity.
func (a *App) RemoveItem(ctx context.Context) error {
	id, err := a.promptInt64("Enter inventory id")
	if err != nil {
		return a.report(ctx, err)
	}
	if err := a.carts.Remove(ctx, id); err != nil {
		return a.report(ctx, err)
	}
	return a.ShowCart(ctx)
}
