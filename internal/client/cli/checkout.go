package cli

import (
	"context"
	"fmt"
	"os"
)

// Checkout selects a delivery address from the profile and creates a PayPal
// order for the current cart. The shopper finishes payment at the printed
// approve URL; "status" polls the result afterwards.
func (a *App) Checkout(ctx context.Context) error {
	if len(a.carts.Lines()) == 0 {
		fmt.Println("Cart is empty, nothing to check out")
		return nil
	}

	profile, err := a.catalog.Profile(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	if len(profile.Addresses) == 0 {
		fmt.Println("No delivery addresses on the profile")
		return nil
	}

	for _, addr := range profile.Addresses {
		fmt.Printf("  address #%d: %s, %s, %s %s\n", addr.ID, addr.Street, addr.City, addr.Country, addr.ZipCode)
	}
	id, err := a.promptInt64("Enter address id")
	if err != nil {
		return a.report(ctx, err)
	}

	var selected bool
	for _, addr := range profile.Addresses {
		if addr.ID == id {
			if err := a.checkout.SelectAddress(ctx, addr); err != nil {
				return a.report(ctx, err)
			}
			selected = true
			break
		}
	}
	if !selected {
		fmt.Println("Unknown address id")
		return nil
	}

	order, err := a.checkout.CreateOrder(ctx)
	if err != nil {
		return a.report(ctx, err)
	}

	fmt.Printf("Order %s created (total %s)\n", order.OrderID, formatCents(a.carts.TotalCents()))
	fmt.Printf("Approve the payment at: %s\n", order.ApproveURL)
	return nil
}

// OrderStatus polls the payment state. An empty id uses the pending order
// created by the last checkout.
func (a *App) OrderStatus(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter order id (empty for the pending order)", os.Stdout)
	if err != nil {
		return err
	}

	st, err := a.checkout.OrderStatus(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}

	fmt.Printf("Order %s: %s (platform: %s, payment: %s)\n",
		st.OrderID, st.Status, st.PlatformStatus, st.PaymentID)
	return nil
}
