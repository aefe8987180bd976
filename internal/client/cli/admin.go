package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sunflowers/shopfront/internal/client/services"
)

// AdminUsers lists all accounts. Admin sessions only.
func (a *App) AdminUsers(ctx context.Context) error {
	users, err := a.admin.ListUsers(ctx)
	if err != nil {
		return a.report(ctx, err)
	}

	for _, u := range users {
		fmt.Printf("%s %s <%s> [%s]\n", u.FirstName, u.LastName, u.Email, u.Role)
	}
	return nil
}

// AddProduct creates a catalog product and optionally uploads an image for
// it. Admin sessions only.
func (a *App) AddProduct(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter product name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return err
	}
	priceRaw, err := getSimpleText(a.reader, "Enter price", os.Stdout)
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		return a.report(ctx, fmt.Errorf("%q is not a price", priceRaw))
	}

	product, err := a.admin.CreateProduct(ctx, services.CreateProductRequest{
		Name:        name,
		Description: description,
		Price:       price,
	})
	if err != nil {
		return a.report(ctx, err)
	}
	fmt.Printf("Created product #%d\n", product.ID)

	imagePath, err := getSimpleText(a.reader, "Enter image path (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if imagePath == "" {
		return nil
	}

	f, err := os.Open(imagePath)
	if err != nil {
		return a.report(ctx, err)
	}
	defer f.Close()

	if err := a.admin.UploadProductImage(ctx, product.ID, filepath.Base(imagePath), f); err != nil {
		return a.report(ctx, err)
	}
	fmt.Println("Image uploaded")
	return nil
}
