package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/vending/internal/client/models"
)

// List fetches the catalog and prints it as a table.
func (a *App) List(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	products, err := a.session.LoadProducts(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Fprintln(a.out, "There are no products.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tAVAILABLE\tCOST")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%d\t%d\n", p.ProductName, p.AmountAvailable, p.Cost)
	}
	return w.Flush()
}

// Show prints a single product, read fresh from the backend.
func (a *App) Show(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter product name", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		return ErrFillAllFields
	}

	p, err := a.session.FetchProduct(ctx, name)
	if err != nil {
		return err
	}
	a.printProduct(p)
	return nil
}

func (a *App) printProduct(p *models.Product) {
	fmt.Fprintf(a.out, "Name: %s\n", p.ProductName)
	fmt.Fprintf(a.out, "Available: %d\n", p.AmountAvailable)
	fmt.Fprintf(a.out, "Cost: %d\n", p.Cost)
	if p.SellerID != "" {
		fmt.Fprintf(a.out, "Seller: %s\n", p.SellerID)
	}
}

func (a *App) readProductInput(namePrompt string) (models.ProductInput, error) {
	name, err := getSimpleText(a.reader, namePrompt, a.out)
	if err != nil {
		return models.ProductInput{}, err
	}
	amountText, err := getSimpleText(a.reader, "Available amount", a.out)
	if err != nil {
		return models.ProductInput{}, err
	}
	costText, err := getSimpleText(a.reader, "Cost", a.out)
	if err != nil {
		return models.ProductInput{}, err
	}

	if name == "" || amountText == "" || costText == "" {
		return models.ProductInput{}, ErrFillAllFields
	}
	amount, err := parseQuantity(amountText, false)
	if err != nil {
		return models.ProductInput{}, err
	}
	cost, err := parseQuantity(costText, true)
	if err != nil {
		return models.ProductInput{}, err
	}
	return models.ProductInput{ProductName: name, AmountAvailable: amount, Cost: cost}, nil
}

// AddProduct creates a product. Sellers only.
func (a *App) AddProduct(ctx context.Context) error {
	if err := a.requireRole(models.RoleSeller); err != nil {
		return err
	}

	in, err := a.readProductInput("Product name")
	if err != nil {
		return err
	}
	p, err := a.session.CreateProduct(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Product %s created\n", p.ProductName)
	return nil
}

// UpdateProduct replaces name, stock and cost of an existing product.
// Sellers only.
func (a *App) UpdateProduct(ctx context.Context) error {
	if err := a.requireRole(models.RoleSeller); err != nil {
		return err
	}

	current, err := getSimpleText(a.reader, "Product to update", a.out)
	if err != nil {
		return err
	}
	if current == "" {
		return ErrFillAllFields
	}
	in, err := a.readProductInput("New product name")
	if err != nil {
		return err
	}

	p, err := a.session.UpdateProduct(ctx, current, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Product %s updated\n", p.ProductName)
	return nil
}

// DeleteProduct removes a product. Sellers only.
func (a *App) DeleteProduct(ctx context.Context) error {
	if err := a.requireRole(models.RoleSeller); err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Product to delete", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		return ErrFillAllFields
	}

	ok, err := a.session.DeleteProduct(ctx, name)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(a.out, "Product %s was not deleted\n", name)
		return nil
	}
	fmt.Fprintf(a.out, "Product %s deleted\n", name)
	return nil
}
