package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vending/internal/client/models"
)

// Buy purchases units of a product. Buyers only. The deposit line is
// printed by the session observer.
func (a *App) Buy(ctx context.Context) error {
	if err := a.requireRole(models.RoleBuyer); err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Product name", a.out)
	if err != nil {
		return err
	}
	amountText, err := getSimpleText(a.reader, "Amount", a.out)
	if err != nil {
		return err
	}
	if name == "" || amountText == "" {
		return ErrFillAllFields
	}
	amount, err := parseQuantity(amountText, true)
	if err != nil {
		return err
	}

	r, err := a.session.Buy(ctx, name, amount)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Bought %d x %s for %d\n", r.Amount, name, r.TotalSpent)
	return nil
}

// Deposit adds coins to the buyer's balance. Which coin values are accepted
// is decided by the backend.
func (a *App) Deposit(ctx context.Context) error {
	if err := a.requireRole(models.RoleBuyer); err != nil {
		return err
	}

	amountText, err := getSimpleText(a.reader, "Amount to deposit", a.out)
	if err != nil {
		return err
	}
	amount, err := parseQuantity(amountText, true)
	if err != nil {
		return err
	}
	return a.session.Deposit(ctx, amount)
}

func (a *App) Reset(ctx context.Context) error {
	if err := a.requireRole(models.RoleBuyer); err != nil {
		return err
	}
	return a.session.ResetDeposit(ctx)
}

// Refresh re-reads the user and the catalog from the backend.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if err := a.session.Refresh(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Up to date")
	return nil
}
