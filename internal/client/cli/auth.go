package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vending/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for username, password and role, validates them and
// signs up. On success the new account is signed in.
func (a *App) Register(ctx context.Context) error {
	if a.isLoggedIn() {
		return ErrAlreadyLoggedIn
	}

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	roleText, err := getSimpleText(a.reader, "Select role (buyer/seller)", a.out)
	if err != nil {
		return err
	}

	role, err := validateSignup(username, password, roleText)
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, username, password, role); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Success! Signed in as %s (%s)\n", username, role)
	a.preloadProducts(ctx)
	return nil
}

// Login prompts for credentials and authenticates. A successful login
// replaces whatever session existed before.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	if err := validateLogin(username, password); err != nil {
		return err
	}

	if err := a.session.Authenticate(ctx, username, password); err != nil {
		a.log.Info(ctx, "login unsuccessful", "username", username, "error", err)
		return err
	}

	u := a.session.Current().User
	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", u.Username, u.Role)
	a.preloadProducts(ctx)
	return nil
}

// Logout forgets the stored credential. It is safe when already logged out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// requireRole fails unless a user with the given role is signed in.
func (a *App) requireRole(role models.Role) error {
	u := a.session.Current().User
	if u == nil {
		return ErrNotLoggedIn
	}
	if u.Role != role {
		return ErrRoleNotAllowed
	}
	return nil
}

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		return ErrNotLoggedIn
	}
	return nil
}
