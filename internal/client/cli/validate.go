package cli

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/vending/internal/client/models"
)

const minPasswordLen = 6

// ValidationError is a problem with user input caught before any request is
// sent. Its message is shown to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	ErrFillAllFields   = &ValidationError{Message: "Please fill all fields"}
	ErrShortPassword   = &ValidationError{Message: "Password must be at least 6 chars"}
	ErrNoRole          = &ValidationError{Message: "You must select a role"}
	ErrRoleNotAllowed  = &ValidationError{Message: "This command is not available for your role"}
	ErrNotLoggedIn     = &ValidationError{Message: "Please login first"}
	ErrAlreadyLoggedIn = &ValidationError{Message: "You are already logged in, logout first"}
	ErrInvalidNumber   = &ValidationError{Message: "Please enter a whole number"}
	ErrNotPositive     = &ValidationError{Message: "Please enter a number greater than zero"}
)

func validateLogin(username, password string) error {
	if username == "" || password == "" {
		return ErrFillAllFields
	}
	return nil
}

func validateSignup(username, password, role string) (models.Role, error) {
	if username == "" || password == "" {
		return "", ErrFillAllFields
	}
	if len(password) < minPasswordLen {
		return "", ErrShortPassword
	}
	r, err := models.ParseRole(strings.ToLower(role))
	if err != nil {
		return "", ErrNoRole
	}
	return r, nil
}

// parseQuantity parses a non-negative whole number. When positive is set,
// zero is rejected too.
func parseQuantity(s string, positive bool) (int64, error) {
	if s == "" {
		return 0, ErrFillAllFields
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	if n < 0 || positive && n == 0 {
		return 0, ErrNotPositive
	}
	return n, nil
}
