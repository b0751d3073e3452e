// Package models holds the request and response shapes exchanged with the
// vending API.
package models

import (
	"errors"
	"fmt"
)

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole accepts exactly "buyer" or "seller".
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleBuyer, RoleSeller:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// User is the authenticated identity returned by me, users, login, token,
// deposit and reset. Token is only filled by the authentication endpoints.
type User struct {
	ID          ID     `json:"id"`
	Username    string `json:"username"`
	Role        Role   `json:"role"`
	Deposit     int64  `json:"deposit"`
	Token       string `json:"token,omitempty"`
	AccessToken string `json:"access_token,omitempty"`
}

// Credential returns the bearer token carried by an authentication
// response, or "" if there is none.
func (u *User) Credential() string {
	if u == nil {
		return ""
	}
	if u.Token != "" {
		return u.Token
	}
	return u.AccessToken
}

func (u *User) IsBuyer() bool  { return u != nil && u.Role == RoleBuyer }
func (u *User) IsSeller() bool { return u != nil && u.Role == RoleSeller }

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

type DepositRequest struct {
	Amount int64 `json:"amount"`
}
