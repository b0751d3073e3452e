package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/vending/internal/client/models"
)

func TestValidateLogin(t *testing.T) {
	assert.ErrorIs(t, validateLogin("", "secret1"), ErrFillAllFields)
	assert.ErrorIs(t, validateLogin("bob", ""), ErrFillAllFields)
	assert.NoError(t, validateLogin("bob", "x"))
}

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name                     string
		username, password, role string
		want                     models.Role
		wantErr                  error
	}{
		{name: "ok seller", username: "alice", password: "secret1", role: "seller", want: models.RoleSeller},
		{name: "role is case insensitive", username: "bob", password: "secret1", role: "Buyer", want: models.RoleBuyer},
		{name: "missing username", password: "secret1", role: "buyer", wantErr: ErrFillAllFields},
		{name: "missing password", username: "bob", role: "buyer", wantErr: ErrFillAllFields},
		{name: "short password", username: "bob", password: "12345", role: "buyer", wantErr: ErrShortPassword},
		{name: "short password wins over role", username: "bob", password: "123", wantErr: ErrShortPassword},
		{name: "no role", username: "bob", password: "secret1", wantErr: ErrNoRole},
		{name: "unknown role", username: "bob", password: "secret1", role: "admin", wantErr: ErrNoRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateSignup(tt.username, tt.password, tt.role)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in       string
		positive bool
		want     int64
		wantErr  error
	}{
		{in: "10", want: 10},
		{in: "0", want: 0},
		{in: "0", positive: true, wantErr: ErrNotPositive},
		{in: "-1", wantErr: ErrNotPositive},
		{in: "1.5", wantErr: ErrInvalidNumber},
		{in: "abc", wantErr: ErrInvalidNumber},
		{in: "", wantErr: ErrFillAllFields},
	}
	for _, tt := range tests {
		got, err := parseQuantity(tt.in, tt.positive)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestValidationError_Message(t *testing.T) {
	assert.Equal(t, "Please fill all fields", ErrFillAllFields.Error())
	assert.Equal(t, "Password must be at least 6 chars", ErrShortPassword.Error())
	assert.Equal(t, "You must select a role", ErrNoRole.Error())
	assert.Equal(t, "This command is not available for your role", ErrRoleNotAllowed.Error())
}
