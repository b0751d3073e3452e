package tokenx

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-side-secret"))
	require.NoError(t, err)
	return s
}

func TestInspect_ReadsSubjectAndExpiry(t *testing.T) {
	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	token := sign(t, jwt.RegisteredClaims{Subject: "alice", ExpiresAt: jwt.NewNumericDate(exp)})

	c, err := Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", c.Subject)
	assert.True(t, c.HasExpiry())
	assert.True(t, c.ExpiresAt.Equal(exp))
	assert.False(t, c.Expired(exp.Add(-time.Second)))
	assert.True(t, c.Expired(exp))
}

func TestInspect_NoExpiry(t *testing.T) {
	token := sign(t, jwt.MapClaims{"sub": "bob"})

	c, err := Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, "bob", c.Subject)
	assert.False(t, c.HasExpiry())
	assert.False(t, c.Expired(time.Now().Add(100*365*24*time.Hour)))
}

func TestInspect_ExpiredTokenStillDecodes(t *testing.T) {
	token := sign(t, jwt.RegisteredClaims{Subject: "carol", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))})

	c, err := Inspect(token)
	require.NoError(t, err)
	assert.True(t, c.Expired(time.Now()))
}

func TestInspect_Malformed(t *testing.T) {
	for _, tok := range []string{"", "null", "not.a.jwt", "opaque-token"} {
		_, err := Inspect(tok)
		require.ErrorIs(t, err, ErrMalformedToken, tok)
	}
}
