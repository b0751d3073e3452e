package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/vending/internal/client/apiclient"
	"github.com/dmitrijs2005/vending/internal/client/models"
	"github.com/dmitrijs2005/vending/internal/tokenx"
)

var ErrMissingToken = errors.New("authentication response carried no token")

// Register creates an account and signs in as it. On any failure neither the
// stored credential nor the session changes.
func (s *State) Register(ctx context.Context, username, password string, role models.Role) error {
	u, err := s.api.Register(ctx, models.RegisterRequest{Username: username, Password: password, Role: role})
	if err != nil {
		return err
	}
	return s.signIn(ctx, u)
}

// Authenticate logs in with username and password, replacing any prior
// session.
func (s *State) Authenticate(ctx context.Context, username, password string) error {
	u, err := s.api.Login(ctx, username, password)
	if err != nil {
		return err
	}
	return s.signIn(ctx, u)
}

func (s *State) signIn(ctx context.Context, u *models.User) error {
	token := u.Credential()
	if token == "" {
		s.log.Warn(ctx, "authentication response without token", "username", u.Username)
		return apiclient.GenericError(http.StatusOK, ErrMissingToken)
	}
	if err := s.creds.Replace(ctx, token); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}

	s.update(func() bool {
		s.user = u
		s.products = nil
		s.loaded = false
		return true
	})
	s.log.Info(ctx, "signed in", "username", u.Username, "role", string(u.Role))
	return nil
}

// Bootstrap restores a session from the stored credential. It does nothing
// when a session already exists or no credential is stored; in the latter
// case no request is sent. A rejected refresh leaves the session anonymous
// and is not reported as an error.
func (s *State) Bootstrap(ctx context.Context) error {
	if s.Phase() == Authenticated {
		return nil
	}

	_, ok, err := s.creds.Token(ctx)
	if err != nil {
		return fmt.Errorf("read credential: %w", err)
	}
	if !ok {
		s.log.Debug(ctx, "no stored credential")
		return nil
	}

	u, err := s.api.RefreshToken(ctx)
	if err != nil {
		s.log.Warn(ctx, "session refresh failed", "error", err)
		return s.dropStale(ctx, err)
	}
	if u.Credential() == "" {
		s.log.Warn(ctx, "session refresh returned no token")
		return nil
	}

	s.update(func() bool {
		if s.user != nil {
			return false
		}
		s.user = u
		return true
	})
	s.log.Info(ctx, "session restored", "username", u.Username)
	return nil
}

func (s *State) dropStale(ctx context.Context, cause error) error {
	if !s.clearStale {
		return nil
	}
	var re *apiclient.RemoteError
	if !errors.As(cause, &re) || re.Status != http.StatusUnauthorized {
		return nil
	}
	if err := s.creds.Clear(ctx); err != nil {
		return fmt.Errorf("clear stale credential: %w", err)
	}
	s.log.Info(ctx, "stale credential cleared")
	return nil
}

// Logout forgets the credential and the session. It never contacts the
// backend and is safe to call repeatedly.
func (s *State) Logout(ctx context.Context) error {
	if err := s.creds.Clear(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	s.update(func() bool {
		if s.user == nil && s.products == nil && !s.loaded {
			return false
		}
		s.user = nil
		s.products = nil
		s.loaded = false
		return true
	})
	return nil
}

// CredentialInfo decodes the stored credential's claims without verifying
// them. ok is false when nothing is stored.
func (s *State) CredentialInfo(ctx context.Context) (claims tokenx.Claims, ok bool, err error) {
	token, ok, err := s.creds.Token(ctx)
	if err != nil || !ok {
		return tokenx.Claims{}, false, err
	}
	claims, err = tokenx.Inspect(token)
	if err != nil {
		return tokenx.Claims{}, true, err
	}
	return claims, true, nil
}
