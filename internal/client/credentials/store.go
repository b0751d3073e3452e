// Package credentials persists the bearer credential between runs.
//
// The credential lives in the local metadata table under a single fixed key,
// so at most one credential exists per database.
package credentials

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/vending/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/vending/internal/dbx"
)

// Key is the metadata key holding the credential.
const Key = "vendingAccessToken"

var ErrEmptyCredential = errors.New("empty credential")

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo(h dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(h)
}

// Token returns the persisted credential. ok is false when none is stored.
func (s *Store) Token(ctx context.Context) (string, bool, error) {
	v, err := s.repo(s.db).Get(ctx, Key)
	if err != nil {
		return "", false, err
	}
	if len(v) == 0 {
		return "", false, nil
	}
	return string(v), true, nil
}

// Replace clears any prior credential and stores token in its place. Both
// steps run in one transaction, so a failed write keeps the old value.
func (s *Store) Replace(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyCredential
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		if err := r.Delete(ctx, Key); err != nil {
			return err
		}
		return r.Set(ctx, Key, []byte(token))
	})
}

// Clear removes the credential. Clearing an empty store is not an error.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo(s.db).Delete(ctx, Key)
}
