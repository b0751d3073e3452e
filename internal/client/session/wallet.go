package session

import (
	"context"
)

// Deposit adds amount to the buyer's balance on the backend and mirrors it
// locally without re-fetching.
func (s *State) Deposit(ctx context.Context, amount int64) error {
	if _, err := s.api.Deposit(ctx, amount); err != nil {
		return err
	}
	s.ApplyDeposit(amount)
	return nil
}

// ApplyDeposit adds amount to the session deposit. No-op when anonymous.
func (s *State) ApplyDeposit(amount int64) {
	s.update(func() bool {
		if s.user == nil {
			return false
		}
		u := *s.user
		u.Deposit += amount
		s.user = &u
		return true
	})
}

// ResetDeposit zeroes the balance on the backend and adopts the returned
// value.
func (s *State) ResetDeposit(ctx context.Context) error {
	u, err := s.api.ResetDeposit(ctx)
	if err != nil {
		return err
	}
	s.update(func() bool {
		if s.user == nil {
			return false
		}
		cur := *s.user
		cur.Deposit = u.Deposit
		s.user = &cur
		return true
	})
	return nil
}
