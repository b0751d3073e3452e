package session

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/vending/internal/client/models"
)

// LoadProducts replaces the cached catalog with the backend's.
func (s *State) LoadProducts(ctx context.Context) ([]models.Product, error) {
	ps, err := s.api.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	s.update(func() bool {
		s.products = slices.Clone(ps)
		if s.products == nil {
			s.products = []models.Product{}
		}
		s.loaded = true
		return true
	})
	return slices.Clone(ps), nil
}

// FetchProduct reads one product from the backend and updates its cached
// entry if there is one.
func (s *State) FetchProduct(ctx context.Context, name string) (*models.Product, error) {
	p, err := s.api.GetProduct(ctx, name)
	if err != nil {
		return nil, err
	}
	s.update(func() bool {
		i := s.indexLocked(name)
		if i < 0 {
			return false
		}
		s.products[i] = *p
		return true
	})
	return p, nil
}

// Refresh re-reads the user and the catalog from the backend, discarding
// whatever optimistic updates were applied since the last load.
func (s *State) Refresh(ctx context.Context) error {
	u, err := s.api.Me(ctx)
	if err != nil {
		return err
	}
	ps, err := s.api.ListProducts(ctx)
	if err != nil {
		return err
	}

	s.update(func() bool {
		s.user = u
		s.products = slices.Clone(ps)
		if s.products == nil {
			s.products = []models.Product{}
		}
		s.loaded = true
		return true
	})
	return nil
}

// CreateProduct adds a product and appends the backend's copy to the cache.
func (s *State) CreateProduct(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	p, err := s.api.CreateProduct(ctx, in)
	if err != nil {
		return nil, err
	}
	s.update(func() bool {
		s.products = append(s.products, *p)
		s.loaded = true
		return true
	})
	return p, nil
}

// UpdateProduct changes the product called name. The cached entry is
// replaced by the backend's reply, which may carry a new name.
func (s *State) UpdateProduct(ctx context.Context, name string, in models.ProductInput) (*models.Product, error) {
	p, err := s.api.UpdateProduct(ctx, name, in)
	if err != nil {
		return nil, err
	}
	s.update(func() bool {
		i := s.indexLocked(name)
		if i < 0 {
			return false
		}
		s.products[i] = *p
		return true
	})
	return p, nil
}

func (s *State) DeleteProduct(ctx context.Context, name string) (bool, error) {
	ok, err := s.api.DeleteProduct(ctx, name)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	s.update(func() bool {
		i := s.indexLocked(name)
		if i < 0 {
			return false
		}
		s.products = slices.Delete(s.products, i, i+1)
		return true
	})
	return true, nil
}

// Buy purchases amount units of the named product and applies the result
// locally.
func (s *State) Buy(ctx context.Context, name string, amount int64) (*models.PurchaseResult, error) {
	r, err := s.api.Buy(ctx, name, amount)
	if err != nil {
		return nil, err
	}
	s.ApplyPurchaseResult(name, *r)
	return r, nil
}

// ApplyPurchaseResult decrements the cached stock of name by r.Amount and
// sets the session deposit to r.Change. It does nothing unless the catalog
// is loaded and contains name.
func (s *State) ApplyPurchaseResult(name string, r models.PurchaseResult) {
	s.update(func() bool {
		if !s.loaded || len(s.products) == 0 {
			return false
		}
		i := s.indexLocked(name)
		if i < 0 {
			return false
		}
		s.products[i].AmountAvailable -= r.Amount
		if s.user != nil {
			u := *s.user
			u.Deposit = r.Change
			s.user = &u
		}
		return true
	})
}

func (s *State) indexLocked(name string) int {
	return slices.IndexFunc(s.products, func(p models.Product) bool { return p.ProductName == name })
}
