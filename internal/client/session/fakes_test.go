package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/vending/internal/client/models"
)

var errNotStubbed = errors.New("not stubbed")

// fakeAPI counts every call and delegates to optional stubs.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	register      func(models.RegisterRequest) (*models.User, error)
	login         func(string, string) (*models.User, error)
	refreshToken  func() (*models.User, error)
	me            func() (*models.User, error)
	listProducts  func() ([]models.Product, error)
	getProduct    func(string) (*models.Product, error)
	createProduct func(models.ProductInput) (*models.Product, error)
	updateProduct func(string, models.ProductInput) (*models.Product, error)
	deleteProduct func(string) (bool, error)
	buy           func(string, int64) (*models.PurchaseResult, error)
	deposit       func(int64) (*models.User, error)
	resetDeposit  func() (*models.User, error)
}

func (f *fakeAPI) track(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) Register(_ context.Context, in models.RegisterRequest) (*models.User, error) {
	f.track("register")
	if f.register == nil {
		return nil, errNotStubbed
	}
	return f.register(in)
}

func (f *fakeAPI) Login(_ context.Context, u, p string) (*models.User, error) {
	f.track("login")
	if f.login == nil {
		return nil, errNotStubbed
	}
	return f.login(u, p)
}

func (f *fakeAPI) RefreshToken(context.Context) (*models.User, error) {
	f.track("token")
	if f.refreshToken == nil {
		return nil, errNotStubbed
	}
	return f.refreshToken()
}

func (f *fakeAPI) Me(context.Context) (*models.User, error) {
	f.track("me")
	if f.me == nil {
		return nil, errNotStubbed
	}
	return f.me()
}

func (f *fakeAPI) ListProducts(context.Context) ([]models.Product, error) {
	f.track("products")
	if f.listProducts == nil {
		return nil, errNotStubbed
	}
	return f.listProducts()
}

func (f *fakeAPI) GetProduct(_ context.Context, name string) (*models.Product, error) {
	f.track("product")
	if f.getProduct == nil {
		return nil, errNotStubbed
	}
	return f.getProduct(name)
}

func (f *fakeAPI) CreateProduct(_ context.Context, in models.ProductInput) (*models.Product, error) {
	f.track("create")
	if f.createProduct == nil {
		return nil, errNotStubbed
	}
	return f.createProduct(in)
}

func (f *fakeAPI) UpdateProduct(_ context.Context, name string, in models.ProductInput) (*models.Product, error) {
	f.track("update")
	if f.updateProduct == nil {
		return nil, errNotStubbed
	}
	return f.updateProduct(name, in)
}

func (f *fakeAPI) DeleteProduct(_ context.Context, name string) (bool, error) {
	f.track("delete")
	if f.deleteProduct == nil {
		return false, errNotStubbed
	}
	return f.deleteProduct(name)
}

func (f *fakeAPI) Buy(_ context.Context, name string, amount int64) (*models.PurchaseResult, error) {
	f.track("buy")
	if f.buy == nil {
		return nil, errNotStubbed
	}
	return f.buy(name, amount)
}

func (f *fakeAPI) Deposit(_ context.Context, amount int64) (*models.User, error) {
	f.track("deposit")
	if f.deposit == nil {
		return nil, errNotStubbed
	}
	return f.deposit(amount)
}

func (f *fakeAPI) ResetDeposit(context.Context) (*models.User, error) {
	f.track("reset")
	if f.resetDeposit == nil {
		return nil, errNotStubbed
	}
	return f.resetDeposit()
}

// memCreds is an in-memory CredentialStore.
type memCreds struct {
	mu       sync.Mutex
	token    string
	has      bool
	readErr  error
	writeErr error
	clears   int
}

func (m *memCreds) Token(context.Context) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return "", false, m.readErr
	}
	return m.token, m.has, nil
}

func (m *memCreds) Replace(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.token, m.has = token, true
	return nil
}

func (m *memCreds) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.token, m.has = "", false
	m.clears++
	return nil
}
