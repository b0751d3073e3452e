package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"

	"github.com/dmitrijs2005/vending/internal/client/models"
	"github.com/dmitrijs2005/vending/internal/client/session"
	"github.com/dmitrijs2005/vending/internal/logging"
	"github.com/dmitrijs2005/vending/internal/tokenx"
)

// fakeSession records calls and keeps just enough state for the commands.
type fakeSession struct {
	snap      session.Snapshot
	calls     []string
	err       error
	observers []session.Observer

	lastName   string
	lastAmount int64
	lastInput  models.ProductInput
	lastRole   models.Role

	products []models.Product
	result   *models.PurchaseResult
	deleted  bool
	claims   tokenx.Claims
	hasToken bool
	claimErr error
}

func (f *fakeSession) record(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeSession) notify() {
	for _, o := range f.observers {
		o(f.snap)
	}
}

func (f *fakeSession) signIn(u models.User) {
	f.snap.User = &u
	f.notify()
}

func (f *fakeSession) Register(_ context.Context, username, _ string, role models.Role) error {
	f.lastRole = role
	if err := f.record("register"); err != nil {
		return err
	}
	f.signIn(models.User{Username: username, Role: role})
	return nil
}

func (f *fakeSession) Authenticate(_ context.Context, username, _ string) error {
	if err := f.record("login"); err != nil {
		return err
	}
	f.signIn(models.User{Username: username, Role: models.RoleBuyer, Deposit: 500})
	return nil
}

func (f *fakeSession) Bootstrap(context.Context) error { return f.record("bootstrap") }

func (f *fakeSession) Logout(context.Context) error {
	f.snap = session.Snapshot{}
	f.notify()
	return f.record("logout")
}

func (f *fakeSession) LoadProducts(context.Context) ([]models.Product, error) {
	if err := f.record("products"); err != nil {
		return nil, err
	}
	return f.products, nil
}

func (f *fakeSession) FetchProduct(_ context.Context, name string) (*models.Product, error) {
	f.lastName = name
	if err := f.record("product"); err != nil {
		return nil, err
	}
	for _, p := range f.products {
		if p.ProductName == name {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeSession) Refresh(context.Context) error { return f.record("refresh") }

func (f *fakeSession) CreateProduct(_ context.Context, in models.ProductInput) (*models.Product, error) {
	f.lastInput = in
	if err := f.record("create"); err != nil {
		return nil, err
	}
	return &models.Product{ProductName: in.ProductName, AmountAvailable: in.AmountAvailable, Cost: in.Cost}, nil
}

func (f *fakeSession) UpdateProduct(_ context.Context, name string, in models.ProductInput) (*models.Product, error) {
	f.lastName, f.lastInput = name, in
	if err := f.record("update"); err != nil {
		return nil, err
	}
	return &models.Product{ProductName: in.ProductName}, nil
}

func (f *fakeSession) DeleteProduct(_ context.Context, name string) (bool, error) {
	f.lastName = name
	if err := f.record("delete"); err != nil {
		return false, err
	}
	return f.deleted, nil
}

func (f *fakeSession) Buy(_ context.Context, name string, amount int64) (*models.PurchaseResult, error) {
	f.lastName, f.lastAmount = name, amount
	if err := f.record("buy"); err != nil {
		return nil, err
	}
	if f.snap.User != nil {
		f.snap.User.Deposit = f.result.Change
		f.notify()
	}
	return f.result, nil
}

func (f *fakeSession) Deposit(_ context.Context, amount int64) error {
	f.lastAmount = amount
	if err := f.record("deposit"); err != nil {
		return err
	}
	f.snap.User.Deposit += amount
	f.notify()
	return nil
}

func (f *fakeSession) ResetDeposit(context.Context) error {
	if err := f.record("reset"); err != nil {
		return err
	}
	f.snap.User.Deposit = 0
	f.notify()
	return nil
}

func (f *fakeSession) Current() session.Snapshot { return f.snap }

func (f *fakeSession) Subscribe(o session.Observer) func() {
	f.observers = append(f.observers, o)
	return func() { f.observers = nil }
}

func (f *fakeSession) CredentialInfo(context.Context) (tokenx.Claims, bool, error) {
	return f.claims, f.hasToken, f.claimErr
}

type fakeHealth struct {
	status string
	err    error
}

func (f *fakeHealth) Health(context.Context) (string, error) { return f.status, f.err }

// newTestApp builds an App around fakes, feeding input lines to the prompts.
func newTestApp(s *fakeSession, lines ...string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	a := &App{
		log:     logging.Nop(),
		session: s,
		health:  &fakeHealth{status: "ok"},
		reader:  bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n")),
		out:     out,
	}
	s.Subscribe(a.onSessionChange)
	return a, out
}

func asSeller(s *fakeSession) *fakeSession {
	s.snap.User = &models.User{Username: "alice", Role: models.RoleSeller}
	return s
}

func asBuyer(s *fakeSession, deposit int64) *fakeSession {
	s.snap.User = &models.User{Username: "bob", Role: models.RoleBuyer, Deposit: deposit}
	return s
}
