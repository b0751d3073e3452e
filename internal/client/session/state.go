package session

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/vending/internal/client/models"
	"github.com/dmitrijs2005/vending/internal/logging"
)

// API is the subset of the access layer the session drives.
type API interface {
	Register(ctx context.Context, in models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	RefreshToken(ctx context.Context) (*models.User, error)
	Me(ctx context.Context) (*models.User, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, name string) (*models.Product, error)
	CreateProduct(ctx context.Context, in models.ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, name string, in models.ProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, name string) (bool, error)
	Buy(ctx context.Context, productName string, amount int64) (*models.PurchaseResult, error)
	Deposit(ctx context.Context, amount int64) (*models.User, error)
	ResetDeposit(ctx context.Context) (*models.User, error)
}

// CredentialStore persists the bearer credential between runs.
type CredentialStore interface {
	Token(ctx context.Context) (string, bool, error)
	Replace(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

type Phase int

const (
	Anonymous Phase = iota
	Authenticated
)

func (p Phase) String() string {
	if p == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Snapshot is a detached copy of the state. Mutating it has no effect on the
// State it came from.
type Snapshot struct {
	User           *models.User
	Products       []models.Product
	ProductsLoaded bool
}

func (s Snapshot) Phase() Phase {
	if s.User != nil {
		return Authenticated
	}
	return Anonymous
}

// Product returns the cached product called name.
func (s Snapshot) Product(name string) (models.Product, bool) {
	i := slices.IndexFunc(s.Products, func(p models.Product) bool { return p.ProductName == name })
	if i < 0 {
		return models.Product{}, false
	}
	return s.Products[i], true
}

// Observer is called with a fresh snapshot after every change.
type Observer func(Snapshot)

type State struct {
	api   API
	creds CredentialStore
	log   logging.Logger

	clearStale bool

	mu        sync.Mutex
	user      *models.User
	products  []models.Product
	loaded    bool
	observers map[int]Observer
	nextObs   int
}

type Option func(*State)

func WithLogger(l logging.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.log = l
		}
	}
}

// WithStaleCredentialCleanup makes Bootstrap drop the stored credential when
// the backend rejects it. Off by default: the credential is left in place.
func WithStaleCredentialCleanup(on bool) Option {
	return func(s *State) { s.clearStale = on }
}

func New(api API, creds CredentialStore, opts ...Option) *State {
	s := &State{
		api:       api,
		creds:     creds,
		log:       logging.Nop(),
		observers: make(map[int]Observer),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers o and returns a function that removes it.
func (s *State) Subscribe(o Observer) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = o
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

func (s *State) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// User returns a copy of the session identity, or nil when anonymous.
func (s *State) User() *models.User {
	return s.Current().User
}

func (s *State) Phase() Phase {
	return s.Current().Phase()
}

func (s *State) snapshotLocked() Snapshot {
	snap := Snapshot{ProductsLoaded: s.loaded}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	if s.products != nil {
		snap.Products = slices.Clone(s.products)
	}
	return snap
}

// update applies fn under the lock and then notifies observers. fn returns
// false when it changed nothing.
func (s *State) update(fn func() bool) {
	s.mu.Lock()
	if !fn() {
		s.mu.Unlock()
		return
	}
	snap := s.snapshotLocked()
	obs := make([]Observer, 0, len(s.observers))
	for _, o := range s.observers {
		obs = append(obs, o)
	}
	s.mu.Unlock()

	for _, o := range obs {
		o(snap)
	}
}
