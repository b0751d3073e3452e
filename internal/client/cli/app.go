package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/vending/internal/client/apiclient"
	"github.com/dmitrijs2005/vending/internal/client/config"
	"github.com/dmitrijs2005/vending/internal/client/credentials"
	"github.com/dmitrijs2005/vending/internal/client/models"
	"github.com/dmitrijs2005/vending/internal/client/session"
	"github.com/dmitrijs2005/vending/internal/client/storage"
	"github.com/dmitrijs2005/vending/internal/logging"
	"github.com/dmitrijs2005/vending/internal/metrics"
	"github.com/dmitrijs2005/vending/internal/tokenx"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// vendingSession is what the commands need from *session.State.
type vendingSession interface {
	Register(ctx context.Context, username, password string, role models.Role) error
	Authenticate(ctx context.Context, username, password string) error
	Bootstrap(ctx context.Context) error
	Logout(ctx context.Context) error
	LoadProducts(ctx context.Context) ([]models.Product, error)
	FetchProduct(ctx context.Context, name string) (*models.Product, error)
	Refresh(ctx context.Context) error
	CreateProduct(ctx context.Context, in models.ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, name string, in models.ProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, name string) (bool, error)
	Buy(ctx context.Context, name string, amount int64) (*models.PurchaseResult, error)
	Deposit(ctx context.Context, amount int64) error
	ResetDeposit(ctx context.Context) error
	Current() session.Snapshot
	Subscribe(o session.Observer) func()
	CredentialInfo(ctx context.Context) (tokenx.Claims, bool, error)
}

type healthChecker interface {
	Health(ctx context.Context) (string, error)
}

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	session  vendingSession
	health   healthChecker
	registry *prometheus.Registry

	metricsSrv *http.Server
	reader     *bufio.Reader
	out        io.Writer

	modeMu sync.Mutex
	mode   Mode

	lastDeposit *int64
}

// NewApp wires storage, the API client and the session for c.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, c.LogLevel)

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	store := credentials.NewStore(db)
	registry := prometheus.NewRegistry()

	api, err := apiclient.New(c.ServerURL, store,
		apiclient.WithTimeout(c.RequestTimeout),
		apiclient.WithLogger(logger.With("component", "apiclient")),
		apiclient.WithRecorder(metrics.NewCollector(registry)),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	state := session.New(api, store,
		session.WithLogger(logger.With("component", "session")),
		session.WithStaleCredentialCleanup(c.ClearStaleCredential),
	)

	return &App{
		config:   c,
		log:      logger,
		db:       db,
		session:  state,
		health:   api,
		registry: registry,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run restores any saved session and serves the REPL until the user exits
// or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.config.MetricsAddr != "" {
		a.serveMetrics(a.config.MetricsAddr)
	}
	if a.config.HealthCheckInterval > 0 {
		go a.StartHealthWatcher(ctx, a.config.HealthCheckInterval)
	}

	unsubscribe := a.session.Subscribe(a.onSessionChange)
	defer unsubscribe()

	printlnFn("Welcome to the vending CLI (type 'help' for commands)")
	a.bootstrap(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) bootstrap(ctx context.Context) {
	if err := a.session.Bootstrap(ctx); err != nil {
		a.log.Error(ctx, "restore session", "error", err)
		return
	}
	u := a.session.Current().User
	if u == nil {
		return
	}
	fmt.Fprintf(a.out, "Welcome back, %s (%s)\n", u.Username, u.Role)
	a.preloadProducts(ctx)
}

// preloadProducts fills the catalog cache after sign-in. Failures are only
// logged; the list command reports them to the user.
func (a *App) preloadProducts(ctx context.Context) {
	if _, err := a.session.LoadProducts(ctx); err != nil {
		a.log.Warn(ctx, "load products", "error", err)
	}
}

func (a *App) serveMetrics(addr string) {
	a.metricsSrv = &http.Server{
		Addr:              addr,
		Handler:           metrics.Handler(a.registry),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := a.metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error(context.Background(), "metrics server", "addr", addr, "error", err)
		}
	}()
	a.log.Info(context.Background(), "serving metrics", "addr", addr)
}

// Close stops the metrics server and closes the database.
func (a *App) Close() error {
	var errs []error
	if a.metricsSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		errs = append(errs, a.metricsSrv.Shutdown(ctx))
		cancel()
		a.metricsSrv = nil
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
		a.db = nil
	}
	return errors.Join(errs...)
}

func (a *App) role() models.Role {
	if u := a.session.Current().User; u != nil {
		return u.Role
	}
	return ""
}

func (a *App) isLoggedIn() bool {
	return a.session.Current().User != nil
}

// onSessionChange reports the buyer's deposit whenever it moves.
func (a *App) onSessionChange(s session.Snapshot) {
	if s.User == nil {
		a.lastDeposit = nil
		return
	}
	if !s.User.IsBuyer() {
		return
	}
	d := s.User.Deposit
	if a.lastDeposit != nil && *a.lastDeposit == d {
		return
	}
	a.lastDeposit = &d
	fmt.Fprintf(a.out, "Your deposit: %d\n", d)
}
