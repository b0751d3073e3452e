package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/vending/internal/client/models"
)

func productPath(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyProductName
	}
	return "products/" + url.PathEscape(name), nil
}

// Me returns the user the current credential belongs to.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.call(ctx, "me", http.MethodGet, "me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var ps []models.Product
	if err := c.call(ctx, "products", http.MethodGet, "products", nil, &ps); err != nil {
		return nil, err
	}
	if ps == nil {
		ps = []models.Product{}
	}
	return ps, nil
}

func (c *Client) GetProduct(ctx context.Context, name string) (*models.Product, error) {
	path, err := productPath(name)
	if err != nil {
		return nil, err
	}
	var p models.Product
	if err := c.call(ctx, "products/{name}", http.MethodGet, path, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateProduct(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	var p models.Product
	if err := c.call(ctx, "products", http.MethodPost, "products", JSONBody(in), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProduct replaces the product currently called name with in.
func (c *Client) UpdateProduct(ctx context.Context, name string, in models.ProductInput) (*models.Product, error) {
	path, err := productPath(name)
	if err != nil {
		return nil, err
	}
	var p models.Product
	if err := c.call(ctx, "products/{name}", http.MethodPut, path, JSONBody(in), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProduct reports what the backend answered; true means deleted.
func (c *Client) DeleteProduct(ctx context.Context, name string) (bool, error) {
	path, err := productPath(name)
	if err != nil {
		return false, err
	}
	var ok bool
	if err := c.call(ctx, "products/{name}", http.MethodDelete, path, nil, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// Register creates an account. The returned user carries a token when the
// backend issues one on sign-up.
func (c *Client) Register(ctx context.Context, in models.RegisterRequest) (*models.User, error) {
	var u models.User
	if err := c.call(ctx, "users", http.MethodPost, "users", JSONBody(in), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login exchanges username and password for a user with a token. The form
// encoding matches the backend's OAuth2 password flow.
func (c *Client) Login(ctx context.Context, username, password string) (*models.User, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var u models.User
	if err := c.call(ctx, "login", http.MethodPost, "login", FormBody(form), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// RefreshToken trades the current credential for a fresh user and token.
func (c *Client) RefreshToken(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.call(ctx, "token", http.MethodGet, "token", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Deposit(ctx context.Context, amount int64) (*models.User, error) {
	var u models.User
	if err := c.call(ctx, "deposit", http.MethodPost, "deposit", JSONBody(models.DepositRequest{Amount: amount}), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Buy(ctx context.Context, productName string, amount int64) (*models.PurchaseResult, error) {
	var r models.PurchaseResult
	body := JSONBody(models.BuyRequest{ProductName: productName, Amount: amount})
	if err := c.call(ctx, "buy", http.MethodPost, "buy", body, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ResetDeposit zeroes the buyer's deposit on the backend.
func (c *Client) ResetDeposit(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.call(ctx, "reset", http.MethodGet, "reset", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) GetUser(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := c.call(ctx, "users/{username}", http.MethodGet, "users/"+url.PathEscape(username), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Health returns the status string reported by the backend, "ok" when healthy.
func (c *Client) Health(ctx context.Context) (string, error) {
	var h struct {
		Status string `json:"status"`
	}
	if err := c.call(ctx, "health", http.MethodGet, "health", nil, &h); err != nil {
		return "", err
	}
	return h.Status, nil
}
