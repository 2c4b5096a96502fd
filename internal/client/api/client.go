// Package api is the single point of egress for the admin backend. It owns
// the wire contract (paths, JSON shapes, bearer transport) and the
// authorization-failure interception; stores consume the Client interface
// and never build requests themselves.
package api

import (
	"context"

	"github.com/aidirectory/adminctl/internal/client/models"
)

// Client is the remote operation surface consumed by the entity stores and
// the session store. Implementations must issue exactly one request per call:
// retry decisions belong to the caller.
type Client interface {
	// Auth. Login and Register are credential-free calls and must not
	// trigger the forced-logout side effect on a 401 (a wrong password is
	// an ordinary failure, not a session death).
	Login(ctx context.Context, p models.LoginPayload) (*models.LoginResponse, error)
	Register(ctx context.Context, p models.RegisterPayload) (*models.RegisterResponse, error)
	Logout(ctx context.Context) (string, error)

	// Items (paginated).
	ListItems(ctx context.Context, page, limit int) (*models.ItemPage, error)
	AddItem(ctx context.Context, p models.ItemPayload) (*models.Item, error)
	UpdateItem(ctx context.Context, id string, p models.ItemPayload) (*models.Item, error)
	DeleteItem(ctx context.Context, id string) error

	// Categories.
	ListCategories(ctx context.Context) ([]models.Category, error)
	AddCategory(ctx context.Context, p models.CategoryPayload) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, p models.CategoryPayload) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	// Tags.
	ListTags(ctx context.Context) ([]models.Tag, error)
	AddTag(ctx context.Context, p models.TagPayload) (*models.Tag, error)
	UpdateTag(ctx context.Context, id string, p models.TagPayload) (*models.Tag, error)
	DeleteTag(ctx context.Context, id string) error

	// Customers.
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	BlockCustomer(ctx context.Context, id string) error
	UnblockCustomer(ctx context.Context, id string) error
	UpdateCustomer(ctx context.Context, id string, u models.CustomerUpdate) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error

	// Favorites (read-only) and the dashboard snapshot.
	ListFavorites(ctx context.Context) ([]models.Favorite, int, error)
	Summary(ctx context.Context) (*models.DashboardStats, error)
}

// Credentials supplies the bearer token and receives the forced invalidation
// on an authorization failure. The session store implements it.
type Credentials interface {
	// Token returns the current access token, or "" when anonymous.
	Token() string
	// Invalidate clears the session after the server rejected the token.
	Invalidate(ctx context.Context)
}
