// Package storeapi implements the public HTTP surface: auth, catalog,
// cart and checkout endpoints.
package storeapi

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/mintshop/mintshop/internal/cart"
	"github.com/mintshop/mintshop/internal/domain"
	"github.com/mintshop/mintshop/pkg/validate"
)

// Catalog is the product store dependency.
type Catalog interface {
	List(ctx context.Context, category, search string) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, id int64, upd validate.ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

// Identity is the user store dependency.
type Identity interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// TokenIssuer issues bearer tokens after a successful login.
type TokenIssuer interface {
	Issue(username string) (string, error)
}

// Carts is the session cart dependency.
type Carts interface {
	Add(sid string, productID int64) int
	Remove(sid string, productID int64) int
	Exists(sid string) bool
	Entries(sid string) []cart.Entry
}

// Checkout is the checkout engine dependency.
type Checkout interface {
	Hydrate(ctx context.Context, entries []cart.Entry) ([]domain.CartLine, float64, error)
	Checkout(ctx context.Context, sid string, pay validate.CheckoutPayload) (*domain.OrderSummary, error)
}

type Handlers struct {
	catalog  Catalog
	identity Identity
	tokens   TokenIssuer
	carts    Carts
	checkout Checkout
}

func New(catalog Catalog, identity Identity, tokens TokenIssuer, carts Carts, checkout Checkout) *Handlers {
	return &Handlers{
		catalog:  catalog,
		identity: identity,
		tokens:   tokens,
		carts:    carts,
		checkout: checkout,
	}
}

// Register mounts all routes. tokenMW gates the mutating catalog endpoints.
func (h *Handlers) Register(e *echo.Echo, tokenMW echo.MiddlewareFunc) {
	e.GET("/health", h.health)

	api := e.Group("/api")
	api.POST("/register", h.register)
	api.POST("/login", h.login)

	api.GET("/items", h.listItems)
	api.GET("/items/:id", h.getItem)
	api.POST("/items", h.createItem, tokenMW)
	api.PUT("/items/:id", h.updateItem, tokenMW)
	api.PATCH("/items/:id", h.updateItem, tokenMW)
	api.DELETE("/items/:id", h.deleteItem, tokenMW)

	api.GET("/cart", h.viewCart)
	api.POST("/cart/add", h.addToCart)
	api.POST("/cart/remove", h.removeFromCart)
	api.POST("/checkout", h.doCheckout)
}

func (h *Handlers) health(c echo.Context) error {
	return ok(c, echo.Map{"status": "ok"})
}
