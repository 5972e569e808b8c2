// Package checkout hydrates session carts against the live catalog and
// produces the ephemeral order summary.
package checkout

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mintshop/mintshop/internal/cart"
	"github.com/mintshop/mintshop/internal/catalog"
	"github.com/mintshop/mintshop/internal/domain"
	"github.com/mintshop/mintshop/pkg/validate"
)

var ErrEmptyCart = errors.New("cart is empty")

// OrderStatus is fixed: there is no payment gateway behind checkout.
const OrderStatus = "Paid"

// ProductReader is the catalog dependency. A missing product must be
// reported as catalog.ErrNotFound.
type ProductReader interface {
	Get(ctx context.Context, id int64) (*domain.Product, error)
}

// Carts is the session cart dependency.
type Carts interface {
	Entries(sid string) []cart.Entry
	Clear(sid string)
}

type Engine struct {
	products ProductReader
	carts    Carts
}

func NewEngine(products ProductReader, carts Carts) *Engine {
	return &Engine{products: products, carts: carts}
}

// Hydrate re-fetches the current product for every entry. Entries whose
// product was deleted are silently dropped, so the cart's view of price and
// availability is always live. Line totals use the price at call time.
func (e *Engine) Hydrate(ctx context.Context, entries []cart.Entry) ([]domain.CartLine, float64, error) {
	lines := make([]domain.CartLine, 0, len(entries))
	var total float64
	for _, entry := range entries {
		p, err := e.products.Get(ctx, entry.ProductID)
		if errors.Is(err, catalog.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, 0, err
		}
		lineTotal := p.Price * float64(entry.Quantity)
		lines = append(lines, domain.CartLine{
			ProductID:   p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Category:    p.Category,
			ImageBase64: p.ImageBase64,
			Quantity:    entry.Quantity,
			Total:       lineTotal,
		})
		total += lineTotal
	}
	return lines, total, nil
}

// Checkout turns the session's cart into an order summary. The cart is
// cleared only after every other step succeeds; an empty or fully dangling
// cart and an invalid payment payload both leave it untouched.
func (e *Engine) Checkout(ctx context.Context, sid string, pay validate.CheckoutPayload) (*domain.OrderSummary, error) {
	lines, total, err := e.Hydrate(ctx, e.carts.Entries(sid))
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if err := validate.Struct(pay); err != nil {
		return nil, err
	}

	order := &domain.OrderSummary{
		OrderID: uuid.NewString(),
		Items:   lines,
		Total:   total,
		Status:  OrderStatus,
		Payment: pay.PaymentMethod,
		Address: pay.Address,
	}
	e.carts.Clear(sid)
	return order, nil
}
