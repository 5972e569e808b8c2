package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/mintshop/mintshop/internal/cart"
	"github.com/mintshop/mintshop/internal/catalog"
	"github.com/mintshop/mintshop/internal/domain"
	"github.com/mintshop/mintshop/pkg/validate"
)

type fakeCatalog struct {
	products map[int64]domain.Product
}

func (f *fakeCatalog) Get(_ context.Context, id int64) (*domain.Product, error) {
	p, found := f.products[id]
	if !found {
		return nil, catalog.ErrNotFound
	}
	return &p, nil
}

func newFixture() (*Engine, *fakeCatalog, *cart.Store) {
	fc := &fakeCatalog{products: map[int64]domain.Product{
		1: {ID: 1, Name: "Nova Headphones", Price: 100, Category: "Electronics"},
		2: {ID: 2, Name: "Smart Watch Pro", Price: 249.50, Category: "Wearables"},
	}}
	carts := cart.NewStore()
	return NewEngine(fc, carts), fc, carts
}

var payment = validate.CheckoutPayload{PaymentMethod: "card", Address: "1 Main St"}

func TestHydrateDropsDeletedProducts(t *testing.T) {
	engine, fc, carts := newFixture()
	carts.Add("sid", 1)

	delete(fc.products, 1)

	lines, total, err := engine.Hydrate(context.Background(), carts.Entries("sid"))
	if err != nil {
		t.Fatalf("Hydrate() error = %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("lines = %v, want none", lines)
	}
	if total != 0 {
		t.Errorf("total = %v, want 0", total)
	}
}

func TestHydrateComputesLineTotals(t *testing.T) {
	engine, _, carts := newFixture()
	carts.Add("sid", 1)
	carts.Add("sid", 1)
	carts.Add("sid", 2)

	lines, total, err := engine.Hydrate(context.Background(), carts.Entries("sid"))
	if err != nil {
		t.Fatalf("Hydrate() error = %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0].Total != 200 {
		t.Errorf("line total = %v, want 200", lines[0].Total)
	}
	if want := 200 + 249.50; total != want {
		t.Errorf("total = %v, want %v", total, want)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	engine, _, carts := newFixture()

	_, err := engine.Checkout(context.Background(), "sid", payment)
	if !errors.Is(err, ErrEmptyCart) {
		t.Errorf("Checkout() error = %v, want ErrEmptyCart", err)
	}

	// a cart whose every product was deleted counts as empty too
	carts.Add("sid", 1)
	engine.products.(*fakeCatalog).products = map[int64]domain.Product{}
	_, err = engine.Checkout(context.Background(), "sid", payment)
	if !errors.Is(err, ErrEmptyCart) {
		t.Errorf("Checkout() on dangling cart error = %v, want ErrEmptyCart", err)
	}
	if len(carts.Entries("sid")) != 1 {
		t.Error("failed checkout must not mutate the cart")
	}
}

func TestCheckoutInvalidPaymentLeavesCart(t *testing.T) {
	engine, _, carts := newFixture()
	carts.Add("sid", 1)

	_, err := engine.Checkout(context.Background(), "sid", validate.CheckoutPayload{})
	var verrs validate.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("Checkout() error = %v, want validation errors", err)
	}
	if len(carts.Entries("sid")) != 1 {
		t.Error("validation failure must leave the cart untouched")
	}
}

func TestCheckoutUsesPriceAtCheckoutTime(t *testing.T) {
	engine, fc, carts := newFixture()
	carts.Add("sid", 1) // priced 100 at add time

	p := fc.products[1]
	p.Price = 120
	fc.products[1] = p

	order, err := engine.Checkout(context.Background(), "sid", payment)
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}
	if order.Total != 120 {
		t.Errorf("total = %v, want 120 (price at checkout time)", order.Total)
	}
}

func TestCheckoutBuildsSummaryAndClearsCart(t *testing.T) {
	engine, _, carts := newFixture()
	carts.Add("sid", 1)
	carts.Add("sid", 1)

	order, err := engine.Checkout(context.Background(), "sid", payment)
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}
	if order.OrderID == "" {
		t.Error("order ID missing")
	}
	if order.Status != OrderStatus {
		t.Errorf("status = %q, want %q", order.Status, OrderStatus)
	}
	if order.Payment != "card" || order.Address != "1 Main St" {
		t.Errorf("payment info not carried: %+v", order)
	}
	if order.Total != 200 {
		t.Errorf("total = %v, want 200", order.Total)
	}
	if len(carts.Entries("sid")) != 0 {
		t.Error("successful checkout must clear the cart")
	}

	second, err := engine.Checkout(context.Background(), "sid", payment)
	if !errors.Is(err, ErrEmptyCart) {
		t.Errorf("second Checkout() = %v, %v; want ErrEmptyCart", second, err)
	}
}

func TestOrderIDsAreUnique(t *testing.T) {
	engine, _, carts := newFixture()

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		carts.Add("sid", 1)
		order, err := engine.Checkout(context.Background(), "sid", payment)
		if err != nil {
			t.Fatalf("Checkout() error = %v", err)
		}
		if seen[order.OrderID] {
			t.Fatalf("duplicate order ID %q", order.OrderID)
		}
		seen[order.OrderID] = true
	}
}
