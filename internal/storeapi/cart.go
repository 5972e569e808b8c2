package storeapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mintshop/mintshop/internal/catalog"
	"github.com/mintshop/mintshop/internal/checkout"
	"github.com/mintshop/mintshop/internal/domain"
	"github.com/mintshop/mintshop/pkg/validate"
)

type cartItemRequest struct {
	ProductID int64 `json:"product_id"`
}

func (h *Handlers) addToCart(c echo.Context) error {
	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "unable to parse request body")
	}

	// the cart only ever references live products
	_, err := h.catalog.Get(c.Request().Context(), req.ProductID)
	if errors.Is(err, catalog.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return err
	}

	sid, err := sessionID(c)
	if err != nil {
		return err
	}
	count := h.carts.Add(sid, req.ProductID)
	return ok(c, echo.Map{"message": "Added to cart", "cart_count": count})
}

func (h *Handlers) removeFromCart(c echo.Context) error {
	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "unable to parse request body")
	}

	sid, err := sessionID(c)
	if err != nil {
		return err
	}
	if !h.carts.Exists(sid) {
		return fail(c, http.StatusBadRequest, "Cart is empty")
	}
	count := h.carts.Remove(sid, req.ProductID)
	return ok(c, echo.Map{"message": "Removed from cart", "cart_count": count})
}

func (h *Handlers) viewCart(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return err
	}
	lines, total, err := h.checkout.Hydrate(c.Request().Context(), h.carts.Entries(sid))
	if err != nil {
		return err
	}
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return ok(c, echo.Map{"items": lines, "total": total})
}

func (h *Handlers) doCheckout(c echo.Context) error {
	var payload validate.CheckoutPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "unable to parse request body")
	}

	sid, err := sessionID(c)
	if err != nil {
		return err
	}

	order, err := h.checkout.Checkout(c.Request().Context(), sid, payload)
	if errors.Is(err, checkout.ErrEmptyCart) {
		return fail(c, http.StatusBadRequest, "Cart is empty")
	}
	var verrs validate.Errors
	if errors.As(err, &verrs) {
		return fail(c, http.StatusBadRequest, verrs.Error())
	}
	if err != nil {
		return err
	}
	return ok(c, echo.Map{"message": "Order processed successfully", "order": order})
}
