package storeapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/mintshop/mintshop/internal/identity"
	"github.com/mintshop/mintshop/pkg/validate"
)

func (h *Handlers) register(c echo.Context) error {
	var payload validate.RegisterPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "unable to parse request body")
	}
	if err := validate.Struct(payload); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	_, err := h.identity.Register(c.Request().Context(), payload.Username, payload.Email, payload.Password)
	if errors.Is(err, identity.ErrUserExists) {
		return fail(c, http.StatusBadRequest, "User already exists")
	}
	if err != nil {
		return err
	}
	return created(c, echo.Map{"message": "User registered successfully"})
}

func (h *Handlers) login(c echo.Context) error {
	var payload validate.LoginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "unable to parse request body")
	}
	if err := validate.Struct(payload); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	user, err := h.identity.Authenticate(c.Request().Context(), payload.Username, payload.Password)
	if errors.Is(err, identity.ErrInvalidCredentials) {
		return fail(c, http.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		return err
	}

	token, err := h.tokens.Issue(user.Username)
	if err != nil {
		return err
	}

	// remember the username on the web session alongside the cart key
	if sess, serr := session.Get(sessionName, c); serr == nil {
		sess.Values["username"] = user.Username
		_ = sess.Save(c.Request(), c.Response())
	}

	return ok(c, echo.Map{"access_token": token})
}
