// Package webserver wires the echo HTTP server: middleware, sessions, the
// bearer-token gate, and the route table for the store API.
package webserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/mintshop/mintshop/internal/app"
	"github.com/mintshop/mintshop/internal/auth"
	"github.com/mintshop/mintshop/internal/catalog"
	"github.com/mintshop/mintshop/internal/checkout"
	"github.com/mintshop/mintshop/internal/identity"
	"github.com/mintshop/mintshop/internal/storeapi"
)

type WebServer struct {
	root   *echo.Echo
	appCtx *app.Application
}

func NewServer(application *app.Application) *WebServer {
	cfg := application.Config()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = NewJSONSerializer()
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Recover())
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(cfg.Web.SessionSecret))))
	e.Use(requestLogger())

	s := &WebServer{root: e, appCtx: application}
	s.initRoutes()
	return s
}

func (s *WebServer) initRoutes() {
	cfg := s.appCtx.Config()
	db := s.appCtx.DB()

	catalogStore := catalog.NewStore(db)
	identitySvc := identity.NewService(db)
	issuer := auth.NewIssuer(cfg.Web.JwtSecret)
	carts := s.appCtx.CartStore()
	engine := checkout.NewEngine(catalogStore, carts)

	h := storeapi.New(catalogStore, identitySvc, issuer, carts, engine)
	h.Register(s.root, tokenRequired(issuer))
}

// tokenRequired gates catalog mutations behind a valid bearer token. Any
// valid token authorizes any mutation; there are no roles.
func tokenRequired(issuer *auth.Issuer) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			username, err := issuer.Verify(tokenString)
			if err != nil {
				return nil, err
			}
			c.Set("username", username)
			return username, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			msg := "missing or invalid token"
			if errors.Is(err, auth.ErrTokenExpired) {
				msg = "token expired"
			}
			return echo.NewHTTPError(http.StatusUnauthorized, msg)
		},
	})
}

func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			zap.L().Debug("http request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)))
			return nil
		}
	}
}

// errorHandler translates every error escaping a handler into the JSON error
// body. Unexpected errors become a generic 500 with no internal detail.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, ok := he.Message.(string)
		if !ok {
			msg = http.StatusText(he.Code)
		}
		if jerr := c.JSON(he.Code, echo.Map{"error": msg}); jerr != nil {
			zap.L().Error("failed to write error response", zap.Error(jerr))
		}
		return
	}
	zap.L().Error("unhandled error", zap.String("path", c.Request().URL.Path), zap.Error(err))
	_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
}

func (s *WebServer) Start() error {
	cfg := s.appCtx.Config()
	addr := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	zap.S().Infof("starting web server on %s", addr)
	return s.root.Start(addr)
}

func (s *WebServer) Shutdown(ctx context.Context) error {
	return s.root.Shutdown(ctx)
}
