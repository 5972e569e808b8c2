package storeapi

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const sessionName = "mintshop_session"

func ok(c echo.Context, v interface{}) error {
	return c.JSON(http.StatusOK, v)
}

func created(c echo.Context, v interface{}) error {
	return c.JSON(http.StatusCreated, v)
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"error": message})
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// sessionID returns the browser session's opaque cart key, minting and
// persisting one on first use.
func sessionID(c echo.Context) (string, error) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusInternalServerError, "session unavailable").SetInternal(err)
	}
	if sid, found := sess.Values["sid"].(string); found && sid != "" {
		return sid, nil
	}
	sid := uuid.NewString()
	sess.Values["sid"] = sid
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 86400,
		HttpOnly: true,
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return "", echo.NewHTTPError(http.StatusInternalServerError, "failed to save session").SetInternal(err)
	}
	return sid, nil
}
