package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/labos-hq/labos-backend/internal/core/domain"
)

// ctxCaller extracts the identity injected by the Auth middleware. An
// empty role means the middleware did not run for this route; fail
// closed with 401 rather than passing a blank identity downstream.
func ctxCaller(c echo.Context) (domain.Caller, error) {
	username, _ := c.Get("username").(string)
	role, _ := c.Get("role").(string)
	if username == "" || role == "" {
		return domain.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Caller{Username: username, Role: role}, nil
}
