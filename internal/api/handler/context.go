package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/birdboard/project-system/internal/core/domain"
)

// ctxUser rebuilds the authenticated user from the claims injected by the
// Auth middleware and performs a fast-fail check before any service call:
// both user_id and role must be non-empty (presence proves the middleware
// ran and the token carried a usable identity).
func ctxUser(c echo.Context) (*domain.User, error) {
	id, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if id == "" || role == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ := c.Get("username").(string)
	return &domain.User{ID: id, Username: username, Role: role}, nil
}
