package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/birdboard/project-system/internal/core/domain"
)

func invokeRBAC(t *testing.T, role string, allowed ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	if err := RBAC(allowed...)(next)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRBAC_AllowedRole(t *testing.T) {
	rec := invokeRBAC(t, domain.RoleMember, domain.RoleMember, domain.RoleAdmin)
	if rec.Code != http.StatusOK {
		t.Errorf("member should pass, got %d", rec.Code)
	}
}

func TestRBAC_DisallowedRole(t *testing.T) {
	rec := invokeRBAC(t, domain.RoleMember, domain.RoleAdmin)
	if rec.Code != http.StatusForbidden {
		t.Errorf("member must not pass an admin-only gate, got %d", rec.Code)
	}
}

func TestRBAC_UnknownRole(t *testing.T) {
	rec := invokeRBAC(t, "auditor", domain.RoleMember, domain.RoleAdmin)
	if rec.Code != http.StatusForbidden {
		t.Errorf("unknown role must be rejected, got %d", rec.Code)
	}
}

func TestRBAC_MissingRole(t *testing.T) {
	rec := invokeRBAC(t, "", domain.RoleMember, domain.RoleAdmin)
	if rec.Code != http.StatusForbidden {
		t.Errorf("missing role must be rejected, got %d", rec.Code)
	}
}
