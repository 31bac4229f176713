package ports

import (
	"context"
	"time"

	"github.com/birdboard/project-system/internal/core/domain"
)

// ListProjectsFilter carries all query parameters for listing projects.
// OwnerID is always enforced by the service layer for member users.
type ListProjectsFilter struct {
	OwnerID string // empty = no filter (admin); non-empty = scoped to owner
	Search  string // optional: partial match on title
	Page    int    // 1-based
	Limit   int    // max rows per page (capped at 100 by service)
}

// ProjectRepository defines persistence operations for projects.
// It is a pure persistence boundary: no validation, no policy decisions.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	// FindByID retrieves a project by id without any owner filter; the
	// service applies the access policy so that not-found and forbidden
	// stay distinguishable outcomes.
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// List returns a page of projects matching filter and the total count.
	List(ctx context.Context, filter ListProjectsFilter) ([]*domain.Project, int64, error)
	// UpdateNotes sets the notes field and bumps updated_at.
	UpdateNotes(ctx context.Context, id, notes string, updatedAt time.Time) error
}
