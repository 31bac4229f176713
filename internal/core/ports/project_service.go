package ports

import (
	"context"

	"github.com/birdboard/project-system/internal/core/domain"
)

// CreateProjectInput carries all data needed to create a new project.
// User is the authenticated caller; the project's owner is bound from it.
type CreateProjectInput struct {
	User        *domain.User
	Title       string
	Description string
	Notes       string
}

// GetProjectInput carries the parameters needed to retrieve a single project.
type GetProjectInput struct {
	User      *domain.User
	ProjectID string
}

// ListProjectsInput carries all parameters for the list endpoint.
type ListProjectsInput struct {
	User   *domain.User
	Search string
	Page   int
	Limit  int
}

// ListProjectsResult is returned by ListProjects.
type ListProjectsResult struct {
	Items      []*domain.Project
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UpdateProjectNotesInput carries the parameters for the notes update.
type UpdateProjectNotesInput struct {
	User      *domain.User
	ProjectID string
	Notes     string
}

// ProjectService defines use-case operations for projects. Failure modes
// surface as domain errors: *domain.ValidationError, domain.ErrForbidden,
// domain.ErrProjectNotFound.
type ProjectService interface {
	CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	GetProject(ctx context.Context, input GetProjectInput) (*domain.Project, error)
	ListProjects(ctx context.Context, input ListProjectsInput) (*ListProjectsResult, error)
	UpdateProjectNotes(ctx context.Context, input UpdateProjectNotesInput) (*domain.Project, error)
}
