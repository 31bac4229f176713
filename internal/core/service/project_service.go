package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/birdboard/project-system/internal/api/metrics"
	"github.com/birdboard/project-system/internal/core/domain"
	"github.com/birdboard/project-system/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ActivityRecorder abstracts the async activity pipeline (queue dispatcher).
type ActivityRecorder interface {
	Enqueue(activity ports.ActivityInput)
}

type ProjectService struct {
	repo     ports.ProjectRepository
	recorder ActivityRecorder
	logger   zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, recorder ActivityRecorder, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, recorder: recorder, logger: logger}
}

// CreateProject validates the input, binds ownership to the calling user,
// and persists the project. All violated fields are collected into a single
// *domain.ValidationError; on any violation no store write happens.
func (s *ProjectService) CreateProject(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	verr := domain.NewValidationError()
	if strings.TrimSpace(input.Title) == "" {
		verr.Add("title", "title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		verr.Add("description", "description is required")
	}
	if verr.HasErrors() {
		for field := range verr.Fields {
			metrics.ProjectsRejectedTotal.WithLabelValues(field).Inc()
		}
		return nil, verr
	}

	now := time.Now().UTC()
	project := &domain.Project{
		ID:          generateProjectID(),
		OwnerID:     input.User.ID,
		Title:       input.Title,
		Description: input.Description,
		Notes:       input.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().Str("project_id", project.ID).Str("owner_id", project.OwnerID).Msg("project created")
	metrics.ProjectsCreatedTotal.Inc()
	s.record(project.ID, domain.ActivityCreated, input.User.ID, now)

	return project, nil
}

// GetProject fetches a project by id and applies the access policy.
// The lookup is unfiltered so that "doesn't exist" and "exists but not
// yours" remain distinguishable outcomes (404 vs 403 at the transport).
func (s *ProjectService) GetProject(ctx context.Context, input ports.GetProjectInput) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if !domain.CanView(input.User, project) {
		return nil, domain.ErrForbidden
	}
	return project, nil
}

// ListProjects returns a page of projects. Member users are always forced
// onto their own owner filter regardless of what the request asked for;
// admins see all projects.
func (s *ProjectService) ListProjects(ctx context.Context, input ports.ListProjectsInput) (*ports.ListProjectsResult, error) {
	page := input.Page
	if page <= 0 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	filter := ports.ListProjectsFilter{
		Search: input.Search,
		Page:   page,
		Limit:  limit,
	}
	if input.User.Role != domain.RoleAdmin {
		filter.OwnerID = input.User.ID
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list projects")
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ports.ListProjectsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// UpdateProjectNotes applies a notes change after an ownership check.
// A forbidden or not-found outcome leaves the store untouched.
func (s *ProjectService) UpdateProjectNotes(ctx context.Context, input ports.UpdateProjectNotesInput) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if !domain.CanUpdate(input.User, project) {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateNotes(ctx, project.ID, input.Notes, now); err != nil {
		s.logger.Error().Err(err).Str("project_id", project.ID).Msg("failed to update project notes")
		return nil, err
	}

	project.Notes = input.Notes
	project.UpdatedAt = now

	s.logger.Info().Str("project_id", project.ID).Msg("project notes updated")
	s.record(project.ID, domain.ActivityNotesUpdated, input.User.ID, now)

	return project, nil
}

func (s *ProjectService) record(projectID string, action domain.ActivityAction, actorID string, ts time.Time) {
	if s.recorder == nil {
		return
	}
	s.recorder.Enqueue(ports.ActivityInput{
		ProjectID: projectID,
		Action:    string(action),
		ActorID:   actorID,
		Timestamp: ts,
	})
}

// generateProjectID returns a unique project id in the format PRJ-XXXXXXXX.
func generateProjectID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("PRJ-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("PRJ-%08X", b)
}
