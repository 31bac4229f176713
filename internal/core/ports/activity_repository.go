package ports

import (
	"context"

	"github.com/birdboard/project-system/internal/core/domain"
)

// ActivityRepository handles persistence of the project activity feed.
type ActivityRepository interface {
	Insert(ctx context.Context, a *domain.Activity) error
	// ListByProject returns the newest entries first, up to limit.
	ListByProject(ctx context.Context, projectID string, limit int) ([]*domain.Activity, error)
}
