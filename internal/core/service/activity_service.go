package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/birdboard/project-system/internal/api/metrics"
	"github.com/birdboard/project-system/internal/core/domain"
	"github.com/birdboard/project-system/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, projectID, action string, ts time.Time) (bool, error)
	Mark(ctx context.Context, projectID, action string, ts time.Time) error
}

type activityService struct {
	projectRepo  ports.ProjectRepository
	activityRepo ports.ActivityRepository
	dedup        DedupChecker
	log          zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(
	projectRepo ports.ProjectRepository,
	activityRepo ports.ActivityRepository,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.ActivityService {
	return &activityService{
		projectRepo:  projectRepo,
		activityRepo: activityRepo,
		dedup:        dedup,
		log:          log,
	}
}

// Process validates, deduplicates, and persists a single activity entry.
func (s *activityService) Process(ctx context.Context, in ports.ActivityInput) error {
	start := time.Now()
	action := domain.ActivityAction(in.Action)

	if !action.KnownAction() {
		metrics.ActivitiesErrorsTotal.WithLabelValues("unknown_action").Inc()
		return fmt.Errorf("process activity: unknown action %q", in.Action)
	}

	// 1. Idempotency check — silently skip duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, in.ProjectID, in.Action, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("project_id", in.ProjectID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("project_id", in.ProjectID).Str("action", in.Action).Msg("duplicate activity skipped")
		metrics.ActivitiesDedupTotal.WithLabelValues("hit").Inc()
		return nil
	}
	metrics.ActivitiesDedupTotal.WithLabelValues("miss").Inc()

	// 2. The project must still exist.
	if _, err := s.projectRepo.FindByID(ctx, in.ProjectID); err != nil {
		metrics.ActivitiesErrorsTotal.WithLabelValues("project_not_found").Inc()
		return fmt.Errorf("process activity: %w", err)
	}

	// 3. Mark as processed before writing (prevents duplicate processing on retry).
	if markErr := s.dedup.Mark(ctx, in.ProjectID, in.Action, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("project_id", in.ProjectID).Msg("failed to set dedup key")
	}

	// 4. Append to the feed.
	entry := &domain.Activity{
		ProjectID: in.ProjectID,
		Action:    action,
		ActorID:   in.ActorID,
		Timestamp: in.Timestamp,
	}
	if err := s.activityRepo.Insert(ctx, entry); err != nil {
		metrics.ActivitiesErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("process activity: insert: %w", err)
	}

	metrics.ActivitiesProcessedTotal.WithLabelValues(in.Action).Inc()
	metrics.ActivityProcessingDuration.WithLabelValues(in.Action).Observe(time.Since(start).Seconds())

	s.log.Info().
		Str("project_id", in.ProjectID).
		Str("action", in.Action).
		Str("actor_id", in.ActorID).
		Msg("activity recorded")

	return nil
}
