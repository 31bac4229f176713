package ports

import (
	"context"
	"time"
)

// ActivityInput is the DTO passed from the recording side to ActivityService.
type ActivityInput struct {
	ProjectID string
	Action    string
	ActorID   string
	Timestamp time.Time
}

// ActivityService processes recorded project activities.
type ActivityService interface {
	Process(ctx context.Context, activity ActivityInput) error
}
