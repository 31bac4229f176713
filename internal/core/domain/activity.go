package domain

import "time"

// ActivityAction identifies what happened to a project.
type ActivityAction string

const (
	ActivityCreated      ActivityAction = "created"
	ActivityNotesUpdated ActivityAction = "notes_updated"
)

// Activity records a single change made to a project, for the per-project
// activity feed.
type Activity struct {
	ProjectID string
	Action    ActivityAction
	ActorID   string
	Timestamp time.Time
}

// KnownAction reports whether the action is one the pipeline understands.
func (a ActivityAction) KnownAction() bool {
	return a == ActivityCreated || a == ActivityNotesUpdated
}
