package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/birdboard/project-system/internal/core/domain"
	"github.com/birdboard/project-system/internal/core/ports"
)

const collectionActivities = "activities"

// ActivityRepository implements ports.ActivityRepository using MongoDB.
type ActivityRepository struct {
	col *mongo.Collection
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(db *mongo.Database) ports.ActivityRepository {
	return &ActivityRepository{col: db.Collection(collectionActivities)}
}

type activityDoc struct {
	ProjectID   string    `bson:"project_id"`
	Action      string    `bson:"action"`
	ActorID     string    `bson:"actor_id"`
	Timestamp   time.Time `bson:"timestamp"`
	ProcessedAt time.Time `bson:"processed_at"`
}

// Insert persists an activity entry to the feed.
func (r *ActivityRepository) Insert(ctx context.Context, a *domain.Activity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := activityDoc{
		ProjectID:   a.ProjectID,
		Action:      string(a.Action),
		ActorID:     a.ActorID,
		Timestamp:   a.Timestamp.UTC(),
		ProcessedAt: time.Now().UTC(),
	}
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

// ListByProject returns the newest entries first, up to limit.
func (r *ActivityRepository) ListByProject(ctx context.Context, projectID string, limit int) ([]*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{"project_id": projectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []activityDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]*domain.Activity, len(docs))
	for i, d := range docs {
		out[i] = &domain.Activity{
			ProjectID: d.ProjectID,
			Action:    domain.ActivityAction(d.Action),
			ActorID:   d.ActorID,
			Timestamp: d.Timestamp,
		}
	}
	return out, nil
}
