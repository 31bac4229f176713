package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/birdboard/project-system/internal/core/domain"
	"github.com/birdboard/project-system/internal/core/ports"
)

type stubDedup struct {
	seen   map[string]bool
	dupErr error
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) key(projectID, action string, ts time.Time) string {
	return projectID + "|" + action + "|" + ts.UTC().Format(time.RFC3339)
}

func (d *stubDedup) IsDuplicate(_ context.Context, projectID, action string, ts time.Time) (bool, error) {
	if d.dupErr != nil {
		return false, d.dupErr
	}
	return d.seen[d.key(projectID, action, ts)], nil
}

func (d *stubDedup) Mark(_ context.Context, projectID, action string, ts time.Time) error {
	d.seen[d.key(projectID, action, ts)] = true
	return nil
}

type stubActivityRepo struct {
	inserted  []*domain.Activity
	insertErr error
}

func (r *stubActivityRepo) Insert(_ context.Context, a *domain.Activity) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *a
	r.inserted = append(r.inserted, &clone)
	return nil
}

func (r *stubActivityRepo) ListByProject(_ context.Context, projectID string, limit int) ([]*domain.Activity, error) {
	var out []*domain.Activity
	for i := len(r.inserted) - 1; i >= 0; i-- {
		if r.inserted[i].ProjectID != projectID {
			continue
		}
		clone := *r.inserted[i]
		out = append(out, &clone)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func activityInput(projectID string) ports.ActivityInput {
	return ports.ActivityInput{
		ProjectID: projectID,
		Action:    string(domain.ActivityCreated),
		ActorID:   "u1",
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestActivityService_Process(t *testing.T) {
	projects := newStubProjectRepo()
	seedProject(projects, "PRJ-AAAABBBB", "u1")
	feed := &stubActivityRepo{}
	svc := NewActivityService(projects, feed, newStubDedup(), discardLogger)

	if err := svc.Process(context.Background(), activityInput("PRJ-AAAABBBB")); err != nil {
		t.Fatalf("process failed: %v", err)
	}

	if len(feed.inserted) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(feed.inserted))
	}
	got := feed.inserted[0]
	if got.ProjectID != "PRJ-AAAABBBB" || got.Action != domain.ActivityCreated || got.ActorID != "u1" {
		t.Errorf("unexpected entry: %+v", got)
	}
}

func TestActivityService_Process_DuplicateSkipped(t *testing.T) {
	projects := newStubProjectRepo()
	seedProject(projects, "PRJ-AAAABBBB", "u1")
	feed := &stubActivityRepo{}
	svc := NewActivityService(projects, feed, newStubDedup(), discardLogger)

	in := activityInput("PRJ-AAAABBBB")
	if err := svc.Process(context.Background(), in); err != nil {
		t.Fatalf("first process failed: %v", err)
	}
	if err := svc.Process(context.Background(), in); err != nil {
		t.Fatalf("duplicate must be skipped without error, got: %v", err)
	}

	if len(feed.inserted) != 1 {
		t.Errorf("duplicate was written: %d entries", len(feed.inserted))
	}
}

func TestActivityService_Process_DedupErrorDoesNotBlock(t *testing.T) {
	projects := newStubProjectRepo()
	seedProject(projects, "PRJ-AAAABBBB", "u1")
	feed := &stubActivityRepo{}
	dedup := newStubDedup()
	dedup.dupErr = errors.New("redis down")
	svc := NewActivityService(projects, feed, dedup, discardLogger)

	if err := svc.Process(context.Background(), activityInput("PRJ-AAAABBBB")); err != nil {
		t.Fatalf("a dedup outage must not block processing, got: %v", err)
	}
	if len(feed.inserted) != 1 {
		t.Errorf("expected entry written despite dedup outage, got %d", len(feed.inserted))
	}
}

func TestActivityService_Process_UnknownAction(t *testing.T) {
	projects := newStubProjectRepo()
	seedProject(projects, "PRJ-AAAABBBB", "u1")
	feed := &stubActivityRepo{}
	svc := NewActivityService(projects, feed, newStubDedup(), discardLogger)

	in := activityInput("PRJ-AAAABBBB")
	in.Action = "deleted"
	if err := svc.Process(context.Background(), in); err == nil {
		t.Fatal("expected error for unknown action")
	}
	if len(feed.inserted) != 0 {
		t.Error("unknown action must not be written")
	}
}

func TestActivityService_Process_ProjectGone(t *testing.T) {
	projects := newStubProjectRepo()
	feed := &stubActivityRepo{}
	svc := NewActivityService(projects, feed, newStubDedup(), discardLogger)

	err := svc.Process(context.Background(), activityInput("PRJ-MISSING1"))
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
	if len(feed.inserted) != 0 {
		t.Error("nothing must be written for a missing project")
	}
}
