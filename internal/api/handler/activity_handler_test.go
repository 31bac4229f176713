package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/birdboard/project-system/internal/core/domain"
	"github.com/birdboard/project-system/internal/core/ports"
)

type stubFeedRepo struct {
	entries []*domain.Activity
	gotID   string
	gotLim  int
}

func (r *stubFeedRepo) Insert(_ context.Context, _ *domain.Activity) error { return nil }

func (r *stubFeedRepo) ListByProject(_ context.Context, projectID string, limit int) ([]*domain.Activity, error) {
	r.gotID = projectID
	r.gotLim = limit
	return r.entries, nil
}

func TestActivityHandler_Feed(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	feed := &stubFeedRepo{entries: []*domain.Activity{
		{ProjectID: "PRJ-7A8B9C2D", Action: domain.ActivityNotesUpdated, ActorID: "u1", Timestamp: ts.Add(time.Minute)},
		{ProjectID: "PRJ-7A8B9C2D", Action: domain.ActivityCreated, ActorID: "u1", Timestamp: ts},
	}}
	projects := &stubProjectService{
		getFn: func(_ context.Context, in ports.GetProjectInput) (*domain.Project, error) {
			return sampleProject(), nil
		},
	}
	h := NewActivityHandler(projects, feed)

	c, rec := newProjectContext(t, http.MethodGet, "/v1/projects/PRJ-7A8B9C2D/activity", "")
	c.SetParamNames("id")
	c.SetParamValues("PRJ-7A8B9C2D")

	if err := h.Feed(c); err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if feed.gotID != "PRJ-7A8B9C2D" || feed.gotLim != feedLimit {
		t.Errorf("repo called with %q/%d", feed.gotID, feed.gotLim)
	}

	var got activityFeedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got.Data) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got.Data))
	}
	if got.Data[0].Action != string(domain.ActivityNotesUpdated) {
		t.Errorf("newest entry must come first, got %+v", got.Data)
	}
}

func TestActivityHandler_Feed_PolicyGuardsAccess(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"foreign project", domain.ErrForbidden},
		{"missing project", domain.ErrProjectNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			feed := &stubFeedRepo{}
			projects := &stubProjectService{
				getFn: func(_ context.Context, _ ports.GetProjectInput) (*domain.Project, error) {
					return nil, tc.err
				},
			}
			h := NewActivityHandler(projects, feed)

			c, _ := newProjectContext(t, http.MethodGet, "/v1/projects/PRJ-7A8B9C2D/activity", "")
			c.SetParamNames("id")
			c.SetParamValues("PRJ-7A8B9C2D")

			if err := h.Feed(c); !errors.Is(err, tc.err) {
				t.Errorf("expected %v surfaced, got %v", tc.err, err)
			}
			if feed.gotID != "" {
				t.Error("the feed must not be read when access is denied")
			}
		})
	}
}
