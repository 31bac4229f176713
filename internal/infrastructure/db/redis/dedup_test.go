package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestDedup(t *testing.T) (*DedupChecker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewDedupChecker(client), mr
}

func TestDedupChecker_MarkAndCheck(t *testing.T) {
	d, _ := newTestDedup(t)
	ctx := context.Background()
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	dup, err := d.IsDuplicate(ctx, "PRJ-7A8B9C2D", "created", ts)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if dup {
		t.Error("fresh activity must not be a duplicate")
	}

	if err := d.Mark(ctx, "PRJ-7A8B9C2D", "created", ts); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	dup, err = d.IsDuplicate(ctx, "PRJ-7A8B9C2D", "created", ts)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !dup {
		t.Error("marked activity must be reported as duplicate")
	}
}

func TestDedupChecker_KeysAreScoped(t *testing.T) {
	d, _ := newTestDedup(t)
	ctx := context.Background()
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := d.Mark(ctx, "PRJ-7A8B9C2D", "created", ts); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	cases := []struct {
		name            string
		project, action string
		ts              time.Time
	}{
		{"other project", "PRJ-FFFF0000", "created", ts},
		{"other action", "PRJ-7A8B9C2D", "notes_updated", ts},
		{"other timestamp", "PRJ-7A8B9C2D", "created", ts.Add(time.Second)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dup, err := d.IsDuplicate(ctx, tc.project, tc.action, tc.ts)
			if err != nil {
				t.Fatalf("check failed: %v", err)
			}
			if dup {
				t.Error("distinct activity must not collide with the marked key")
			}
		})
	}
}

func TestDedupChecker_MarkExpires(t *testing.T) {
	d, mr := newTestDedup(t)
	ctx := context.Background()
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := d.Mark(ctx, "PRJ-7A8B9C2D", "created", ts); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	mr.FastForward(dedupTTL + time.Second)

	dup, err := d.IsDuplicate(ctx, "PRJ-7A8B9C2D", "created", ts)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if dup {
		t.Error("dedup key must expire after its TTL")
	}
}
