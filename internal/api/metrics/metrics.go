// Package metrics defines and registers all custom Prometheus metrics for the
// project-system API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry via
// promauto at package init; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "projects"

// ── Activity metrics ──────────────────────────────────────────────────────────

// ActivitiesProcessedTotal counts activities that completed processing.
// Label:
//   - action: the recorded action ("created", "notes_updated")
var ActivitiesProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_processed_total",
		Help:      "Total number of project activities successfully recorded.",
	},
	[]string{"action"},
)

// ActivitiesErrorsTotal counts activities that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "unknown_action", "project_not_found", "insert_failed")
var ActivitiesErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_errors_total",
		Help:      "Total number of project activities that failed processing.",
	},
	[]string{"reason"},
)

// ActivitiesDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new activity, processed)
var ActivitiesDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ActivitiesQueueDepth tracks the current number of activities waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivitiesQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activities_queue_depth",
		Help:      "Current number of activities pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ActivityProcessingDuration measures how long a single activity takes to process end-to-end.
// Label:
//   - action: the recorded action
var ActivityProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "activity_processing_duration_seconds",
		Help:      "Duration of activity processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"action"},
)

// ── Project metrics ───────────────────────────────────────────────────────────

// ProjectsCreatedTotal counts newly created projects.
var ProjectsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created.",
	},
)

// ProjectsRejectedTotal counts create requests rejected by validation.
// Label:
//   - field: the offending field ("title", "description")
var ProjectsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_rejected_total",
		Help:      "Total number of project create requests rejected by validation, by field.",
	},
	[]string{"field"},
)
