package handler

import "time"

type createProjectRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Notes       string `json:"notes,omitempty"`
}

type updateProjectRequest struct {
	Notes string `json:"notes"`
}

type projectLinks struct {
	Self     string `json:"self"`
	Activity string `json:"activity"`
}

// projectResponse is the full project view returned by show/store/update.
// Response-only types are owned by the transport layer so the JSON contract
// is not coupled to internal domain changes.
type projectResponse struct {
	ID          string       `json:"id"`
	OwnerID     string       `json:"owner_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Notes       string       `json:"notes,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Links       projectLinks `json:"_links"`
}

// projectSummaryResponse is the lightweight item used in list responses.
type projectSummaryResponse struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Links     projectLinks `json:"_links"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listProjectsResponse struct {
	Data       []projectSummaryResponse `json:"data"`
	Pagination paginationResponse       `json:"pagination"`
}

type activityEntryResponse struct {
	Action    string    `json:"action"`
	ActorID   string    `json:"actor_id"`
	Timestamp time.Time `json:"timestamp"`
}

type activityFeedResponse struct {
	ProjectID string                  `json:"project_id"`
	Data      []activityEntryResponse `json:"data"`
}

// errorResponse mirrors the envelope produced by the central error handler;
// declared here so the swagger annotations can reference it.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
