package handler

import (
	"github.com/birdboard/project-system/internal/core/domain"
	"github.com/birdboard/project-system/internal/core/ports"
)

func projectPath(id string) string {
	return "/v1/projects/" + id
}

func toProjectLinks(id string) projectLinks {
	return projectLinks{
		Self:     projectPath(id),
		Activity: projectPath(id) + "/activity",
	}
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Title:       p.Title,
		Description: p.Description,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.UTC(),
		Links:       toProjectLinks(p.ID),
	}
}

func toListResponse(r *ports.ListProjectsResult) listProjectsResponse {
	items := make([]projectSummaryResponse, len(r.Items))
	for i, p := range r.Items {
		items[i] = projectSummaryResponse{
			ID:        p.ID,
			Title:     p.Title,
			CreatedAt: p.CreatedAt.UTC(),
			UpdatedAt: p.UpdatedAt.UTC(),
			Links:     toProjectLinks(p.ID),
		}
	}
	return listProjectsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}

func toActivityFeedResponse(projectID string, entries []*domain.Activity) activityFeedResponse {
	items := make([]activityEntryResponse, len(entries))
	for i, a := range entries {
		items[i] = activityEntryResponse{
			Action:    string(a.Action),
			ActorID:   a.ActorID,
			Timestamp: a.Timestamp.UTC(),
		}
	}
	return activityFeedResponse{ProjectID: projectID, Data: items}
}
