package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/birdboard/project-system/internal/core/ports"
)

const feedLimit = 50

// ActivityHandler serves the per-project activity feed.
type ActivityHandler struct {
	projects ports.ProjectService
	feed     ports.ActivityRepository
}

func NewActivityHandler(projects ports.ProjectService, feed ports.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{projects: projects, feed: feed}
}

// Feed handles GET /v1/projects/:id/activity.
//
// The project is fetched through the service first so the same policy
// decision (404 vs 403) guards the feed as guards the detail view.
//
// @Summary      Get a project's activity feed
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  activityFeedResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/projects/{id}/activity [get]
func (h *ActivityHandler) Feed(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	projectID := c.Param("id")
	if _, err := h.projects.GetProject(c.Request().Context(), ports.GetProjectInput{
		User:      user,
		ProjectID: projectID,
	}); err != nil {
		return err
	}

	entries, err := h.feed.ListByProject(c.Request().Context(), projectID, feedLimit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toActivityFeedResponse(projectID, entries))
}
