package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/dto"
	apierrors "github.com/yukikurage/taskboard-api/internal/errors"
	"github.com/yukikurage/taskboard-api/internal/services"
	"github.com/yukikurage/taskboard-api/internal/utils"
)

type ActivityHandler struct {
	taskService *services.TaskService
}

func NewActivityHandler(taskService *services.TaskService) *ActivityHandler {
	return &ActivityHandler{
		taskService: taskService,
	}
}

// ListActivity returns the newest activity entries, honoring ?limit=
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	entries, err := h.taskService.RecentActivity(utils.GetActivityLimit(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityDTOs(entries))
}

// LogActivity records an entry posted by another system
func (h *ActivityHandler) LogActivity(c *gin.Context) {
	var req dto.ExternalActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := h.taskService.LogExternalActivity(req.Source, req.Details)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToActivityDTO(*entry))
}

// GetStats returns dashboard counters. ?type=activity returns the recent
// activity feed instead, matching the dashboard's combined endpoint.
func (h *ActivityHandler) GetStats(c *gin.Context) {
	if c.Query("type") == "activity" {
		h.ListActivity(c)
		return
	}

	s, err := h.taskService.Stats()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsDTO(s))
}
