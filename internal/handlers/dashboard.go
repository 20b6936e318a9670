package handlers

import (
	"net/http"

	apierrors "github.com/fieldtrack/fieldtrack-api/internal/errors"
	"github.com/fieldtrack/fieldtrack-api/internal/services"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregate reporting endpoints.
type DashboardHandler struct {
	taskService *services.TaskService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(taskService *services.TaskService) *DashboardHandler {
	return &DashboardHandler{
		taskService: taskService,
	}
}

// TaskSummary returns overall task counters and the per-state breakdown.
func (h *DashboardHandler) TaskSummary(c *gin.Context) {
	summary, err := h.taskService.Summary()
	if err != nil {
		apierrors.InternalError(c, "Failed to build task summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// MilestoneProgress returns per-milestone status totals. Every catalog
// milestone appears even when it has no tasks.
func (h *DashboardHandler) MilestoneProgress(c *gin.Context) {
	report, err := h.taskService.MilestoneProgressReport()
	if err != nil {
		apierrors.InternalError(c, "Failed to build milestone progress")
		return
	}

	c.JSON(http.StatusOK, gin.H{"milestones": report})
}
