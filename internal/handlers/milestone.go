package handlers

import (
	"errors"
	"net/http"

	"github.com/fieldtrack/fieldtrack-api/internal/dto"
	apierrors "github.com/fieldtrack/fieldtrack-api/internal/errors"
	"github.com/fieldtrack/fieldtrack-api/internal/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MilestoneHandler serves the read-only milestone catalog.
type MilestoneHandler struct {
	milestoneRepo repository.MilestoneRepository
}

// NewMilestoneHandler creates a new MilestoneHandler.
func NewMilestoneHandler(milestoneRepo repository.MilestoneRepository) *MilestoneHandler {
	return &MilestoneHandler{
		milestoneRepo: milestoneRepo,
	}
}

// ListMilestones returns the whole catalog ordered by name.
func (h *MilestoneHandler) ListMilestones(c *gin.Context) {
	milestones, err := h.milestoneRepo.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch milestones")
		return
	}

	items := make([]dto.MilestoneDTO, len(milestones))
	for i, m := range milestones {
		items[i] = dto.ToMilestoneDTO(m)
	}
	c.JSON(http.StatusOK, gin.H{"milestones": items})
}

// GetMilestone returns a single catalog entry by ID.
func (h *MilestoneHandler) GetMilestone(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	milestone, err := h.milestoneRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Milestone not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch milestone")
		return
	}

	c.JSON(http.StatusOK, dto.ToMilestoneDTO(*milestone))
}
