package handlers

import (
	"net/http"

	apierrors "github.com/fieldtrack/fieldtrack-api/internal/errors"
	"github.com/fieldtrack/fieldtrack-api/internal/location"
	"github.com/gin-gonic/gin"
)

// LocationHandler serves the static location directory used by task forms.
type LocationHandler struct {
	directory location.Directory
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(directory location.Directory) *LocationHandler {
	return &LocationHandler{
		directory: directory,
	}
}

// ListStates returns every state in the directory.
func (h *LocationHandler) ListStates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"states": h.directory.States()})
}

// ListBusinessAreas returns the business areas of one state.
func (h *LocationHandler) ListBusinessAreas(c *gin.Context) {
	state := c.Query("state")
	if state == "" {
		apierrors.BadRequest(c, "state parameter is required")
		return
	}

	areas, ok := h.directory.BusinessAreas(state)
	if !ok {
		// Unknown parent: not-found status, but still an empty collection so
		// dropdown clients never have to special-case the body shape.
		c.JSON(http.StatusNotFound, gin.H{"business_areas": []string{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"business_areas": areas})
}

// ListDistricts returns the districts of one business area.
func (h *LocationHandler) ListDistricts(c *gin.Context) {
	state := c.Query("state")
	area := c.Query("business_area")
	if state == "" || area == "" {
		apierrors.BadRequest(c, "state and business_area parameters are required")
		return
	}

	districts, ok := h.directory.Districts(state, area)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"districts": []string{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"districts": districts})
}

// ListBlocks returns the blocks of one district. The district must belong to
// the named business area, not merely exist somewhere in the state.
func (h *LocationHandler) ListBlocks(c *gin.Context) {
	state := c.Query("state")
	area := c.Query("business_area")
	district := c.Query("district")
	if state == "" || area == "" || district == "" {
		apierrors.BadRequest(c, "state, business_area and district parameters are required")
		return
	}

	blocks, ok := h.directory.Blocks(state, area, district)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"blocks": []string{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}
