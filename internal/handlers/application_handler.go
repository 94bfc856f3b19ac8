package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openhire/job-board-api/internal/auth"
	"github.com/openhire/job-board-api/internal/services"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: applications}
}

// ApplyJob is the POST /jobs/:id/apply endpoint
func (h *ApplicationHandler) ApplyJob(c *gin.Context) {
	app, err := h.ApplicationService.Apply(c.Request.Context(), c.Param("id"), auth.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// GetAllApplications is the GET /applications endpoint for the current user
func (h *ApplicationHandler) GetAllApplications(c *gin.Context) {
	apps, err := h.ApplicationService.ListForApplicant(c.Request.Context(), auth.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if len(apps) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "no applications were found"})
		return
	}
	c.JSON(http.StatusOK, apps)
}
