package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openhire/job-board-api/internal/dtos"
	"github.com/openhire/job-board-api/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{JobService: jobs}
}

// CreateJob is the POST /jobs endpoint
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	job, err := h.JobService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// GetAllJobs is the GET /jobs endpoint
func (h *JobHandler) GetAllJobs(c *gin.Context) {
	jobs, err := h.JobService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJobByID is the GET /jobs/:id endpoint
func (h *JobHandler) GetJobByID(c *gin.Context) {
	job, err := h.JobService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// UpdateJob is the PUT /jobs/:id endpoint; only fields present in the body
// are validated and merged.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req dtos.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	job, err := h.JobService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// DeleteJob is the DELETE /jobs/:id endpoint
func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.JobService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// DeleteAllJobs is the DELETE /jobs endpoint
func (h *JobHandler) DeleteAllJobs(c *gin.Context) {
	count, err := h.JobService.DeleteAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "All jobs deleted successfully",
		"deletedCount": count,
	})
}
