package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/openhire/job-board-api/internal/auth"
)

// RegisterRoutes wires every endpoint onto the router. Shared with the
// handler tests so they exercise the real routing table.
func RegisterRoutes(r *gin.Engine, resolver auth.Resolver, jobs *JobHandler, applications *ApplicationHandler) {
	r.Use(auth.Identity(resolver))

	r.GET("/health", HealthCheck)

	r.POST("/jobs", jobs.CreateJob)
	r.GET("/jobs", jobs.GetAllJobs)
	r.GET("/jobs/:id", jobs.GetJobByID)
	r.PUT("/jobs/:id", jobs.UpdateJob)
	r.DELETE("/jobs/:id", jobs.DeleteJob)
	r.DELETE("/jobs", jobs.DeleteAllJobs)

	r.POST("/jobs/:id/apply", applications.ApplyJob)
	r.GET("/applications", applications.GetAllApplications)
}
