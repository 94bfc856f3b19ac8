package dtos

import (
	"github.com/openhire/job-board-api/internal/models"
)

// SalaryRangeInput uses pointers so a missing min/max is distinguishable from
// an explicit zero.
type SalaryRangeInput struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type CreateJobRequest struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	SalaryRange *SalaryRangeInput `json:"salary_range"`
	Location    *string           `json:"location"`
}

// Validate runs the creation checks in order and returns the message of the
// first failing one.
func (r *CreateJobRequest) Validate() string {
	if r.Title == nil || *r.Title == "" ||
		r.Description == nil || *r.Description == "" ||
		r.SalaryRange == nil ||
		r.Location == nil || *r.Location == "" {
		return "Please provide Title, Description, Salary Range, and Location"
	}
	return validateSalaryRange(r.SalaryRange)
}

// ToModel builds the Job to persist. Status is left empty so the store
// defaults it to open.
func (r *CreateJobRequest) ToModel() *models.Job {
	return &models.Job{
		Title:       *r.Title,
		Description: *r.Description,
		SalaryRange: models.SalaryRange{Min: *r.SalaryRange.Min, Max: *r.SalaryRange.Max},
		Location:    *r.Location,
		Status:      models.JobStatusOpen,
	}
}

// UpdateJobRequest carries a partial update; only fields present in the
// request are validated and merged.
type UpdateJobRequest struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	SalaryRange *SalaryRangeInput `json:"salary_range"`
	Location    *string           `json:"location"`
}

// Validate re-runs the creation rules, but only for provided fields.
func (r *UpdateJobRequest) Validate() string {
	if r.SalaryRange != nil {
		return validateSalaryRange(r.SalaryRange)
	}
	return ""
}

// Merge copies the provided fields onto the stored job.
func (r *UpdateJobRequest) Merge(job *models.Job) {
	if r.Title != nil && *r.Title != "" {
		job.Title = *r.Title
	}
	if r.Description != nil && *r.Description != "" {
		job.Description = *r.Description
	}
	if r.Location != nil && *r.Location != "" {
		job.Location = *r.Location
	}
	if r.SalaryRange != nil {
		job.SalaryRange = models.SalaryRange{Min: *r.SalaryRange.Min, Max: *r.SalaryRange.Max}
	}
}

func validateSalaryRange(sr *SalaryRangeInput) string {
	if sr.Min == nil || sr.Max == nil {
		return "Salary range must include both min and max values"
	}
	if *sr.Min < 0 || *sr.Max < 0 {
		return "Salary range values cannot be negative"
	}
	if *sr.Min > *sr.Max {
		return "Minimum salary must be less than maximum salary"
	}
	return ""
}
