package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/openhire/job-board-api/internal/apperrors"
	"github.com/openhire/job-board-api/internal/dtos"
	"github.com/openhire/job-board-api/internal/models"
	"github.com/openhire/job-board-api/internal/repository"
)

type JobService struct {
	jobs repository.JobRepository
}

func NewJobService(jobs repository.JobRepository) *JobService {
	return &JobService{jobs: jobs}
}

func (s *JobService) Create(ctx context.Context, req *dtos.CreateJobRequest) (*models.Job, error) {
	if msg := req.Validate(); msg != "" {
		return nil, apperrors.InvalidInput(msg)
	}

	job := req.ToModel()
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, apperrors.Internal("Sorry! Job is not created", err)
	}

	logrus.WithFields(logrus.Fields{"job_id": job.ID, "title": job.Title}).Info("job created")
	return job, nil
}

func (s *JobService) GetByID(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("There is no job with this id", err)
	}
	if job == nil {
		return nil, apperrors.NotFound("Job not found")
	}
	return job, nil
}

func (s *JobService) List(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobs.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("There are no Jobs at this time", err)
	}
	return jobs, nil
}

// Update merges the provided fields onto the stored job; absent fields keep
// their stored values.
func (s *JobService) Update(ctx context.Context, id string, req *dtos.UpdateJobRequest) (*models.Job, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("An error occurred while updating the job", err)
	}
	if job == nil {
		return nil, apperrors.NotFound("Job not found")
	}

	if msg := req.Validate(); msg != "" {
		return nil, apperrors.InvalidInput(msg)
	}

	req.Merge(job)
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, apperrors.Internal("An error occurred while updating the job", err)
	}

	logrus.WithField("job_id", job.ID).Info("job updated")
	return job, nil
}

func (s *JobService) Delete(ctx context.Context, id string) error {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return apperrors.Internal("Job does not exist!", err)
	}
	if job == nil {
		return apperrors.NotFound("Job not found")
	}

	if err := s.jobs.Delete(ctx, id); err != nil {
		return apperrors.Internal("Job does not exist!", err)
	}

	logrus.WithField("job_id", id).Info("job deleted")
	return nil
}

// DeleteAll removes every job and reports how many were removed; an empty
// store is a success with count zero.
func (s *JobService) DeleteAll(ctx context.Context) (int64, error) {
	count, err := s.jobs.DeleteAll(ctx)
	if err != nil {
		return 0, apperrors.Internal("An error occurred while deleting all jobs", err)
	}

	logrus.WithField("deleted_count", count).Info("all jobs deleted")
	return count, nil
}
