package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/openhire/job-board-api/internal/apperrors"
	"github.com/openhire/job-board-api/internal/models"
	"github.com/openhire/job-board-api/internal/repository"
)

type ApplicationService struct {
	jobs         repository.JobRepository
	users        repository.UserRepository
	resumes      repository.ResumeRepository
	applications repository.ApplicationRepository
}

func NewApplicationService(
	jobs repository.JobRepository,
	users repository.UserRepository,
	resumes repository.ResumeRepository,
	applications repository.ApplicationRepository,
) *ApplicationService {
	return &ApplicationService{
		jobs:         jobs,
		users:        users,
		resumes:      resumes,
		applications: applications,
	}
}

// Apply runs the submission gates in a fixed order so the caller always gets
// the most specific rejection: existence first, then authorization, then
// business state. Exactly one application is inserted, and only when every
// gate passes.
func (s *ApplicationService) Apply(ctx context.Context, jobID, applicantID string) (*models.Application, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, apperrors.Internal("internal server error", err)
	}
	if job == nil {
		return nil, apperrors.NotFound("job does not exist")
	}

	if applicantID == "" {
		return nil, apperrors.Unauthenticated("token is invalid")
	}

	user, err := s.users.FindByID(ctx, applicantID)
	if err != nil {
		return nil, apperrors.Internal("internal server error", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user does not exist")
	}
	if user.Role != models.RoleJobSeeker {
		return nil, apperrors.Forbidden("user is not a job-seeker")
	}

	existing, err := s.applications.FindByJobAndApplicant(ctx, jobID, applicantID)
	if err != nil {
		return nil, apperrors.Internal("internal server error", err)
	}
	if existing != nil {
		return nil, apperrors.Forbidden("application already exists")
	}

	resume, err := s.resumes.FindByUser(ctx, applicantID)
	if err != nil {
		return nil, apperrors.Internal("internal server error", err)
	}
	if resume == nil {
		return nil, apperrors.NotFound("user must have a resume to apply")
	}

	if job.Status == models.JobStatusClosed {
		return nil, apperrors.Forbidden("job is not open")
	}

	app := &models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		ResumeID:    resume.ID,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		// A concurrent duplicate slips past the read check above; the store's
		// unique index catches it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Forbidden("application already exists")
		}
		return nil, apperrors.Internal("internal server error", err)
	}

	logrus.WithFields(logrus.Fields{
		"application_id": app.ID,
		"job_id":         jobID,
		"applicant_id":   applicantID,
	}).Info("application submitted")
	return app, nil
}

// ListForApplicant returns every application for one applicant; an empty
// result is a success.
func (s *ApplicationService) ListForApplicant(ctx context.Context, applicantID string) ([]models.Application, error) {
	if applicantID == "" {
		return nil, apperrors.Unauthenticated("token is invalid")
	}

	user, err := s.users.FindByID(ctx, applicantID)
	if err != nil {
		return nil, apperrors.Internal("internal server error", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user does not exist")
	}
	if user.Role != models.RoleJobSeeker {
		return nil, apperrors.Forbidden("user is not a job-seeker")
	}

	apps, err := s.applications.FindByApplicant(ctx, applicantID)
	if err != nil {
		return nil, apperrors.Internal("internal server error", err)
	}
	return apps, nil
}
