package repository

import (
	"context"

	"github.com/openhire/job-board-api/internal/models"
)

// Lookups return (nil, nil) when no record matches; errors are reserved for
// store failures.

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	FindByID(ctx context.Context, id string) (*models.Job, error)
	FindAll(ctx context.Context) ([]models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *models.Resume) error
	FindByUser(ctx context.Context, userID string) (*models.Resume, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*models.Application, error)
	FindByApplicant(ctx context.Context, applicantID string) ([]models.Application, error)
}
