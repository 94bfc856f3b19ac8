package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/openhire/job-board-api/internal/models"
)

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create relies on the store's composite unique index: a concurrent duplicate
// submission surfaces as gorm.ErrDuplicatedKey for the caller to map.
func (r *applicationRepository) Create(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *applicationRepository) FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*models.Application, error) {
	var app models.Application
	result := r.db.WithContext(ctx).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		First(&app)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &app, nil
}

func (r *applicationRepository) FindByApplicant(ctx context.Context, applicantID string) ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.WithContext(ctx).Where("applicant_id = ?", applicantID).Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}
