package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/openhire/job-board-api/internal/models"
)

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

func (r *resumeRepository) Create(ctx context.Context, resume *models.Resume) error {
	return r.db.WithContext(ctx).Create(resume).Error
}

func (r *resumeRepository) FindByUser(ctx context.Context, userID string) (*models.Resume, error) {
	var resume models.Resume
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&resume)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &resume, nil
}
