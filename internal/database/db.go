package database

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/openhire/job-board-api/internal/config"
	"github.com/openhire/job-board-api/internal/models"
)

// Connect opens the postgres connection and runs migrations. TranslateError
// is on so unique-index violations come back as gorm.ErrDuplicatedKey.
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	logrus.Info("database connection established, running migrations")
	if err := db.AutoMigrate(
		&models.Job{},
		&models.User{},
		&models.Resume{},
		&models.Application{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

// Seed inserts the demo job-seeker matching the static identity, plus a
// resume for it, so a fresh instance can exercise the submission workflow.
// It does nothing when the user already exists.
func Seed(db *gorm.DB, demoUserID string) error {
	if demoUserID == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("id = ?", demoUserID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	user := models.User{
		ID:    demoUserID,
		Email: "seeker@example.com",
		Role:  models.RoleJobSeeker,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	resume := models.Resume{
		UserID:   user.ID,
		FileName: "resume.pdf",
	}
	if err := db.Create(&resume).Error; err != nil {
		return err
	}

	logrus.WithField("user_id", user.ID).Info("seeded demo job-seeker and resume")
	return nil
}
