package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"

	RoleJobSeeker = "job-seeker"
	RoleEmployer  = "employer"
)

// SalaryRange is embedded into Job; stored as salary_min / salary_max columns.
type SalaryRange struct {
	Min float64 `gorm:"column:salary_min;not null" json:"min"`
	Max float64 `gorm:"column:salary_max;not null" json:"max"`
}

type Job struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string      `gorm:"not null" json:"title"`
	Description string      `gorm:"type:text;not null" json:"description"`
	SalaryRange SalaryRange `gorm:"embedded" json:"salary_range"`
	Location    string      `gorm:"not null" json:"location"`
	Status      string      `gorm:"default:'open'" json:"status"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Role  string `gorm:"size:32;not null" json:"role"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Resume gates application submission by its existence alone; content is never
// inspected here.
type Resume struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID   string `gorm:"size:36;index;not null" json:"user_id"`
	FileName string `json:"file_name"`
}

func (r *Resume) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Application links one user, one job, and one resume. The composite unique
// index enforces one application per (job, applicant) even when two
// submissions race past the service-level duplicate check.
type Application struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobID       string `gorm:"size:36;uniqueIndex:idx_applications_job_applicant;not null" json:"job"`
	ApplicantID string `gorm:"size:36;uniqueIndex:idx_applications_job_applicant;not null" json:"applicant"`
	ResumeID    string `gorm:"size:36;not null" json:"resume"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
