package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openhire/job-board-api/internal/models"
)

// MemoryStore backs the repository interfaces with in-process maps. It mirrors
// the database behavior the services depend on: ids assigned on create,
// timestamps maintained, and duplicate (job, applicant) inserts rejected with
// gorm.ErrDuplicatedKey. Used by tests and for dependency-free local runs.
type MemoryStore struct {
	mu           sync.RWMutex
	jobs         map[string]models.Job
	users        map[string]models.User
	resumes      map[string]models.Resume
	applications map[string]models.Application
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		jobs:         make(map[string]models.Job),
		users:        make(map[string]models.User),
		resumes:      make(map[string]models.Resume),
		applications: make(map[string]models.Application),
	}
}

func (s *MemoryStore) Jobs() JobRepository                 { return &memoryJobRepository{s} }
func (s *MemoryStore) Users() UserRepository               { return &memoryUserRepository{s} }
func (s *MemoryStore) Resumes() ResumeRepository           { return &memoryResumeRepository{s} }
func (s *MemoryStore) Applications() ApplicationRepository { return &memoryApplicationRepository{s} }

type memoryJobRepository struct {
	store *MemoryStore
}

func (r *memoryJobRepository) Create(ctx context.Context, job *models.Job) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Status == "" {
		job.Status = models.JobStatusOpen
	}
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	r.store.jobs[job.ID] = *job
	return nil
}

func (r *memoryJobRepository) FindByID(ctx context.Context, id string) (*models.Job, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	job, ok := r.store.jobs[id]
	if !ok {
		return nil, nil
	}
	return &job, nil
}

func (r *memoryJobRepository) FindAll(ctx context.Context) ([]models.Job, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	jobs := make([]models.Job, 0, len(r.store.jobs))
	for _, job := range r.store.jobs {
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func (r *memoryJobRepository) Update(ctx context.Context, job *models.Job) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	job.UpdatedAt = time.Now()
	r.store.jobs[job.ID] = *job
	return nil
}

func (r *memoryJobRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.jobs, id)
	return nil
}

func (r *memoryJobRepository) DeleteAll(ctx context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	count := int64(len(r.store.jobs))
	r.store.jobs = make(map[string]models.Job)
	return count, nil
}

type memoryUserRepository struct {
	store *MemoryStore
}

func (r *memoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.store.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	user, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

type memoryResumeRepository struct {
	store *MemoryStore
}

func (r *memoryResumeRepository) Create(ctx context.Context, resume *models.Resume) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if resume.ID == "" {
		resume.ID = uuid.NewString()
	}
	now := time.Now()
	resume.CreatedAt = now
	resume.UpdatedAt = now
	r.store.resumes[resume.ID] = *resume
	return nil
}

func (r *memoryResumeRepository) FindByUser(ctx context.Context, userID string) (*models.Resume, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, resume := range r.store.resumes {
		if resume.UserID == userID {
			return &resume, nil
		}
	}
	return nil, nil
}

type memoryApplicationRepository struct {
	store *MemoryStore
}

func (r *memoryApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.applications {
		if existing.JobID == app.JobID && existing.ApplicantID == app.ApplicantID {
			return gorm.ErrDuplicatedKey
		}
	}
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	r.store.applications[app.ID] = *app
	return nil
}

func (r *memoryApplicationRepository) FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*models.Application, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, app := range r.store.applications {
		if app.JobID == jobID && app.ApplicantID == applicantID {
			return &app, nil
		}
	}
	return nil, nil
}

func (r *memoryApplicationRepository) FindByApplicant(ctx context.Context, applicantID string) ([]models.Application, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	apps := make([]models.Application, 0)
	for _, app := range r.store.applications {
		if app.ApplicantID == applicantID {
			apps = append(apps, app)
		}
	}
	return apps, nil
}
