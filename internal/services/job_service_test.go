package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openhire/job-board-api/internal/apperrors"
	"github.com/openhire/job-board-api/internal/dtos"
	"github.com/openhire/job-board-api/internal/models"
	"github.com/openhire/job-board-api/internal/repository"
)

func strPtr(s string) *string { return &s }

func numPtr(n float64) *float64 { return &n }

func validCreateRequest() *dtos.CreateJobRequest {
	return &dtos.CreateJobRequest{
		Title:       strPtr("Engineer"),
		Description: strPtr("Build things"),
		SalaryRange: &dtos.SalaryRangeInput{Min: numPtr(50000), Max: numPtr(90000)},
		Location:    strPtr("Remote"),
	}
}

func newJobService() (*JobService, *repository.MemoryStore) {
	store := repository.NewMemoryStore()
	return NewJobService(store.Jobs()), store
}

func TestCreateJobDefaultsToOpen(t *testing.T) {
	service, _ := newJobService()

	job, err := service.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.NotEmpty(t, job.ID)
	require.Equal(t, models.JobStatusOpen, job.Status)
	require.Equal(t, 50000.0, job.SalaryRange.Min)
	require.Equal(t, 90000.0, job.SalaryRange.Max)
}

func TestCreateJobValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dtos.CreateJobRequest)
		message string
	}{
		{
			name:    "missing title",
			mutate:  func(r *dtos.CreateJobRequest) { r.Title = nil },
			message: "Please provide Title, Description, Salary Range, and Location",
		},
		{
			name:    "missing salary range",
			mutate:  func(r *dtos.CreateJobRequest) { r.SalaryRange = nil },
			message: "Please provide Title, Description, Salary Range, and Location",
		},
		{
			name:    "missing max",
			mutate:  func(r *dtos.CreateJobRequest) { r.SalaryRange.Max = nil },
			message: "Salary range must include both min and max values",
		},
		{
			name:    "negative min",
			mutate:  func(r *dtos.CreateJobRequest) { r.SalaryRange.Min = numPtr(-1) },
			message: "Salary range values cannot be negative",
		},
		{
			name: "min above max",
			mutate: func(r *dtos.CreateJobRequest) {
				r.SalaryRange.Min = numPtr(90000)
				r.SalaryRange.Max = numPtr(50000)
			},
			message: "Minimum salary must be less than maximum salary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newJobService()
			req := validCreateRequest()
			tt.mutate(req)

			_, err := service.Create(context.Background(), req)
			require.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
			require.EqualError(t, err, tt.message)
		})
	}
}

func TestCreateJobEqualMinMaxAccepted(t *testing.T) {
	service, _ := newJobService()

	req := validCreateRequest()
	req.SalaryRange.Min = numPtr(70000)
	req.SalaryRange.Max = numPtr(70000)

	job, err := service.Create(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, job.SalaryRange.Min, job.SalaryRange.Max)
}

func TestGetJobByID(t *testing.T) {
	service, _ := newJobService()
	ctx := context.Background()

	created, err := service.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	found, err := service.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, found.ID)

	_, err = service.GetByID(ctx, "missing")
	require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestUpdateJobMergesProvidedFields(t *testing.T) {
	service, _ := newJobService()
	ctx := context.Background()

	created, err := service.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	updated, err := service.Update(ctx, created.ID, &dtos.UpdateJobRequest{
		Title: strPtr("Senior Engineer"),
	})
	require.NoError(t, err)
	require.Equal(t, "Senior Engineer", updated.Title)
	// untouched fields keep their stored values
	require.Equal(t, "Build things", updated.Description)
	require.Equal(t, 50000.0, updated.SalaryRange.Min)
	require.Equal(t, models.JobStatusOpen, updated.Status)
}

func TestUpdateJobValidatesProvidedSalaryRange(t *testing.T) {
	service, _ := newJobService()
	ctx := context.Background()

	created, err := service.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	_, err = service.Update(ctx, created.ID, &dtos.UpdateJobRequest{
		SalaryRange: &dtos.SalaryRangeInput{Min: numPtr(100)},
	})
	require.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
	require.EqualError(t, err, "Salary range must include both min and max values")

	_, err = service.Update(ctx, created.ID, &dtos.UpdateJobRequest{
		SalaryRange: &dtos.SalaryRangeInput{Min: numPtr(200), Max: numPtr(100)},
	})
	require.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
}

func TestUpdateUnknownJobNotFound(t *testing.T) {
	service, _ := newJobService()

	_, err := service.Update(context.Background(), "missing", &dtos.UpdateJobRequest{Title: strPtr("x")})
	require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestDeleteJob(t *testing.T) {
	service, _ := newJobService()
	ctx := context.Background()

	created, err := service.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID))
	_, err = service.GetByID(ctx, created.ID)
	require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	err = service.Delete(ctx, created.ID)
	require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestDeleteAllJobsReportsCount(t *testing.T) {
	service, _ := newJobService()
	ctx := context.Background()

	count, err := service.DeleteAll(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)

	_, err = service.Create(ctx, validCreateRequest())
	require.NoError(t, err)
	_, err = service.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	count, err = service.DeleteAll(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	jobs, err := service.List(ctx)
	require.NoError(t, err)
	require.Empty(t, jobs)
}
