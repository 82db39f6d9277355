package usecase_test

import (
	"context"
	"testing"

	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestJobListFeedDispatch(t *testing.T) {
	t.Run("Jobseeker gets the swipe feed", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("FetchForJobseeker", mock.Anything, int64(5)).
			Return([]domain.Job{{ID: 1, Title: "Backend Engineer"}}, nil)

		jobs, err := uc.ListFeed(jobseekerCtx(5))
		assert.NoError(t, err)
		assert.Len(t, jobs, 1)
		jobRepo.AssertNotCalled(t, "FetchByRecruiter", mock.Anything, mock.Anything)
	})

	t.Run("Recruiter gets only their own postings", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("FetchByRecruiter", mock.Anything, int64(10)).
			Return([]domain.Job{{ID: 2, RecruiterID: 10}}, nil)

		jobs, err := uc.ListFeed(recruiterCtx(10))
		assert.NoError(t, err)
		assert.Len(t, jobs, 1)
		jobRepo.AssertNotCalled(t, "FetchForJobseeker", mock.Anything, mock.Anything)
	})

	t.Run("Unknown role gets an empty feed", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		ctx := ctxWithProfile(&domain.Profile{ID: 7, Role: domain.Role("moderator")})
		jobs, err := uc.ListFeed(ctx)
		assert.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("Missing profile fails unauthenticated", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		_, err := uc.ListFeed(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not authenticated")
	})
}

func TestJobCreate(t *testing.T) {
	t.Run("Should fail when caller is a jobseeker", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		err := uc.CreateJob(jobseekerCtx(5), &domain.Job{Title: "Backend Engineer"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only recruiters")
	})

	t.Run("Should require a title", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		err := uc.CreateJob(recruiterCtx(10), &domain.Job{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Title is required")
	})

	t.Run("Should reject an inverted experience range", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		minExp, maxExp := 5, 2
		err := uc.CreateJob(recruiterCtx(10), &domain.Job{
			Title:              "Backend Engineer",
			MinExperienceYears: &minExp,
			MaxExperienceYears: &maxExp,
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("Should force RecruiterID from the caller's profile", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil).Run(func(args mock.Arguments) {
			j := args.Get(1).(*domain.Job)
			assert.Equal(t, int64(10), j.RecruiterID)
		})

		err := uc.CreateJob(recruiterCtx(10), &domain.Job{Title: "Backend Engineer", RecruiterID: 999})
		assert.NoError(t, err)
		jobRepo.AssertExpectations(t)
	})
}

func TestJobOwnership(t *testing.T) {
	t.Run("Update on another recruiter's job is forbidden", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Job{ID: 1, RecruiterID: 77, Title: "Taken"}, nil)

		err := uc.UpdateJob(recruiterCtx(10), &domain.Job{ID: 1, Title: "Hijacked"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own jobs")
		jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Delete on another recruiter's job is forbidden", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Job{ID: 1, RecruiterID: 77}, nil)

		err := uc.DeleteJob(recruiterCtx(10), 1)
		assert.Error(t, err)
		jobRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Jobseeker cannot delete jobs at all", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		err := uc.DeleteJob(jobseekerCtx(5), 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only recruiters")
	})

	t.Run("Owner can update, ownership is preserved", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Job{ID: 1, RecruiterID: 10, Title: "Old Title"}, nil)
		jobRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil).Run(func(args mock.Arguments) {
			j := args.Get(1).(*domain.Job)
			assert.Equal(t, int64(10), j.RecruiterID)
			assert.Equal(t, "New Title", j.Title)
		})

		err := uc.UpdateJob(recruiterCtx(10), &domain.Job{ID: 1, Title: "New Title"})
		assert.NoError(t, err)
		jobRepo.AssertExpectations(t)
	})
}
