package usecase_test

import (
	"context"
	"testing"

	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMatchListVisibility(t *testing.T) {
	t.Run("Jobseeker only sees active accepted matches", func(t *testing.T) {
		matchRepo := new(MockMatchRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewMatchUsecase(matchRepo, jobRepo)

		matchRepo.On("FetchAcceptedForJobseeker", mock.Anything, int64(5)).
			Return([]domain.Match{{ID: 1, Status: domain.MatchStatusAccepted, IsActive: true}}, nil)

		matches, err := uc.List(jobseekerCtx(5))
		assert.NoError(t, err)
		assert.Len(t, matches, 1)
		matchRepo.AssertNotCalled(t, "FetchActiveForRecruiter", mock.Anything, mock.Anything)
	})

	t.Run("Recruiter sees all active matches including pending", func(t *testing.T) {
		matchRepo := new(MockMatchRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewMatchUsecase(matchRepo, jobRepo)

		matchRepo.On("FetchActiveForRecruiter", mock.Anything, int64(10)).
			Return([]domain.Match{
				{ID: 1, Status: domain.MatchStatusPending, IsActive: true},
				{ID: 2, Status: domain.MatchStatusAccepted, IsActive: true},
			}, nil)

		matches, err := uc.List(recruiterCtx(10))
		assert.NoError(t, err)
		assert.Len(t, matches, 2)
	})

	t.Run("Unknown role gets an empty list, not an error", func(t *testing.T) {
		matchRepo := new(MockMatchRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewMatchUsecase(matchRepo, jobRepo)

		ctx := ctxWithProfile(&domain.Profile{ID: 7, Role: domain.Role("admin")})
		matches, err := uc.List(ctx)
		assert.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("Missing profile fails unauthenticated", func(t *testing.T) {
		matchRepo := new(MockMatchRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewMatchUsecase(matchRepo, jobRepo)

		_, err := uc.List(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not authenticated")
	})
}

func TestMatchDecidePermissions(t *testing.T) {
	matchRepo := new(MockMatchRepo)
	jobRepo := new(MockJobRepo)
	uc := usecase.NewMatchUsecase(matchRepo, jobRepo)

	t.Run("Should reject invalid status values", func(t *testing.T) {
		_, err := uc.Decide(recruiterCtx(10), 1, "maybe")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "accepted or rejected")
	})

	t.Run("Should fail when caller is a jobseeker", func(t *testing.T) {
		_, err := uc.Decide(jobseekerCtx(5), 1, domain.MatchStatusAccepted)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only recruiters")
	})

	t.Run("Should fail when the match does not exist", func(t *testing.T) {
		matchRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound).Once()
		_, err := uc.Decide(recruiterCtx(10), 99, domain.MatchStatusAccepted)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Match not found")
	})

	t.Run("Should fail when the job belongs to another recruiter", func(t *testing.T) {
		matchRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Match{ID: 1, JobID: 2, Status: domain.MatchStatusPending, IsActive: true}, nil).Once()
		jobRepo.On("GetByID", mock.Anything, int64(2)).
			Return(&domain.Job{ID: 2, RecruiterID: 77}, nil).Once()

		_, err := uc.Decide(recruiterCtx(10), 1, domain.MatchStatusAccepted)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own jobs")
	})
}

func TestMatchDecideTransitions(t *testing.T) {
	newUC := func() (*MockMatchRepo, *MockJobRepo, domain.MatchUsecase) {
		matchRepo := new(MockMatchRepo)
		jobRepo := new(MockJobRepo)
		return matchRepo, jobRepo, usecase.NewMatchUsecase(matchRepo, jobRepo)
	}

	t.Run("Accept keeps the match active", func(t *testing.T) {
		matchRepo, jobRepo, uc := newUC()
		matchRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Match{ID: 1, JobID: 2, Status: domain.MatchStatusPending, IsActive: true}, nil)
		jobRepo.On("GetByID", mock.Anything, int64(2)).Return(&domain.Job{ID: 2, RecruiterID: 10}, nil)
		matchRepo.On("UpdateStatus", mock.Anything, int64(1), domain.MatchStatusAccepted, true).Return(nil)

		match, err := uc.Decide(recruiterCtx(10), 1, domain.MatchStatusAccepted)
		assert.NoError(t, err)
		assert.Equal(t, domain.MatchStatusAccepted, match.Status)
		assert.True(t, match.IsActive)
		matchRepo.AssertExpectations(t)
	})

	t.Run("Reject deactivates the match", func(t *testing.T) {
		matchRepo, jobRepo, uc := newUC()
		matchRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Match{ID: 1, JobID: 2, Status: domain.MatchStatusPending, IsActive: true}, nil)
		jobRepo.On("GetByID", mock.Anything, int64(2)).Return(&domain.Job{ID: 2, RecruiterID: 10}, nil)
		matchRepo.On("UpdateStatus", mock.Anything, int64(1), domain.MatchStatusRejected, false).Return(nil)

		match, err := uc.Decide(recruiterCtx(10), 1, domain.MatchStatusRejected)
		assert.NoError(t, err)
		assert.Equal(t, domain.MatchStatusRejected, match.Status)
		assert.False(t, match.IsActive)
		matchRepo.AssertExpectations(t)
	})

	t.Run("Repeating the same decision is an idempotent no-op", func(t *testing.T) {
		matchRepo, jobRepo, uc := newUC()
		matchRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Match{ID: 1, JobID: 2, Status: domain.MatchStatusAccepted, IsActive: true}, nil)
		jobRepo.On("GetByID", mock.Anything, int64(2)).Return(&domain.Job{ID: 2, RecruiterID: 10}, nil)

		match, err := uc.Decide(recruiterCtx(10), 1, domain.MatchStatusAccepted)
		assert.NoError(t, err)
		assert.Equal(t, domain.MatchStatusAccepted, match.Status)
		matchRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Terminal states refuse the opposite decision", func(t *testing.T) {
		matchRepo, jobRepo, uc := newUC()
		matchRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Match{ID: 1, JobID: 2, Status: domain.MatchStatusRejected, IsActive: false}, nil)
		jobRepo.On("GetByID", mock.Anything, int64(2)).Return(&domain.Job{ID: 2, RecruiterID: 10}, nil)

		_, err := uc.Decide(recruiterCtx(10), 1, domain.MatchStatusAccepted)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be changed")
		matchRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
