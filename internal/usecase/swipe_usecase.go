package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/pkg/apperror"
)

type swipeUsecase struct {
	prefRepo  domain.PreferenceRepository
	matchRepo domain.MatchRepository
	jobRepo   domain.JobRepository
}

func NewSwipeUsecase(prefRepo domain.PreferenceRepository, matchRepo domain.MatchRepository, jobRepo domain.JobRepository) domain.SwipeUsecase {
	return &swipeUsecase{
		prefRepo:  prefRepo,
		matchRepo: matchRepo,
		jobRepo:   jobRepo,
	}
}

// SetPreference records the jobseeker's decision on a job and drives the
// match side effects:
//
//	like    -> get-or-create a pending active match; an existing match
//	           (including a rejected one) is left untouched
//	dislike -> overwrite the preference and withdraw any active match,
//	           mapping onto the same terminal state as recruiter rejection
func (u *swipeUsecase) SetPreference(ctx context.Context, jobID int64, action string) (*domain.SwipeResult, error) {
	profile, err := callerProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile.Role != domain.RoleJobseeker {
		return nil, apperror.Forbidden("Only jobseekers can like or dislike jobs")
	}

	if action != domain.ActionLike && action != domain.ActionDislike {
		return nil, apperror.BadRequest("Action must be like or dislike")
	}

	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		return nil, apperror.NotFound("Job not found")
	}

	pref := &domain.Preference{
		JobID:       jobID,
		JobseekerID: profile.ID,
		Action:      action,
		CreatedAt:   time.Now(),
	}
	if err := u.prefRepo.Upsert(ctx, pref); err != nil {
		return nil, apperror.Internal(err)
	}

	result := &domain.SwipeResult{Action: action}

	if action == domain.ActionLike {
		match, err := u.matchRepo.GetOrCreate(ctx, jobID, profile.ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		result.MatchID = &match.ID
		return result, nil
	}

	// Dislike: withdraw the pair's match if one is still active.
	match, err := u.matchRepo.GetByPair(ctx, jobID, profile.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return result, nil
		}
		return nil, apperror.Internal(err)
	}
	if match.IsActive {
		if err := u.matchRepo.UpdateStatus(ctx, match.ID, domain.MatchStatusRejected, false); err != nil {
			return nil, apperror.Internal(err)
		}
	}
	return result, nil
}
