package usecase

import (
	"context"
	"errors"

	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/pkg/apperror"
)

type matchUsecase struct {
	matchRepo domain.MatchRepository
	jobRepo   domain.JobRepository
}

func NewMatchUsecase(matchRepo domain.MatchRepository, jobRepo domain.JobRepository) domain.MatchUsecase {
	return &matchUsecase{matchRepo: matchRepo, jobRepo: jobRepo}
}

// List is the role dispatch point for match visibility. Jobseekers only see
// matches the recruiter already accepted; recruiters see their whole active
// inbox, pending included. The asymmetry keeps pending likes from reading as
// "matched" on the jobseeker side.
func (u *matchUsecase) List(ctx context.Context) ([]domain.Match, error) {
	profile, err := callerProfile(ctx)
	if err != nil {
		return nil, err
	}

	switch profile.Role {
	case domain.RoleJobseeker:
		return u.matchRepo.FetchAcceptedForJobseeker(ctx, profile.ID)
	case domain.RoleRecruiter:
		return u.matchRepo.FetchActiveForRecruiter(ctx, profile.ID)
	default:
		return []domain.Match{}, nil
	}
}

// Decide applies the recruiter's accept/reject to a match on a job they own.
// accepted and rejected are terminal: repeating the same decision is an
// idempotent no-op, any other transition is refused so the history stays
// auditable.
func (u *matchUsecase) Decide(ctx context.Context, matchID int64, status string) (*domain.Match, error) {
	if status != domain.MatchStatusAccepted && status != domain.MatchStatusRejected {
		return nil, apperror.BadRequest("Status must be accepted or rejected")
	}

	profile, err := callerProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile.Role != domain.RoleRecruiter {
		return nil, apperror.Forbidden("Only recruiters can decide on matches")
	}

	match, err := u.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Match not found")
		}
		return nil, apperror.Internal(err)
	}

	job, err := u.jobRepo.GetByID(ctx, match.JobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if job.RecruiterID != profile.ID {
		return nil, apperror.Forbidden("You can only decide on matches for your own jobs")
	}

	if match.Status == status {
		return match, nil
	}
	if match.Status != domain.MatchStatusPending {
		return nil, apperror.BadRequest("Match is already " + match.Status + " and cannot be changed")
	}

	isActive := match.IsActive
	if status == domain.MatchStatusRejected {
		isActive = false
	}

	if err := u.matchRepo.UpdateStatus(ctx, match.ID, status, isActive); err != nil {
		return nil, apperror.Internal(err)
	}

	match.Status = status
	match.IsActive = isActive
	return match, nil
}
