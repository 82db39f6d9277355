package usecase

import (
	"context"
	"time"

	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

// ListFeed is the single role dispatch point for the job list. Jobseekers
// get everything minus their active dislikes, recruiters get their own
// postings, and an unknown role gets an empty feed rather than an error.
func (u *jobUsecase) ListFeed(ctx context.Context) ([]domain.Job, error) {
	profile, err := callerProfile(ctx)
	if err != nil {
		return nil, err
	}

	switch profile.Role {
	case domain.RoleJobseeker:
		return u.jobRepo.FetchForJobseeker(ctx, profile.ID)
	case domain.RoleRecruiter:
		return u.jobRepo.FetchByRecruiter(ctx, profile.ID)
	default:
		return []domain.Job{}, nil
	}
}

func (u *jobUsecase) ListOwn(ctx context.Context) ([]domain.Job, error) {
	profile, err := callerProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile.Role != domain.RoleRecruiter {
		return nil, apperror.Forbidden("Only recruiters can list their own jobs")
	}
	return u.jobRepo.FetchByRecruiter(ctx, profile.ID)
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) error {
	profile, err := callerProfile(ctx)
	if err != nil {
		return err
	}
	if profile.Role != domain.RoleRecruiter {
		return apperror.Forbidden("Only recruiters can create jobs")
	}

	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.MinExperienceYears != nil && job.MaxExperienceYears != nil &&
		*job.MinExperienceYears > *job.MaxExperienceYears {
		return apperror.BadRequest("min_experience_years cannot exceed max_experience_years")
	}

	job.RecruiterID = profile.ID
	job.CreatedAt = time.Now()

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, job *domain.Job) error {
	existing, err := u.ownJob(ctx, job.ID)
	if err != nil {
		return err
	}

	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.MinExperienceYears != nil && job.MaxExperienceYears != nil &&
		*job.MinExperienceYears > *job.MaxExperienceYears {
		return apperror.BadRequest("min_experience_years cannot exceed max_experience_years")
	}

	job.RecruiterID = existing.RecruiterID
	return u.jobRepo.Update(ctx, job)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id int64) error {
	if _, err := u.ownJob(ctx, id); err != nil {
		return err
	}
	return u.jobRepo.Delete(ctx, id)
}

// ownJob loads the job and verifies the caller is the recruiter who owns it.
func (u *jobUsecase) ownJob(ctx context.Context, id int64) (*domain.Job, error) {
	profile, err := callerProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile.Role != domain.RoleRecruiter {
		return nil, apperror.Forbidden("Only recruiters can modify jobs")
	}

	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	if job.RecruiterID != profile.ID {
		return nil, apperror.Forbidden("You can only modify your own jobs")
	}
	return job, nil
}
