package usecase

import (
	"context"
	"time"

	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/pkg/apperror"
)

type profileUsecase struct {
	userRepo    domain.UserRepository
	profileRepo domain.ProfileRepository
}

func NewProfileUsecase(userRepo domain.UserRepository, profileRepo domain.ProfileRepository) domain.ProfileUsecase {
	return &profileUsecase{userRepo: userRepo, profileRepo: profileRepo}
}

func (u *profileUsecase) GetMe(ctx context.Context) (*domain.Me, error) {
	profile, err := callerProfile(ctx)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, profile.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return buildMe(user, profile), nil
}

// UpdateMe applies a partial update to the caller's identity and profile.
// Role is not part of ProfileUpdate, so it cannot change here.
func (u *profileUsecase) UpdateMe(ctx context.Context, upd *domain.ProfileUpdate) (*domain.Me, error) {
	profile, err := callerProfile(ctx)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, profile.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()

	if upd.Username != nil || upd.Email != nil {
		if upd.Username != nil {
			user.Username = *upd.Username
		}
		if upd.Email != nil {
			user.Email = *upd.Email
		}
		user.UpdatedAt = now
		if err := u.userRepo.Update(ctx, user); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	if upd.Skills != nil {
		profile.Skills = upd.Skills
	}
	if upd.ExperienceYears != nil {
		profile.ExperienceYears = upd.ExperienceYears
	}
	if upd.Bio != nil {
		profile.Bio = *upd.Bio
	}
	if upd.CompanyName != nil {
		profile.CompanyName = *upd.CompanyName
	}
	if upd.PositionTitle != nil {
		profile.PositionTitle = *upd.PositionTitle
	}
	if upd.AvatarURL != nil {
		profile.AvatarURL = upd.AvatarURL
	}
	profile.UpdatedAt = now

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}

	return buildMe(user, profile), nil
}

func buildMe(user *domain.User, profile *domain.Profile) *domain.Me {
	return &domain.Me{
		ID:              user.ID,
		Username:        user.Username,
		Email:           user.Email,
		Role:            profile.Role,
		AvatarURL:       profile.AvatarURL,
		Skills:          profile.Skills,
		ExperienceYears: profile.ExperienceYears,
		Bio:             profile.Bio,
		CompanyName:     profile.CompanyName,
		PositionTitle:   profile.PositionTitle,
	}
}
