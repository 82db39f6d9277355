package usecase_test

import (
	"context"
	"testing"

	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetMe(t *testing.T) {
	t.Run("Combines user identity with the role profile", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(userRepo, profileRepo)

		profile := &domain.Profile{ID: 5, UserID: "uuid-1", Role: domain.RoleJobseeker, Skills: []string{"Go"}, Bio: "builder"}
		userRepo.On("GetByID", mock.Anything, "uuid-1").
			Return(&domain.User{ID: "uuid-1", Username: "sam", Email: "sam@example.com"}, nil)

		me, err := uc.GetMe(ctxWithProfile(profile))
		assert.NoError(t, err)
		assert.Equal(t, "sam", me.Username)
		assert.Equal(t, domain.RoleJobseeker, me.Role)
		assert.Equal(t, []string{"Go"}, me.Skills)
	})

	t.Run("Fails unauthenticated without a profile in context", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(userRepo, profileRepo)

		_, err := uc.GetMe(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not authenticated")
	})
}

func TestUpdateMe(t *testing.T) {
	t.Run("Nil fields leave the profile unchanged", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(userRepo, profileRepo)

		profile := &domain.Profile{ID: 5, UserID: "uuid-1", Role: domain.RoleJobseeker, Bio: "original bio"}
		userRepo.On("GetByID", mock.Anything, "uuid-1").
			Return(&domain.User{ID: "uuid-1", Username: "sam", Email: "sam@example.com"}, nil)
		profileRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			assert.Equal(t, "original bio", p.Bio)
		})

		newSkills := []string{"Go", "Postgres"}
		me, err := uc.UpdateMe(ctxWithProfile(profile), &domain.ProfileUpdate{Skills: newSkills})
		assert.NoError(t, err)
		assert.Equal(t, newSkills, me.Skills)
		assert.Equal(t, "original bio", me.Bio)
		// Username untouched, so the user row is never written.
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Username change writes through to the user row", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(userRepo, profileRepo)

		profile := &domain.Profile{ID: 5, UserID: "uuid-1", Role: domain.RoleRecruiter}
		userRepo.On("GetByID", mock.Anything, "uuid-1").
			Return(&domain.User{ID: "uuid-1", Username: "old-name", Email: "sam@example.com"}, nil)
		userRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, "new-name", u.Username)
		})
		profileRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		newName := "new-name"
		me, err := uc.UpdateMe(ctxWithProfile(profile), &domain.ProfileUpdate{Username: &newName})
		assert.NoError(t, err)
		assert.Equal(t, "new-name", me.Username)
		userRepo.AssertExpectations(t)
	})

	t.Run("Role survives every update", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		profileRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(userRepo, profileRepo)

		profile := &domain.Profile{ID: 5, UserID: "uuid-1", Role: domain.RoleJobseeker}
		userRepo.On("GetByID", mock.Anything, "uuid-1").
			Return(&domain.User{ID: "uuid-1"}, nil)
		profileRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			assert.Equal(t, domain.RoleJobseeker, p.Role)
		})

		bio := "updated"
		company := "Evil Corp"
		me, err := uc.UpdateMe(ctxWithProfile(profile), &domain.ProfileUpdate{Bio: &bio, CompanyName: &company})
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleJobseeker, me.Role)
	})
}
