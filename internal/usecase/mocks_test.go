package usecase_test

import (
	"context"

	"go-jobswipe-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateWithProfile(ctx context.Context, user *domain.User, profile *domain.Profile) error {
	return m.Called(ctx, user, profile).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) FetchForJobseeker(ctx context.Context, jobseekerID int64) ([]domain.Job, error) {
	args := m.Called(ctx, jobseekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) FetchByRecruiter(ctx context.Context, recruiterID int64) ([]domain.Job, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockPreferenceRepo struct {
	mock.Mock
}

func (m *MockPreferenceRepo) Upsert(ctx context.Context, pref *domain.Preference) error {
	return m.Called(ctx, pref).Error(0)
}

func (m *MockPreferenceRepo) GetByPair(ctx context.Context, jobID, jobseekerID int64) (*domain.Preference, error) {
	args := m.Called(ctx, jobID, jobseekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preference), args.Error(1)
}

type MockMatchRepo struct {
	mock.Mock
}

func (m *MockMatchRepo) GetOrCreate(ctx context.Context, jobID, jobseekerID int64) (*domain.Match, error) {
	args := m.Called(ctx, jobID, jobseekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *MockMatchRepo) GetByID(ctx context.Context, id int64) (*domain.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *MockMatchRepo) GetByPair(ctx context.Context, jobID, jobseekerID int64) (*domain.Match, error) {
	args := m.Called(ctx, jobID, jobseekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *MockMatchRepo) UpdateStatus(ctx context.Context, id int64, status string, isActive bool) error {
	return m.Called(ctx, id, status, isActive).Error(0)
}

func (m *MockMatchRepo) FetchAcceptedForJobseeker(ctx context.Context, jobseekerID int64) ([]domain.Match, error) {
	args := m.Called(ctx, jobseekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Match), args.Error(1)
}

func (m *MockMatchRepo) FetchActiveForRecruiter(ctx context.Context, recruiterID int64) ([]domain.Match, error) {
	args := m.Called(ctx, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Match), args.Error(1)
}

// ctxWithProfile simulates the auth middleware having loaded the caller.
func ctxWithProfile(profile *domain.Profile) context.Context {
	return context.WithValue(context.Background(), domain.KeyProfile, profile)
}

func jobseekerCtx(id int64) context.Context {
	return ctxWithProfile(&domain.Profile{ID: id, UserID: "seeker-uuid", Role: domain.RoleJobseeker})
}

func recruiterCtx(id int64) context.Context {
	return ctxWithProfile(&domain.Profile{ID: id, UserID: "recruiter-uuid", Role: domain.RoleRecruiter})
}
