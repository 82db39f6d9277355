package domain

import (
	"context"
	"time"
)

// Role tags a profile as one side of the marketplace. The set is closed:
// every role-dependent operation dispatches on these two values and treats
// anything else as "no access" rather than an error.
type Role string

const (
	RoleJobseeker Role = "jobseeker"
	RoleRecruiter Role = "recruiter"
)

func (r Role) Valid() bool {
	return r == RoleJobseeker || r == RoleRecruiter
}

// Profile is the role-tagged extension of a user identity. Role is set at
// registration and never reassignable through profile updates.
type Profile struct {
	ID     int64  `json:"id"`
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`

	// Jobseeker fields
	Skills          []string `json:"skills"`
	ExperienceYears *int     `json:"experience_years"`
	Bio             string   `json:"bio"`

	// Recruiter fields
	CompanyName   string `json:"company_name"`
	PositionTitle string `json:"position_title"`

	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileUpdate carries the mutable subset of Me for partial updates.
// Nil pointer means "leave unchanged". Role is deliberately absent.
type ProfileUpdate struct {
	Username        *string
	Email           *string
	Skills          []string
	ExperienceYears *int
	Bio             *string
	CompanyName     *string
	PositionTitle   *string
	AvatarURL       *string
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	GetByID(ctx context.Context, id int64) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
}

type ProfileUsecase interface {
	GetMe(ctx context.Context) (*Me, error)
	UpdateMe(ctx context.Context, upd *ProfileUpdate) (*Me, error)
}
