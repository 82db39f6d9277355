package domain

import (
	"context"
	"time"
)

type User struct {
	ID           string    `json:"id"` // UUID
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Me is the combined identity + profile view returned by the /me endpoints.
type Me struct {
	ID              string   `json:"id"`
	Username        string   `json:"username"`
	Email           string   `json:"email"`
	Role            Role     `json:"role"`
	AvatarURL       *string  `json:"avatar_url"`
	Skills          []string `json:"skills"`
	ExperienceYears *int     `json:"experience_years"`
	Bio             string   `json:"bio"`
	CompanyName     string   `json:"company_name"`
	PositionTitle   string   `json:"position_title"`
}

type UserRepository interface {
	// CreateWithProfile inserts the user and its profile in a single
	// transaction. Every identity gets exactly one profile at registration;
	// there is no lazy profile creation path.
	CreateWithProfile(ctx context.Context, user *User, profile *Profile) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}

type AuthUsecase interface {
	Register(ctx context.Context, user *User, profile *Profile, password string) error
	Login(ctx context.Context, email, password string) (string, time.Time, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
