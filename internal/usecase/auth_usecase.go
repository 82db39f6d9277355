package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/pkg/apperror"
	"go-jobswipe-backend/pkg/token"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

const uniqueViolation = "23505"

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *token.Manager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *token.Manager) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

// Register creates the identity and its role-tagged profile in one
// transaction. Role is fixed here; no later operation can change it.
func (u *authUsecase) Register(ctx context.Context, user *domain.User, profile *domain.Profile, password string) error {
	if !profile.Role.Valid() {
		return apperror.BadRequest("Role must be jobseeker or recruiter")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal(err)
	}

	user.ID = uuid.NewString()
	user.PasswordHash = string(hash)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	if err := u.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperror.Conflict("Username or email already registered")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, domain.ErrNotFound) {
			return "", time.Time{}, apperror.Unauthorized("Invalid email or password")
		}
		return "", time.Time{}, apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, apperror.Unauthorized("Invalid email or password")
	}

	signed, expiresAt, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", time.Time{}, apperror.Internal(err)
	}
	return signed, expiresAt, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
