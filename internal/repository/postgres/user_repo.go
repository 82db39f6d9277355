package postgres

import (
	"context"
	"go-jobswipe-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

// CreateWithProfile inserts the identity and its profile atomically. A failed
// profile insert rolls back the user row, so a user without a profile can
// never exist.
func (r *userRepo) CreateWithProfile(ctx context.Context, user *domain.User, profile *domain.Profile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	userQuery := `INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
	              VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.Exec(ctx, userQuery,
		user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	); err != nil {
		return err
	}

	profileQuery := `INSERT INTO profiles (user_id, role, skills, experience_years, bio, company_name, position_title, avatar_url, created_at, updated_at)
	                 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	if err := tx.QueryRow(ctx, profileQuery,
		user.ID, profile.Role, pq.Array(profile.Skills), profile.ExperienceYears,
		profile.Bio, profile.CompanyName, profile.PositionTitle, profile.AvatarURL,
		user.CreatedAt, user.UpdatedAt,
	).Scan(&profile.ID); err != nil {
		return err
	}
	profile.UserID = user.ID

	return tx.Commit(ctx)
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, username, email, password_hash, created_at, updated_at FROM users WHERE id = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, username, email, password_hash, created_at, updated_at FROM users WHERE email = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET username = $2, email = $3, updated_at = $4 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, user.ID, user.Username, user.Email, user.UpdatedAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
