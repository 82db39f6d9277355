package postgres

import (
	"context"
	"errors"
	"go-jobswipe-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `id, user_id, role, skills, experience_years, bio, company_name, position_title, avatar_url, created_at, updated_at`

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	var skills []string
	err := row.Scan(
		&p.ID, &p.UserID, &p.Role, pq.Array(&skills), &p.ExperienceYears,
		&p.Bio, &p.CompanyName, &p.PositionTitle, &p.AvatarURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Skills = skills
	return &p, nil
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	return scanProfile(r.db.QueryRow(ctx, query, userID))
}

func (r *profileRepo) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return scanProfile(r.db.QueryRow(ctx, query, id))
}

// Update persists the mutable profile fields. Role is intentionally not in
// the SET list; it is fixed at registration.
func (r *profileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	query := `UPDATE profiles SET
		skills = $2,
		experience_years = $3,
		bio = $4,
		company_name = $5,
		position_title = $6,
		avatar_url = $7,
		updated_at = $8
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		profile.ID, pq.Array(profile.Skills), profile.ExperienceYears,
		profile.Bio, profile.CompanyName, profile.PositionTitle, profile.AvatarURL,
		profile.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
