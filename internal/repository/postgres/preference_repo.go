package postgres

import (
	"context"
	"errors"
	"go-jobswipe-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type preferenceRepo struct {
	db *pgxpool.Pool
}

func NewPreferenceRepository(db *pgxpool.Pool) domain.PreferenceRepository {
	return &preferenceRepo{db: db}
}

// Upsert overwrites the pair's decision in one statement. The unique
// constraint on (job_id, jobseeker_id) makes concurrent swipes converge to a
// single row; there is no check-then-create window.
func (r *preferenceRepo) Upsert(ctx context.Context, pref *domain.Preference) error {
	query := `
		INSERT INTO job_preferences (job_id, jobseeker_id, action, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (job_id, jobseeker_id)
		DO UPDATE SET action = EXCLUDED.action, created_at = EXCLUDED.created_at
		RETURNING id`

	if pref.CreatedAt.IsZero() {
		pref.CreatedAt = time.Now()
	}

	return r.db.QueryRow(ctx, query,
		pref.JobID, pref.JobseekerID, pref.Action, pref.CreatedAt,
	).Scan(&pref.ID)
}

func (r *preferenceRepo) GetByPair(ctx context.Context, jobID, jobseekerID int64) (*domain.Preference, error) {
	query := `SELECT id, job_id, jobseeker_id, action, created_at
	          FROM job_preferences WHERE job_id = $1 AND jobseeker_id = $2`
	var pref domain.Preference
	err := r.db.QueryRow(ctx, query, jobID, jobseekerID).Scan(
		&pref.ID, &pref.JobID, &pref.JobseekerID, &pref.Action, &pref.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}
