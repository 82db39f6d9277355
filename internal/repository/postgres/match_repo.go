package postgres

import (
	"context"
	"errors"
	"go-jobswipe-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type matchRepo struct {
	db *pgxpool.Pool
}

func NewMatchRepository(db *pgxpool.Pool) domain.MatchRepository {
	return &matchRepo{db: db}
}

// GetOrCreate inserts a pending active match or leaves the existing row
// untouched. ON CONFLICT DO NOTHING means a previously rejected or inactive
// match is returned as-is, never resurrected.
func (r *matchRepo) GetOrCreate(ctx context.Context, jobID, jobseekerID int64) (*domain.Match, error) {
	now := time.Now()
	insert := `
		INSERT INTO matches (job_id, jobseeker_id, status, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, $4, $4)
		ON CONFLICT (job_id, jobseeker_id) DO NOTHING`
	if _, err := r.db.Exec(ctx, insert, jobID, jobseekerID, domain.MatchStatusPending, now); err != nil {
		return nil, err
	}
	return r.GetByPair(ctx, jobID, jobseekerID)
}

const matchColumns = `id, job_id, jobseeker_id, status, is_active, created_at, updated_at`

func (r *matchRepo) GetByID(ctx context.Context, id int64) (*domain.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *matchRepo) GetByPair(ctx context.Context, jobID, jobseekerID int64) (*domain.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE job_id = $1 AND jobseeker_id = $2`
	return r.scanOne(r.db.QueryRow(ctx, query, jobID, jobseekerID))
}

func (r *matchRepo) scanOne(row pgx.Row) (*domain.Match, error) {
	var m domain.Match
	err := row.Scan(&m.ID, &m.JobID, &m.JobseekerID, &m.Status, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateStatus sets status and is_active in one statement so a rejection can
// never leave the row active.
func (r *matchRepo) UpdateStatus(ctx context.Context, id int64, status string, isActive bool) error {
	query := `UPDATE matches SET status = $2, is_active = $3, updated_at = $4 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, isActive, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// FetchAcceptedForJobseeker returns the jobseeker-facing view: active and
// accepted only, with job details joined in.
func (r *matchRepo) FetchAcceptedForJobseeker(ctx context.Context, jobseekerID int64) ([]domain.Match, error) {
	query := `
		SELECT m.id, m.job_id, m.jobseeker_id, m.status, m.is_active, m.created_at, m.updated_at,
		       j.title AS job_title, j.company_name
		FROM matches m
		JOIN jobs j ON m.job_id = j.id
		WHERE m.jobseeker_id = $1 AND m.is_active AND m.status = 'accepted'
		ORDER BY m.created_at DESC`

	rows, err := r.db.Query(ctx, query, jobseekerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []domain.Match
	for rows.Next() {
		var m domain.Match
		if err := rows.Scan(
			&m.ID, &m.JobID, &m.JobseekerID, &m.Status, &m.IsActive, &m.CreatedAt, &m.UpdatedAt,
			&m.JobTitle, &m.CompanyName,
		); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// FetchActiveForRecruiter returns every active match (pending and accepted)
// across the recruiter's jobs, with jobseeker name joined for the inbox view.
func (r *matchRepo) FetchActiveForRecruiter(ctx context.Context, recruiterID int64) ([]domain.Match, error) {
	query := `
		SELECT m.id, m.job_id, m.jobseeker_id, m.status, m.is_active, m.created_at, m.updated_at,
		       j.title AS job_title, j.company_name, u.username AS jobseeker_name
		FROM matches m
		JOIN jobs j ON m.job_id = j.id
		JOIN profiles p ON m.jobseeker_id = p.id
		JOIN users u ON p.user_id = u.id
		WHERE j.recruiter_id = $1 AND m.is_active
		ORDER BY m.created_at DESC`

	rows, err := r.db.Query(ctx, query, recruiterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []domain.Match
	for rows.Next() {
		var m domain.Match
		if err := rows.Scan(
			&m.ID, &m.JobID, &m.JobseekerID, &m.Status, &m.IsActive, &m.CreatedAt, &m.UpdatedAt,
			&m.JobTitle, &m.CompanyName, &m.JobseekerName,
		); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
