package postgres

import (
	"context"
	"go-jobswipe-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (recruiter_id, title, company_name, category, governorate, location, salary_range, min_experience_years, max_experience_years, skills, short_description, description, tags, image_url, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		job.RecruiterID, job.Title, job.CompanyName, job.Category, job.Governorate,
		job.Location, job.SalaryRange, job.MinExperienceYears, job.MaxExperienceYears,
		pq.Array(job.Skills), job.ShortDescription, job.Description, job.Tags,
		job.ImageURL, job.CreatedAt,
	).Scan(&job.ID)
	return err
}

const jobSelect = `
	SELECT j.id, j.recruiter_id, j.title, j.company_name, j.category, j.governorate,
	       j.location, j.salary_range, j.min_experience_years, j.max_experience_years,
	       j.skills, j.short_description, j.description, j.tags, j.image_url, j.created_at,
	       u.username AS recruiter_name
	FROM jobs j
	JOIN profiles p ON j.recruiter_id = p.id
	JOIN users u ON p.user_id = u.id`

func scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		var skills []string
		if err := rows.Scan(
			&job.ID, &job.RecruiterID, &job.Title, &job.CompanyName, &job.Category,
			&job.Governorate, &job.Location, &job.SalaryRange,
			&job.MinExperienceYears, &job.MaxExperienceYears,
			pq.Array(&skills), &job.ShortDescription, &job.Description, &job.Tags,
			&job.ImageURL, &job.CreatedAt, &job.RecruiterName,
		); err != nil {
			return nil, err
		}
		job.Skills = skills
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := jobSelect + ` WHERE j.id = $1`
	var job domain.Job
	var skills []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.RecruiterID, &job.Title, &job.CompanyName, &job.Category,
		&job.Governorate, &job.Location, &job.SalaryRange,
		&job.MinExperienceYears, &job.MaxExperienceYears,
		pq.Array(&skills), &job.ShortDescription, &job.Description, &job.Tags,
		&job.ImageURL, &job.CreatedAt, &job.RecruiterName,
	)
	if err != nil {
		return nil, err
	}
	job.Skills = skills
	return &job, nil
}

// FetchForJobseeker excludes jobs the jobseeker has a live dislike against.
// Liked jobs stay in the feed.
func (r *jobRepo) FetchForJobseeker(ctx context.Context, jobseekerID int64) ([]domain.Job, error) {
	query := jobSelect + `
	WHERE j.id NOT IN (
		SELECT job_id FROM job_preferences
		WHERE jobseeker_id = $1 AND action = 'dislike'
	)
	ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query, jobseekerID)
	if err != nil {
		return nil, err
	}
	return scanJobs(rows)
}

func (r *jobRepo) FetchByRecruiter(ctx context.Context, recruiterID int64) ([]domain.Job, error) {
	query := jobSelect + ` WHERE j.recruiter_id = $1 ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query, recruiterID)
	if err != nil {
		return nil, err
	}
	return scanJobs(rows)
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $2,
		company_name = $3,
		category = $4,
		governorate = $5,
		location = $6,
		salary_range = $7,
		min_experience_years = $8,
		max_experience_years = $9,
		skills = $10,
		short_description = $11,
		description = $12,
		tags = $13,
		image_url = $14
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.CompanyName, job.Category, job.Governorate,
		job.Location, job.SalaryRange, job.MinExperienceYears, job.MaxExperienceYears,
		pq.Array(job.Skills), job.ShortDescription, job.Description, job.Tags, job.ImageURL,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM jobs WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
