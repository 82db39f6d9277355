package domain

import (
	"context"
	"time"
)

// Match status constants
const (
	MatchStatusPending  = "pending"
	MatchStatusAccepted = "accepted"
	MatchStatusRejected = "rejected"
)

// Match records a jobseeker's interest in a job and the recruiter's decision
// on it. Exactly one row per (job, jobseeker) pair; re-liking reuses the
// existing row and never resurrects a rejected one. IsActive=false suppresses
// the match from both parties' views without deleting it.
type Match struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	JobseekerID int64     `json:"jobseeker_id"`
	Status      string    `json:"status"` // pending → accepted / rejected
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined data for list responses
	JobTitle      string `json:"job_title,omitempty"`
	CompanyName   string `json:"company_name,omitempty"`
	JobseekerName string `json:"jobseeker_name,omitempty"`
}

type MatchRepository interface {
	// GetOrCreate inserts a pending active match for the pair, or returns the
	// existing row untouched. INSERT ... ON CONFLICT DO NOTHING under the
	// (job_id, jobseeker_id) unique constraint, never check-then-create.
	GetOrCreate(ctx context.Context, jobID, jobseekerID int64) (*Match, error)
	GetByID(ctx context.Context, id int64) (*Match, error)
	GetByPair(ctx context.Context, jobID, jobseekerID int64) (*Match, error)
	// UpdateStatus sets status and is_active together.
	UpdateStatus(ctx context.Context, id int64, status string, isActive bool) error
	// FetchAcceptedForJobseeker returns active accepted matches, newest first.
	FetchAcceptedForJobseeker(ctx context.Context, jobseekerID int64) ([]Match, error)
	// FetchActiveForRecruiter returns active matches (pending and accepted)
	// across the recruiter's jobs, newest first.
	FetchActiveForRecruiter(ctx context.Context, recruiterID int64) ([]Match, error)
}

type MatchUsecase interface {
	// List dispatches on the caller's role: jobseekers see only active
	// accepted matches, recruiters see every active match on their own jobs.
	List(ctx context.Context) ([]Match, error)
	// Decide applies the recruiter decision (accepted or rejected) to a
	// pending match on one of the recruiter's own jobs.
	Decide(ctx context.Context, matchID int64, status string) (*Match, error)
}
