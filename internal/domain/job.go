package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type Job struct {
	ID                 int64     `json:"id"`
	RecruiterID        int64     `json:"recruiter_id"`
	Title              string    `json:"title"`
	CompanyName        string    `json:"company_name"`
	Category           string    `json:"category"`
	Governorate        string    `json:"governorate"`
	Location           string    `json:"location"`
	SalaryRange        string    `json:"salary_range"`
	MinExperienceYears *int      `json:"min_experience_years"`
	MaxExperienceYears *int      `json:"max_experience_years"`
	Skills             []string  `json:"skills"`
	ShortDescription   string    `json:"short_description"`
	Description        string    `json:"description"`
	Tags               string    `json:"tags"`
	ImageURL           *string   `json:"image_url"`
	CreatedAt          time.Time `json:"created_at"`

	// Joined for list responses
	RecruiterName string `json:"recruiter_name,omitempty"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	// FetchForJobseeker returns all jobs except those the jobseeker has an
	// active dislike against, newest first. Likes do not filter the feed.
	FetchForJobseeker(ctx context.Context, jobseekerID int64) ([]Job, error)
	FetchByRecruiter(ctx context.Context, recruiterID int64) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	// ListFeed dispatches on the caller's role: jobseekers get the filtered
	// swipe feed, recruiters get their own postings, anything else gets an
	// empty list.
	ListFeed(ctx context.Context) ([]Job, error)
	ListOwn(ctx context.Context) ([]Job, error)
	GetJobDetails(ctx context.Context, id int64) (*Job, error)
	CreateJob(ctx context.Context, job *Job) error
	UpdateJob(ctx context.Context, job *Job) error
	DeleteJob(ctx context.Context, id int64) error
}
