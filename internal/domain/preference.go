package domain

import (
	"context"
	"time"
)

// Swipe actions
const (
	ActionLike    = "like"
	ActionDislike = "dislike"
)

// Preference is a jobseeker's live like/dislike decision on a job. At most
// one row exists per (job, jobseeker) pair; a new decision overwrites the
// previous one instead of appending history.
type Preference struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	JobseekerID int64     `json:"jobseeker_id"`
	Action      string    `json:"action"`
	CreatedAt   time.Time `json:"created_at"`
}

// SwipeResult is returned from a like/dislike call. MatchID is set when a
// match row exists for the pair after the swipe.
type SwipeResult struct {
	Action  string `json:"action"`
	MatchID *int64 `json:"match_id"`
}

type PreferenceRepository interface {
	// Upsert overwrites the pair's action and timestamp atomically, relying
	// on the (job_id, jobseeker_id) unique constraint. Concurrent duplicate
	// swipes converge to a single row at the storage layer.
	Upsert(ctx context.Context, pref *Preference) error
	GetByPair(ctx context.Context, jobID, jobseekerID int64) (*Preference, error)
}

type SwipeUsecase interface {
	SetPreference(ctx context.Context, jobID int64, action string) (*SwipeResult, error)
}
