package usecase

import (
	"context"

	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/pkg/apperror"
)

// callerProfile reads the authenticated caller's profile placed in the
// context by the auth middleware. Every role-gated operation goes through
// this single lookup and dispatches on the returned Role.
func callerProfile(ctx context.Context) (*domain.Profile, error) {
	p, ok := ctx.Value(domain.KeyProfile).(*domain.Profile)
	if !ok || p == nil {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	return p, nil
}
