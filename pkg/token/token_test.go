package token_test

import (
	"testing"
	"time"

	"go-jobswipe-backend/pkg/token"

	"github.com/stretchr/testify/assert"
)

func TestManagerRoundTrip(t *testing.T) {
	tokens := token.NewManager("unit-test-secret", time.Hour)

	signed, expiresAt, err := tokens.Issue("uuid-1", "sam@example.com")
	assert.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := tokens.Parse(signed)
	assert.NoError(t, err)
	assert.Equal(t, "uuid-1", claims.Subject)
	assert.Equal(t, "sam@example.com", claims.Email)
}

func TestManagerRejects(t *testing.T) {
	tokens := token.NewManager("unit-test-secret", time.Hour)

	t.Run("Garbage input", func(t *testing.T) {
		_, err := tokens.Parse("not-a-jwt")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("Token signed with a different secret", func(t *testing.T) {
		other := token.NewManager("other-secret", time.Hour)
		signed, _, err := other.Issue("uuid-1", "sam@example.com")
		assert.NoError(t, err)

		_, err = tokens.Parse(signed)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("Expired token", func(t *testing.T) {
		expired := token.NewManager("unit-test-secret", -time.Minute)
		signed, _, err := expired.Issue("uuid-1", "sam@example.com")
		assert.NoError(t, err)

		_, err = tokens.Parse(signed)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})
}
