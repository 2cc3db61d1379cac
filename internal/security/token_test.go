package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mentorhub-backend/internal/domain"
)

const testSecret = "unit-test-secret-thirty-two-chars!!"

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	manager := NewTokenManager(testSecret, 60)

	token, err := manager.GenerateAccessToken(7, "alice@example.com", domain.UserRoleAlumni)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int32(7), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, string(domain.UserRoleAlumni), claims.Role)
	assert.NotEmpty(t, claims.ID)

	actor := ActorFromClaims(claims)
	assert.Equal(t, int32(7), actor.UserID)
	assert.True(t, actor.IsAlumni())
	assert.False(t, actor.IsStudent())
}

func TestTokenManager_ValidateToken_Errors(t *testing.T) {
	manager := NewTokenManager(testSecret, 60)

	t.Run("Garbage", func(t *testing.T) {
		_, err := manager.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		other := NewTokenManager("a-completely-different-signing-key!!", 60)
		token, err := other.GenerateAccessToken(1, "bob@example.com", domain.UserRoleStudent)
		assert.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := &tokenManager{secret: []byte(testSecret), expiry: -time.Minute}
		token, err := expired.GenerateAccessToken(1, "bob@example.com", domain.UserRoleStudent)
		assert.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
