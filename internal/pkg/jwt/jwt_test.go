package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "15m", "168h")

	token, _, err := svc.GenerateRefreshToken("u-1")
	require.NoError(t, err)

	userID, err := svc.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
}

func TestAccessTokenRejectedAsRefresh(t *testing.T) {
	svc := NewJWTService("test-secret", "15m", "168h")

	token, _, err := svc.GenerateAccessToken("u-1", "ana@casarosa.com.br", nil, user.RoleRH)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService("test-secret", "15m", "168h")

	token, _, err := svc.GenerateRefreshToken("u-1")
	require.NoError(t, err)

	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))

	_, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestRevokeTokenPrunesExpiredEntries(t *testing.T) {
	// A zero refresh lifetime makes every revocation entry immediately
	// prunable on the next insert.
	svc := NewJWTService("test-secret", "15m", "0s").(*JWTService)

	svc.RevokeToken("stale-1")
	svc.RevokeToken("stale-2")
	svc.RevokeToken("fresh")

	svc.mu.RLock()
	defer svc.mu.RUnlock()
	assert.Len(t, svc.revokedTokens, 1)
	_, kept := svc.revokedTokens["fresh"]
	assert.True(t, kept)
}
