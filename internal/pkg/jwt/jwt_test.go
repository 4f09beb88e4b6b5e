package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSessionToken(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")

	token, expiresAt, err := svc.GenerateSessionToken("hr-1", "Jane Doe", "Acme Corp")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "hr-1", claims["hr_id"])
	assert.Equal(t, "session", claims["type"])
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")

	token, _, err := svc.GenerateSessionToken("hr-1", "Jane Doe", "Acme Corp")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestRevokedTokensExpire(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")
	impl := svc.(*JWTService)

	expired, _, err := svc.GenerateSessionToken("hr-1", "Jane Doe", "Acme Corp")
	require.NoError(t, err)
	fresh, _, err := svc.GenerateSessionToken("hr-2", "John Roe", "Globex")
	require.NoError(t, err)

	svc.RevokeToken(expired)

	// Age the first entry past its own exp
	impl.mu.Lock()
	impl.revokedTokens[expired] = time.Now().Add(-time.Minute).Unix()
	impl.mu.Unlock()

	// An entry past exp no longer reads as revoked
	assert.False(t, svc.IsTokenRevoked(expired))

	// The next revocation sweeps it out of the list entirely
	svc.RevokeToken(fresh)

	impl.mu.RLock()
	_, stillThere := impl.revokedTokens[expired]
	size := len(impl.revokedTokens)
	impl.mu.RUnlock()
	assert.False(t, stillThere)
	assert.Equal(t, 1, size)
}
