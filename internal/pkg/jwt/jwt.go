package jwt

import (
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service issues and revokes the session tokens that stand in for the
// authenticated administrator profile. Every request-scoped operation reads
// the tenant from the token claims rather than from process-global state.
type Service interface {
	GenerateSessionToken(hrID string, adminName string, organizationName string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey           string
	tokenExpirationTime string
	tokenAuth           *jwtauth.JWTAuth
	revokedTokens       map[string]int64
	mu                  sync.RWMutex
}

func NewJWTService(secretKey string, tokenExpirationTime string) Service {
	return &JWTService{
		secretKey:           secretKey,
		tokenExpirationTime: tokenExpirationTime,
		tokenAuth:           jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:       make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateSessionToken(hrID string, adminName string, organizationName string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.tokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"hr_id":             hrID,
		"admin_name":        adminName,
		"organization_name": organizationName,
		"type":              "session",
		"exp":               expiresAt,
	})
	return tokenString, expiresAt, err
}

// RevokeToken marks a session token as logged out. The list is process-local
// and each entry carries the token's own expiry so it can be swept once the
// token would be rejected anyway.
func (j *JWTService) RevokeToken(token string) {
	expiresAt := j.tokenExpiry(token)

	j.mu.Lock()
	defer j.mu.Unlock()

	now := time.Now().Unix()
	for tok, exp := range j.revokedTokens {
		if exp < now {
			delete(j.revokedTokens, tok)
		}
	}

	j.revokedTokens[token] = expiresAt
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()

	exp, revoked := j.revokedTokens[token]
	if !revoked {
		return false
	}
	// Past its own exp the token fails verification regardless
	return exp >= time.Now().Unix()
}

// tokenExpiry reads exp from the token itself, falling back to the configured
// session lifetime when the token cannot be decoded. A revoked token can
// never outlive the longer of the two.
func (j *JWTService) tokenExpiry(token string) int64 {
	if t, err := j.tokenAuth.Decode(token); err == nil && !t.Expiration().IsZero() {
		return t.Expiration().Unix()
	}
	if d, err := time.ParseDuration(j.tokenExpirationTime); err == nil {
		return time.Now().Add(d).Unix()
	}
	return time.Now().Add(24 * time.Hour).Unix()
}
