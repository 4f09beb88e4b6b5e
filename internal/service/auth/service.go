package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/attendly/hr-console-go/internal/domain/auth"
	"github.com/attendly/hr-console-go/internal/domain/profile"
	"github.com/attendly/hr-console-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type AuthServiceImpl struct {
	profileRepo profile.ProfileRepository
	jwtService  jwt.Service
}

func NewAuthService(profileRepo profile.ProfileRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		profileRepo: profileRepo,
		jwtService:  jwtService,
	}
}

// normalize folds case and surrounding whitespace, the only equivalence the
// profile match uses.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func profileMatches(stored profile.AdminProfile, req auth.ProfileDetailsRequest) bool {
	return normalize(stored.AdminName) == normalize(req.AdminName) &&
		normalize(stored.OrganizationName) == normalize(req.OrganizationName) &&
		normalize(stored.HRID) == normalize(req.HRID)
}

func mapProfileToResponse(p profile.AdminProfile) auth.ProfileResponse {
	return auth.ProfileResponse{
		HRID:             p.HRID,
		AdminName:        p.AdminName,
		OrganizationName: p.OrganizationName,
		CreatedAt:        p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func (a *AuthServiceImpl) openSession(p profile.AdminProfile) (auth.SessionResponse, error) {
	token, expiresAt, err := a.jwtService.GenerateSessionToken(p.HRID, p.AdminName, p.OrganizationName)
	if err != nil {
		return auth.SessionResponse{}, fmt.Errorf("failed to create session token: %w", err)
	}
	return auth.SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Profile:   mapProfileToResponse(p),
	}, nil
}

// Verify implements auth.AuthService.
func (a *AuthServiceImpl) Verify(ctx context.Context, req auth.ProfileDetailsRequest) (auth.VerifyResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.VerifyResponse{}, err
	}

	stored, err := a.profileRepo.GetByHRID(ctx, strings.TrimSpace(req.HRID))
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return auth.VerifyResponse{Status: auth.VerifyNew}, nil
		}
		return auth.VerifyResponse{}, fmt.Errorf("failed to fetch profile: %w", err)
	}

	if profileMatches(stored, req) {
		return auth.VerifyResponse{Status: auth.VerifyMatch}, nil
	}
	return auth.VerifyResponse{Status: auth.VerifyMismatch}, nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.ProfileDetailsRequest) (auth.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.SessionResponse{}, err
	}

	created, err := a.profileRepo.Create(ctx, profile.AdminProfile{
		HRID:             strings.TrimSpace(req.HRID),
		AdminName:        strings.TrimSpace(req.AdminName),
		OrganizationName: strings.TrimSpace(req.OrganizationName),
	})
	if err != nil {
		return auth.SessionResponse{}, err
	}

	return a.openSession(created)
}

// Login implements auth.AuthService. A mismatch is a dead end on purpose:
// the caller must switch to the register flow explicitly.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.ProfileDetailsRequest) (auth.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.SessionResponse{}, err
	}

	stored, err := a.profileRepo.GetByHRID(ctx, strings.TrimSpace(req.HRID))
	if err != nil {
		return auth.SessionResponse{}, err
	}

	if !profileMatches(stored, req) {
		return auth.SessionResponse{}, auth.ErrProfileMismatch
	}

	return a.openSession(stored)
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (auth.ProfileResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.ProfileResponse{}, auth.ErrNoSession
	}

	hrID, ok := claims["hr_id"].(string)
	if !ok || hrID == "" {
		return auth.ProfileResponse{}, auth.ErrNoSession
	}

	stored, err := a.profileRepo.GetByHRID(ctx, hrID)
	if err != nil {
		return auth.ProfileResponse{}, err
	}

	return mapProfileToResponse(stored), nil
}
