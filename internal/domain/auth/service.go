package auth

import "context"

// AuthService implements the profile-match authentication model: there is no
// credential beyond the three profile fields agreeing with the stored tenant
// profile.
type AuthService interface {
	// Verify classifies the submitted details as match, mismatch, or new.
	// A missing profile is not an error.
	Verify(ctx context.Context, req ProfileDetailsRequest) (VerifyResponse, error)

	// Register creates a new workspace profile and opens a session
	Register(ctx context.Context, req ProfileDetailsRequest) (SessionResponse, error)

	// Login opens a session when the details fully match the stored profile
	Login(ctx context.Context, req ProfileDetailsRequest) (SessionResponse, error)

	// Me returns the authenticated tenant's stored profile
	Me(ctx context.Context) (ProfileResponse, error)
}
