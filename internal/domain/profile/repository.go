package profile

import "context"

type ProfileRepository interface {
	// GetByHRID returns ErrProfileNotFound when no profile exists for the id
	GetByHRID(ctx context.Context, hrID string) (AdminProfile, error)

	// Create returns ErrProfileExists when the HR ID is already taken
	Create(ctx context.Context, newProfile AdminProfile) (AdminProfile, error)
}
