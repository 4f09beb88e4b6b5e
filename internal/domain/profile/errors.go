package profile

import "errors"

var (
	ErrProfileNotFound = errors.New("admin profile not found")
	ErrProfileExists   = errors.New("admin profile already exists for this HR ID")
)
