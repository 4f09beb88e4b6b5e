package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/hr-console-go/internal/domain/profile"
	"github.com/attendly/hr-console-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type profileRepositoryImpl struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) profile.ProfileRepository {
	return &profileRepositoryImpl{db: db}
}

// GetByHRID implements profile.ProfileRepository.
func (p *profileRepositoryImpl) GetByHRID(ctx context.Context, hrID string) (profile.AdminProfile, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT hr_id, admin_name, organization_name, created_at, updated_at
		FROM admin_profiles
		WHERE hr_id = $1
	`

	var found profile.AdminProfile
	err := q.QueryRow(ctx, query, hrID).Scan(
		&found.HRID, &found.AdminName, &found.OrganizationName,
		&found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.AdminProfile{}, profile.ErrProfileNotFound
		}
		return profile.AdminProfile{}, fmt.Errorf("failed to get profile by hr_id: %w", err)
	}

	return found, nil
}

// Create implements profile.ProfileRepository.
func (p *profileRepositoryImpl) Create(ctx context.Context, newProfile profile.AdminProfile) (profile.AdminProfile, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO admin_profiles (hr_id, admin_name, organization_name)
		VALUES ($1, $2, $3)
		RETURNING hr_id, admin_name, organization_name, created_at, updated_at
	`

	var created profile.AdminProfile
	err := q.QueryRow(ctx, query,
		newProfile.HRID, newProfile.AdminName, newProfile.OrganizationName,
	).Scan(
		&created.HRID, &created.AdminName, &created.OrganizationName,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return profile.AdminProfile{}, profile.ErrProfileExists
		}
		return profile.AdminProfile{}, fmt.Errorf("failed to create profile: %w", err)
	}

	return created, nil
}
