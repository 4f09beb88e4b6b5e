package profile

import "time"

// AdminProfile is one administrator's organization workspace. HRID keys the
// tenant; every employee and attendance row is scoped by it.
type AdminProfile struct {
	HRID             string
	AdminName        string
	OrganizationName string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
