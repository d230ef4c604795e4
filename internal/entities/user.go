package entities

import "time"

type User struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Role      RoleType
	Verified  bool
	CreatedAt time.Time
}

type RoleType string

const (
	RoleClinic       RoleType = "CLINIC"
	RolePharmacy     RoleType = "PHARMACY"
	RoleDriver       RoleType = "DRIVER"
	RoleHealthWorker RoleType = "HEALTH_WORKER"
	RoleAdmin        RoleType = "ADMIN"
)

func (r RoleType) String() string {
	return string(r)
}

type UserModify struct {
	ID       *string
	Name     *string
	Email    *string
	Phone    *string
	Role     *RoleType
	Verified *bool
}

// UserFilter narrows user listings. Nil fields are not applied.
type UserFilter struct {
	Role     *RoleType
	Verified *bool
}

// Profiles are dispatched by role enum, one typed struct per role,
// rather than by table-name strings.

type ClinicProfile struct {
	UserID         string
	BusinessName   string
	Address        string
	ContactPhone   string
	BusinessRegURL string
}

type PharmacyProfile struct {
	UserID             string
	BusinessName       string
	Address            string
	ContactPhone       string
	BusinessRegURL     string
	PharmacyLicenseURL string
}

type DriverProfile struct {
	UserID         string
	Region         string
	AvailableHours string // "HH:MM-HH:MM", local clock, half-open
}
