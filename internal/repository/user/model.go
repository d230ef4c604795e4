package user

import "time"

type UserDB struct {
	ID        string
	Name      *string
	Email     *string
	Phone     string
	Role      string
	Verified  bool
	CreatedAt time.Time
}

type DriverProfileDB struct {
	UserID         string
	Region         *string
	AvailableHours *string
}

type ClinicProfileDB struct {
	UserID         string
	BusinessName   *string
	Address        *string
	ContactPhone   *string
	BusinessRegURL *string
}

type PharmacyProfileDB struct {
	UserID             string
	BusinessName       *string
	Address            *string
	ContactPhone       *string
	BusinessRegURL     *string
	PharmacyLicenseURL *string
}
