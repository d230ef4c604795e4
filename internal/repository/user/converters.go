package user

import (
	"github.com/AlekSi/pointer"

	"afyalinks/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	return &entities.User{
		ID:        u.ID,
		Name:      pointer.GetString(u.Name),
		Email:     pointer.GetString(u.Email),
		Phone:     u.Phone,
		Role:      entities.RoleType(u.Role),
		Verified:  u.Verified,
		CreatedAt: u.CreatedAt,
	}
}

func ToDomainList(usersDB []UserDB) []entities.User {
	if len(usersDB) == 0 {
		return []entities.User{}
	}

	result := make([]entities.User, len(usersDB))
	for i, userDB := range usersDB {
		result[i] = *ToDomain(&userDB)
	}
	return result
}

func ToDomainDriverProfile(p *DriverProfileDB) *entities.DriverProfile {
	if p == nil {
		return nil
	}

	return &entities.DriverProfile{
		UserID:         p.UserID,
		Region:         pointer.GetString(p.Region),
		AvailableHours: pointer.GetString(p.AvailableHours),
	}
}

func ToDomainClinicProfile(p *ClinicProfileDB) *entities.ClinicProfile {
	if p == nil {
		return nil
	}

	return &entities.ClinicProfile{
		UserID:         p.UserID,
		BusinessName:   pointer.GetString(p.BusinessName),
		Address:        pointer.GetString(p.Address),
		ContactPhone:   pointer.GetString(p.ContactPhone),
		BusinessRegURL: pointer.GetString(p.BusinessRegURL),
	}
}

func ToDomainPharmacyProfile(p *PharmacyProfileDB) *entities.PharmacyProfile {
	if p == nil {
		return nil
	}

	return &entities.PharmacyProfile{
		UserID:             p.UserID,
		BusinessName:       pointer.GetString(p.BusinessName),
		Address:            pointer.GetString(p.Address),
		ContactPhone:       pointer.GetString(p.ContactPhone),
		BusinessRegURL:     pointer.GetString(p.BusinessRegURL),
		PharmacyLicenseURL: pointer.GetString(p.PharmacyLicenseURL),
	}
}
