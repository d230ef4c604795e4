package user

import (
	"strings"

	"afyalinks/internal/entities"
)

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") || len(phone) < 8 {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidRole(role entities.RoleType) bool {
	switch role {
	case entities.RoleClinic, entities.RolePharmacy, entities.RoleDriver,
		entities.RoleHealthWorker, entities.RoleAdmin:
		return true
	default:
		return false
	}
}
