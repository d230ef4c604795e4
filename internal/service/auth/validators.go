package auth

import (
	"strings"
	"unicode"

	"afyalinks/internal/entities"
)

func isValidPhone(phone string) bool {
	if !strings.HasPrefix(phone, "+") || len(phone) < 8 {
		return false
	}
	for _, r := range phone[1:] {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isValidRole(role entities.RoleType) bool {
	switch role {
	case entities.RoleClinic,
		entities.RolePharmacy,
		entities.RoleDriver,
		entities.RoleHealthWorker,
		entities.RoleAdmin:
		return true
	}
	return false
}
