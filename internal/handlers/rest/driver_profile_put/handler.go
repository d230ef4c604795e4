package driver_profile_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"afyalinks/internal/dto"
	"afyalinks/internal/pkg/factory/driver_availability"
	"afyalinks/internal/pkg/middlewares/auth"
	"afyalinks/internal/service/user"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var profileDTO dto.DriverProfileUpdate
	err := json.NewDecoder(r.Body).Decode(&profileDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.UpsertDriverProfile(r.Context(), claims.UserID, profileDTO.Region, profileDTO.AvailableHours)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingRequiredFields),
			errors.Is(err, driver_availability.ErrInvalidWindow):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, user.ErrNotDriver):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, user.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
