package clinic_profile_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"afyalinks/internal/dto"
	"afyalinks/internal/entities"
	"afyalinks/internal/pkg/middlewares/auth"
	"afyalinks/internal/service/user"
)

// Handler stores the calling clinic's business profile. Documents are
// submitted as links; the upload itself happens against object storage
// before this call, the same flow as invoice payment proofs.
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

	var profileDTO dto.ClinicProfileSetup
	err := json.NewDecoder(r.Body).Decode(&profileDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.SetupClinicProfile(r.Context(), entities.ClinicProfile{
		UserID:         claims.UserID,
		BusinessName:   profileDTO.BusinessName,
		Address:        profileDTO.Address,
		ContactPhone:   profileDTO.ContactPhone,
		BusinessRegURL: profileDTO.BusinessRegURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
