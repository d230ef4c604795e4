package users_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"afyalinks/internal/dto"
	"afyalinks/internal/entities"
	"afyalinks/pkg/logger"
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
	var filter entities.UserFilter

	if roleParam := r.URL.Query().Get("role"); roleParam != "" {
		role := entities.RoleType(roleParam)
		filter.Role = &role
	}
	if verifiedParam := r.URL.Query().Get("verified"); verifiedParam != "" {
		verified, err := strconv.ParseBool(verifiedParam)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		filter.Verified = &verified
	}

	users, err := h.service.ListUsers(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromUserList(users))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
