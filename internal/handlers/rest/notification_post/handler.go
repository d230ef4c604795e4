package notification_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"afyalinks/internal/dto"
	"afyalinks/internal/entities"
	"afyalinks/internal/service/notification"
	"afyalinks/internal/service/user"
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
	var notificationDTO dto.NotificationRequest
	err := json.NewDecoder(r.Body).Decode(&notificationDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	recipients, err := h.service.Broadcast(
		r.Context(),
		notificationDTO.TargetUserID,
		entities.RoleType(notificationDTO.Role),
		notificationDTO.Message,
	)
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrMissingMessage),
			errors.Is(err, notification.ErrInvalidRole):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, notification.ErrNoRecipients),
			errors.Is(err, user.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.NotificationResponse{Recipients: recipients})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
