package order_confirm_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"afyalinks/internal/dto"
	"afyalinks/internal/pkg/middlewares/auth"
	"afyalinks/internal/service/confirmation"
	"afyalinks/internal/service/order"
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
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	orderID := mux.Vars(r)["id"]

	var confirmDTO dto.OrderConfirmRequest
	err := json.NewDecoder(r.Body).Decode(&confirmDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.ConfirmDeliveryByClinic(r.Context(), orderID, claims.UserID, confirmDTO.OrderCode)
	if err != nil {
		switch {
		case errors.Is(err, confirmation.ErrMissingOrderCode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, confirmation.ErrOrderNotFound),
			errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, confirmation.ErrInvalidOrderCode):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, confirmation.ErrAlreadyDelivered):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromOrder(orderEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
