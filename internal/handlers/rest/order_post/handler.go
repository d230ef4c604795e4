package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"afyalinks/internal/dto"
	"afyalinks/internal/entities"
	"afyalinks/internal/pkg/middlewares/auth"
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

	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items := make([]entities.OrderItemDraft, 0, len(orderCreateDTO.Items))
	for _, item := range orderCreateDTO.Items {
		items = append(items, entities.OrderItemDraft{
			DrugName:    item.DrugName,
			Quantity:    item.Quantity,
			PriceAgreed: item.PriceAgreed,
		})
	}

	draft := entities.OrderDraft{
		ClinicID:        claims.UserID,
		PharmacyID:      orderCreateDTO.PharmacyID,
		DeliveryAddress: orderCreateDTO.DeliveryAddress,
		Items:           items,
	}

	orderEntity, err := h.service.PlaceOrder(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrEmptyItems),
			errors.Is(err, order.ErrInvalidItem):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromOrder(orderEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
