package orders_get

import (
	"encoding/json"
	"net/http"

	"afyalinks/internal/dto"
	"afyalinks/internal/entities"
	"afyalinks/internal/pkg/middlewares/auth"
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

// ServeHTTP lists orders scoped to the caller: clinics see the orders they
// placed, pharmacies the orders addressed to them, admins everything.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var filter entities.OrderFilter
	switch claims.Role {
	case entities.RoleClinic, entities.RoleHealthWorker:
		filter.ClinicID = &claims.UserID
	case entities.RolePharmacy:
		filter.PharmacyID = &claims.UserID
	case entities.RoleAdmin:
	default:
		w.WriteHeader(http.StatusForbidden)
		return
	}

	if statusParam := r.URL.Query().Get("status"); statusParam != "" {
		status := entities.OrderStatusType(statusParam)
		filter.Status = &status
	}

	orders, err := h.service.ListOrders(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromOrderList(orders))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
