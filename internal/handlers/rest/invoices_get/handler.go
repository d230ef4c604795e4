package invoices_get

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

// ServeHTTP lists invoices: pharmacies see only their own, admins all.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var pharmacyID *string
	switch claims.Role {
	case entities.RolePharmacy:
		pharmacyID = &claims.UserID
	case entities.RoleAdmin:
	default:
		w.WriteHeader(http.StatusForbidden)
		return
	}

	invoices, err := h.service.ListInvoices(r.Context(), pharmacyID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromInvoiceList(invoices))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
