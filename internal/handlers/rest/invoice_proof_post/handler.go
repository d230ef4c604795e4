package invoice_proof_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"afyalinks/internal/dto"
	"afyalinks/internal/pkg/middlewares/auth"
	"afyalinks/internal/service/invoice"
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

	invoiceID := mux.Vars(r)["id"]

	var proofDTO dto.InvoiceProofRequest
	err := json.NewDecoder(r.Body).Decode(&proofDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.SubmitPaymentProof(r.Context(), invoiceID, claims.UserID, proofDTO.PaymentProofURL)
	if err != nil {
		switch {
		case errors.Is(err, invoice.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, invoice.ErrInvoiceNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
