package invoice_verify_post

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

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
	invoiceID := mux.Vars(r)["id"]

	err := h.service.VerifyPayment(r.Context(), invoiceID)
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
