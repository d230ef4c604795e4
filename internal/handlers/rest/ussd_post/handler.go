package ussd_post

import (
	"net/http"

	"afyalinks/pkg/logger"
)

// systemError closes the USSD session when something broke on our side.
const systemError = "END A system error occurred. Please try again later."

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

// ServeHTTP speaks the Africa's Talking USSD callback protocol: a
// form-encoded POST per menu step, a text/plain response framed with
// CON or END. The response status is always 200, errors included,
// because the gateway treats anything else as a dead session.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	phone := r.FormValue("phoneNumber")
	text := r.FormValue("text")

	response, err := h.service.Handle(r.Context(), phone, text)
	if err != nil {
		h.log.With(
			logger.NewField("phone", phone),
			logger.NewField("error", err),
		).Error("ussd session failed")
		response = systemError
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(response)); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write ussd response")
	}
}
