package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Sarhan619/grocery-app/internal/core/domain"
	"github.com/Sarhan619/grocery-app/internal/core/port"
)

// POST /v1/contact JSON {"name","email","subject","message"}
// (response 202 Accepted, 400 Bad request)

type ContactHandler struct {
	contact port.ContactSubmitter
}

func RegisterContact(mux *http.ServeMux, contact port.ContactSubmitter) {
	h := ContactHandler{contact}
	mux.HandleFunc("POST /v1/contact", h.PostMessage)
}

func (h ContactHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	const op = "ContactHandler.PostMessage"
	log := slog.With("op", op)

	var body ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	err := h.contact.SubmitMessage(r.Context(), domain.ContactMessage{
		Name:    body.Name,
		Email:   body.Email,
		Subject: body.Subject,
		Message: body.Message,
	})
	if err != nil {
		writeErr(w, err)
		log.Warn("failed to submit message", "err", err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
	log.Info("contact message accepted")
}
