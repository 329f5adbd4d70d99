package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Sarhan619/grocery-app/internal/core/domain"
	"github.com/Sarhan619/grocery-app/internal/core/port"
)

const sessionHeader = "X-Session-ID"

// GET /v1/cart
// POST /v1/cart/items {"product_id": n}
// PUT /v1/cart/items/{id} {"quantity": n}
// DELETE /v1/cart/items/{id}
// DELETE /v1/cart

type CartHandler struct {
	cart     port.CartOperator
	sessions port.SessionIssuer
}

func RegisterCart(
	mux *http.ServeMux, cart port.CartOperator, sessions port.SessionIssuer,
) {
	h := CartHandler{cart, sessions}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.AddItem)
	mux.HandleFunc("PUT /v1/cart/items/{id}", h.SetQuantity)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.RemoveItem)
	mux.HandleFunc("DELETE /v1/cart", h.ClearCart)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	sessionID := h.session(r)
	snap, err := h.cart.GetCart(r.Context(), sessionID)
	if err != nil {
		writeErr(w, err)
		log.Error("failed to get cart", "err", err)
		return
	}

	h.respond(w, http.StatusOK, sessionID, snap)
}

func (h CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.AddItem"
	log := slog.With("op", op)

	var body AddCartItem
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	sessionID := h.session(r)
	snap, err := h.cart.AddItem(r.Context(), sessionID, body.ProductID)
	if err != nil {
		writeErr(w, err)
		log.Warn("failed to add item", "productID", body.ProductID, "err", err)
		return
	}

	h.respond(w, http.StatusOK, sessionID, snap)
}

func (h CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.SetQuantity"
	log := slog.With("op", op)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var body SetCartQuantity
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	sessionID := h.session(r)
	snap, err := h.cart.SetQuantity(r.Context(), sessionID, id, body.Quantity)
	if err != nil {
		writeErr(w, err)
		log.Error("failed to set quantity", "productID", id, "err", err)
		return
	}

	h.respond(w, http.StatusOK, sessionID, snap)
}

func (h CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.RemoveItem"
	log := slog.With("op", op)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	sessionID := h.session(r)
	snap, err := h.cart.RemoveItem(r.Context(), sessionID, id)
	if err != nil {
		writeErr(w, err)
		log.Error("failed to remove item", "productID", id, "err", err)
		return
	}

	h.respond(w, http.StatusOK, sessionID, snap)
}

func (h CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.ClearCart"
	log := slog.With("op", op)

	sessionID := h.session(r)
	snap, err := h.cart.ClearCart(r.Context(), sessionID)
	if err != nil {
		writeErr(w, err)
		log.Error("failed to clear cart", "err", err)
		return
	}

	h.respond(w, http.StatusOK, sessionID, snap)
}

// session returns the caller's session id, issuing one for clients
// arriving without the header.
func (h CartHandler) session(r *http.Request) string {
	if id := r.Header.Get(sessionHeader); id != "" {
		return id
	}
	return h.sessions.IssueSession()
}

func (h CartHandler) respond(
	w http.ResponseWriter, status int, sessionID string, snap domain.CartSnapshot,
) {
	w.Header().Set(sessionHeader, sessionID)
	writeJSON(w, status, toCart(sessionID, snap))
}
