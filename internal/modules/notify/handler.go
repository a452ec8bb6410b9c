package notify

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the notification feed to the toast surface.
type Handler struct{ feed *Feed }

func NewHandler(feed *Feed) *Handler {
	if feed == nil {
		panic("notify: NewHandler requires a feed")
	}
	return &Handler{feed: feed}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/api/v1/notifications", h.listNotifications) // GET /api/v1/notifications
}

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.feed.Recent())
}
