package mapview

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the map surface.
type Handler struct{ tracker *Tracker }

func NewHandler(tracker *Tracker) *Handler {
	if tracker == nil {
		panic("mapview: NewHandler requires a tracker")
	}
	return &Handler{tracker: tracker}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/map", func(r chi.Router) {
		r.Get("/", h.getView)         // GET /api/v1/map
		r.Get("/camera", h.getCamera) // GET /api/v1/map/camera
	})
}

func (h *Handler) getView(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.tracker.View())
}

func (h *Handler) getCamera(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.tracker.Camera())
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
