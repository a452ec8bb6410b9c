package dashboard

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/vendor-panel/internal/modules/store"
	"github.com/georgemunganga/vendor-panel/internal/modules/vendor"
)

// Handler exposes the dashboard HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler {
	if service == nil {
		panic("dashboard: NewHandler requires a service")
	}
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/dashboard", func(r chi.Router) {
		r.Get("/", h.getSnapshot)                         // GET    /api/v1/dashboard
		r.Post("/actions", h.dispatchAction)              // POST   /api/v1/dashboard/actions
		r.Put("/search", h.setSearch)                     // PUT    /api/v1/dashboard/search
		r.Post("/select/{id}", h.selectVendor)            // POST   /api/v1/dashboard/select/{id}
		r.Post("/vendors", h.addVendor)                   // POST   /api/v1/dashboard/vendors
		r.Put("/vendors/{id}", h.updateVendor)            // PUT    /api/v1/dashboard/vendors/{id}
		r.Delete("/vendors/{id}", h.deleteVendor)         // DELETE /api/v1/dashboard/vendors/{id}
		r.Post("/modals/add-edit", h.openAddEdit)         // POST   /api/v1/dashboard/modals/add-edit?vendor_id=2
		r.Post("/modals/delete/{id}", h.openDelete)       // POST   /api/v1/dashboard/modals/delete/{id}
		r.Post("/modals/submit", h.submitForm)            // POST   /api/v1/dashboard/modals/submit
		r.Post("/modals/confirm-delete", h.confirmDelete) // POST   /api/v1/dashboard/modals/confirm-delete
		r.Delete("/modals", h.closeModals)                // DELETE /api/v1/dashboard/modals
	})
}

func (h *Handler) getSnapshot(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Snapshot())
}

func (h *Handler) dispatchAction(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	action, err := store.DecodeAction(body)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, h.service.Dispatch(action))
}

func (h *Handler) setSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, h.service.Dispatch(store.SetSearchQuery{Query: req.Query}))
}

func (h *Handler) selectVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, h.service.Dispatch(store.SelectVendor{ID: id}))
}

func (h *Handler) addVendor(w http.ResponseWriter, r *http.Request) {
	var fields vendor.Fields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, h.service.Dispatch(store.AddVendor{Fields: fields}))
}

func (h *Handler) updateVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}
	var fields vendor.Fields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, h.service.Dispatch(store.UpdateVendor{Vendor: fields.WithID(id)}))
}

func (h *Handler) deleteVendor(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, h.service.Dispatch(store.DeleteVendor{ID: id}))
}

func (h *Handler) openAddEdit(w http.ResponseWriter, r *http.Request) {
	var id *int64
	if raw := r.URL.Query().Get("vendor_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respond(w, http.StatusBadRequest, map[string]string{"error": "invalid vendor_id"})
			return
		}
		id = &parsed
	}
	snap, err := h.service.OpenEdit(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, snap)
}

func (h *Handler) openDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := vendorID(w, r)
	if !ok {
		return
	}
	snap, err := h.service.OpenDelete(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, snap)
}

func (h *Handler) submitForm(w http.ResponseWriter, r *http.Request) {
	var fields vendor.Fields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	snap, err := h.service.SubmitForm(fields)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, snap)
}

func (h *Handler) confirmDelete(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.ConfirmDelete()
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, snap)
}

func (h *Handler) closeModals(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Dispatch(store.CloseModals{}))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func vendorID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid vendor id"})
		return 0, false
	}
	return id, true
}

func respondError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrVendorNotFound):
		code = http.StatusNotFound
	case errors.Is(err, ErrModalNotOpen):
		code = http.StatusConflict
	case errors.Is(err, ErrMissingField):
		code = http.StatusUnprocessableEntity
	}
	respond(w, code, map[string]string{"error": err.Error()})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
