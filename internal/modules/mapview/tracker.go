package mapview

import (
	"log/slog"
	"sync"

	"github.com/georgemunganga/vendor-panel/internal/modules/store"
	"github.com/georgemunganga/vendor-panel/internal/modules/vendor"
	"github.com/georgemunganga/vendor-panel/internal/modules/view"
)

// Tracker moves the camera when the selected vendor changes. It is the
// boundary between store state and the imperative fly-to call: the camera
// moves once per change, never on plain re-reads.
type Tracker struct {
	store     *store.Store
	selectors *view.Selectors
	logger    *slog.Logger

	mu     sync.RWMutex
	camera Camera
	last   *vendor.Vendor

	unsubscribe func()
}

// NewTracker subscribes to st. Call Close to stop tracking.
func NewTracker(st *store.Store, logger *slog.Logger) *Tracker {
	store.MustBeReady(st, "mapview.NewTracker")
	if logger == nil {
		logger = slog.Default()
	}
	t := &Tracker{
		store:     st,
		selectors: view.NewSelectors(),
		logger:    logger,
		camera:    Camera{Center: vendor.DefaultLocation, Zoom: DefaultZoom},
	}
	t.sync(st.Snapshot())
	t.unsubscribe = st.Subscribe(func(c store.Change) { t.sync(c.Next) })
	return t
}

// Close stops listening to the store.
func (t *Tracker) Close() {
	if t.unsubscribe != nil {
		t.unsubscribe()
	}
}

// Camera returns the current viewport.
func (t *Tracker) Camera() Camera {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.camera
}

// View returns the camera together with markers for every vendor.
func (t *Tracker) View() View {
	return View{Camera: t.Camera(), Markers: Markers(t.store.Snapshot().Vendors)}
}

func (t *Tracker) sync(s store.State) {
	selected := t.selectors.SelectedVendor(s)
	if selected == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.last != nil && t.last.ID == selected.ID && t.last.Location == selected.Location {
		return
	}
	t.flyTo(selected)
}

// flyTo must be called with mu held.
func (t *Tracker) flyTo(v *vendor.Vendor) {
	id := v.ID
	t.camera.Center = v.Location
	t.camera.Zoom = FocusZoom
	t.camera.VendorID = &id
	t.camera.Moves++
	last := *v
	t.last = &last

	t.logger.Debug("Map camera moved",
		slog.Int64("vendor_id", v.ID),
		slog.Float64("lat", v.Location.Lat),
		slog.Float64("lng", v.Location.Lng))
}
