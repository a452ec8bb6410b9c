package store

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/vendor-panel/internal/modules/notify"
	"github.com/georgemunganga/vendor-panel/internal/modules/vendor"
)

type recordingNotifier struct {
	mu    sync.Mutex
	kinds []notify.Kind
	msgs  []string
}

func (r *recordingNotifier) Notify(kind notify.Kind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds = append(r.kinds, kind)
	r.msgs = append(r.msgs, message)
}

type countingObserver struct{ types []Type }

func (o *countingObserver) Observe(c Change) { o.types = append(o.types, c.Action.Type()) }

func TestStore_DispatchAndSnapshot(t *testing.T) {
	s := New(vendor.SeedVendors())

	next := s.Dispatch(SetSearchQuery{Query: "steel"})
	assert.Equal(t, "steel", next.SearchQuery)
	assert.Equal(t, next, s.Snapshot())
}

func TestStore_Notifications(t *testing.T) {
	rec := &recordingNotifier{}
	s := New(vendor.SeedVendors(), WithNotifier(rec))

	st := s.Dispatch(AddVendor{Fields: acmeFields()})
	added := st.Vendors[len(st.Vendors)-1]
	added.Phone = "111"
	s.Dispatch(UpdateVendor{Vendor: added})
	s.Dispatch(DeleteVendor{ID: added.ID})

	// Misses and UI-only actions stay quiet.
	s.Dispatch(UpdateVendor{Vendor: acmeFields().WithID(9999)})
	s.Dispatch(DeleteVendor{ID: 9999})
	s.Dispatch(SelectVendor{ID: 1})
	s.Dispatch(CloseModals{})

	assert.Equal(t, []notify.Kind{notify.KindSuccess, notify.KindSuccess, notify.KindError}, rec.kinds)
	assert.Equal(t, []string{
		notify.MessageVendorAdded,
		notify.MessageVendorUpdated,
		notify.MessageVendorDeleted,
	}, rec.msgs)
}

func TestStore_SubscribeAndUnsubscribe(t *testing.T) {
	s := New(vendor.SeedVendors())

	var changes []Change
	unsubscribe := s.Subscribe(func(c Change) { changes = append(changes, c) })

	s.Dispatch(SelectVendor{ID: 2})
	s.Dispatch(AddVendor{Fields: acmeFields()})
	require.Len(t, changes, 2)
	assert.Equal(t, TypeSelectVendor, changes[0].Action.Type())
	assert.False(t, changes[0].VendorsChanged())
	assert.True(t, changes[1].VendorsChanged())
	assert.Len(t, changes[1].Prev.Vendors, 4)
	assert.Len(t, changes[1].Next.Vendors, 5)

	unsubscribe()
	s.Dispatch(CloseModals{})
	assert.Len(t, changes, 2)
}

func TestStore_Observer(t *testing.T) {
	obs := &countingObserver{}
	s := New(nil, WithObserver(obs))
	s.Dispatch(OpenAddEditModal{})
	s.Dispatch(CloseModals{})
	assert.Equal(t, []Type{TypeOpenAddEditModal, TypeCloseModals}, obs.types)
}

func TestStore_LogsDispatch(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := New(nil, WithLogger(logger))

	s.Dispatch(SetSearchQuery{Query: "a"})
	assert.Contains(t, buf.String(), "action=SET_SEARCH_QUERY")
}

func TestStore_NilActionIsIgnored(t *testing.T) {
	s := New(vendor.SeedVendors())
	before := s.Snapshot()
	assert.Equal(t, before, s.Dispatch(nil))
}

func TestStore_ConcurrentAddsStayUnique(t *testing.T) {
	s := New(vendor.SeedVendors())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				s.Dispatch(AddVendor{Fields: acmeFields()})
			}
		}()
	}
	wg.Wait()

	st := s.Snapshot()
	require.Len(t, st.Vendors, 1004)
	seen := make(map[int64]bool)
	for _, v := range st.Vendors {
		require.False(t, seen[v.ID])
		seen[v.ID] = true
	}
}

func TestStore_UninitialisedPanics(t *testing.T) {
	var zero Store
	assert.Panics(t, func() { zero.Snapshot() })
	assert.Panics(t, func() { zero.Dispatch(CloseModals{}) })

	var nilStore *Store
	assert.Panics(t, func() { nilStore.Snapshot() })
	assert.Panics(t, func() { MustBeReady(nil, "test") })
	assert.NotPanics(t, func() { MustBeReady(New(nil), "test") })
}

func TestStore_CloseAfterDelete(t *testing.T) {
	s := New(vendor.SeedVendors())
	x := s.Snapshot().Vendors[0]

	s.Dispatch(SelectVendor{ID: x.ID})
	s.Dispatch(OpenDeleteModal{Vendor: x})
	s.Dispatch(DeleteVendor{ID: x.ID})
	st := s.Dispatch(CloseModals{})

	assert.False(t, st.Modal.IsAddEditOpen())
	assert.False(t, st.Modal.IsDeleteOpen())
	assert.Nil(t, st.Modal.EditTarget())
	assert.Nil(t, st.Modal.DeleteTarget())
	require.NotNil(t, st.SelectedVendorID)
	for _, v := range st.Vendors {
		assert.NotEqual(t, x.ID, v.ID)
	}
}
