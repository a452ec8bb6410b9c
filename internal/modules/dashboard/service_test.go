package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/vendor-panel/internal/modules/store"
	"github.com/georgemunganga/vendor-panel/internal/modules/vendor"
)

func newTestService() (Service, *store.Store) {
	st := store.New(vendor.SeedVendors())
	return NewService(st), st
}

func acme() vendor.Fields {
	return vendor.Fields{BrandName: "Acme", ContactPerson: "X", Phone: "000"}
}

func TestService_Snapshot(t *testing.T) {
	svc, _ := newTestService()

	snap := svc.Snapshot()
	assert.Len(t, snap.FilteredVendors, 4)
	assert.Equal(t, "4 items found.", snap.ItemsFound)
	assert.Nil(t, snap.SelectedVendor)
	assert.Nil(t, snap.Form)

	snap = svc.Dispatch(store.SetSearchQuery{Query: "steel"})
	require.Len(t, snap.FilteredVendors, 1)
	assert.Equal(t, "Mobarakeh Steel", snap.FilteredVendors[0].BrandName)
	assert.Equal(t, "1 item found.", snap.ItemsFound)
}

func TestService_CreateFlow(t *testing.T) {
	svc, _ := newTestService()

	snap, err := svc.OpenEdit(nil)
	require.NoError(t, err)
	require.NotNil(t, snap.Form)
	assert.Equal(t, vendor.NewFields(), *snap.Form)

	snap, err = svc.SubmitForm(acme())
	require.NoError(t, err)
	require.Len(t, snap.State.Vendors, 5)
	assert.Equal(t, "Acme", snap.State.Vendors[4].BrandName)
	assert.Equal(t, store.ModalNone, snap.State.Modal.Kind())
	assert.Nil(t, snap.Form)
}

func TestService_EditFlow(t *testing.T) {
	svc, _ := newTestService()
	id := int64(3)

	snap, err := svc.OpenEdit(&id)
	require.NoError(t, err)
	require.NotNil(t, snap.Form)
	assert.Equal(t, "Ofogh Fartak Group", snap.Form.BrandName)

	fields := *snap.Form
	fields.Phone = "021-99999999"
	snap, err = svc.SubmitForm(fields)
	require.NoError(t, err)
	require.Len(t, snap.State.Vendors, 4)
	assert.Equal(t, int64(3), snap.State.Vendors[2].ID)
	assert.Equal(t, "021-99999999", snap.State.Vendors[2].Phone)
	assert.False(t, snap.State.Modal.IsAddEditOpen())
}

func TestService_DeleteFlow(t *testing.T) {
	svc, _ := newTestService()
	svc.Dispatch(store.SelectVendor{ID: 1})

	snap, err := svc.OpenDelete(1)
	require.NoError(t, err)
	assert.True(t, snap.State.Modal.IsDeleteOpen())
	require.NotNil(t, snap.SelectedVendor)

	snap, err = svc.ConfirmDelete()
	require.NoError(t, err)
	assert.Len(t, snap.State.Vendors, 3)
	assert.False(t, snap.State.Modal.IsDeleteOpen())
	assert.Nil(t, snap.State.Modal.DeleteTarget())
	assert.Nil(t, snap.SelectedVendor)
}

func TestService_Errors(t *testing.T) {
	svc, _ := newTestService()
	missing := int64(77)

	_, err := svc.OpenEdit(&missing)
	assert.ErrorIs(t, err, ErrVendorNotFound)

	_, err = svc.OpenDelete(missing)
	assert.ErrorIs(t, err, ErrVendorNotFound)

	_, err = svc.SubmitForm(acme())
	assert.ErrorIs(t, err, ErrModalNotOpen)

	_, err = svc.ConfirmDelete()
	assert.ErrorIs(t, err, ErrModalNotOpen)

	svc.OpenEdit(nil)
	_, err = svc.SubmitForm(vendor.Fields{ContactPerson: "X", Phone: "1"})
	assert.ErrorIs(t, err, ErrMissingField)
	assert.True(t, svc.Snapshot().State.Modal.IsAddEditOpen(), "form stays open on validation failure")
}

func TestNewService_RequiresStore(t *testing.T) {
	assert.Panics(t, func() { NewService(nil) })
	assert.Panics(t, func() { NewService(&store.Store{}) })
}
