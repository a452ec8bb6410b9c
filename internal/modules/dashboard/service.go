package dashboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/georgemunganga/vendor-panel/internal/modules/store"
	"github.com/georgemunganga/vendor-panel/internal/modules/vendor"
	"github.com/georgemunganga/vendor-panel/internal/modules/view"
)

var (
	ErrVendorNotFound = errors.New("vendor not found")
	ErrModalNotOpen   = errors.New("modal is not open")
	ErrMissingField   = errors.New("required field missing")
)

// Service maps panel gestures onto store actions.
type Service interface {
	// Snapshot returns the current state with its derived views.
	Snapshot() Snapshot

	// Dispatch applies a single action.
	Dispatch(a store.Action) Snapshot

	// OpenEdit opens the add/edit form, in edit mode for id or create mode when id is nil.
	OpenEdit(id *int64) (Snapshot, error)

	// OpenDelete opens the delete confirmation for id.
	OpenDelete(id int64) (Snapshot, error)

	// SubmitForm adds or updates a vendor depending on the form mode, then closes the form.
	SubmitForm(fields vendor.Fields) (Snapshot, error)

	// ConfirmDelete deletes the vendor awaiting confirmation, then closes the dialog.
	ConfirmDelete() (Snapshot, error)
}

type service struct {
	store     *store.Store
	selectors *view.Selectors
}

// NewService creates a dashboard service over st. It panics when st was not
// built with store.New.
func NewService(st *store.Store) Service {
	store.MustBeReady(st, "dashboard.NewService")
	return &service{store: st, selectors: view.NewSelectors()}
}

func (s *service) Snapshot() Snapshot {
	return s.snapshot(s.store.Snapshot())
}

func (s *service) Dispatch(a store.Action) Snapshot {
	return s.snapshot(s.store.Dispatch(a))
}

func (s *service) OpenEdit(id *int64) (Snapshot, error) {
	if id == nil {
		return s.Dispatch(store.OpenAddEditModal{}), nil
	}
	v := view.FindVendor(s.store.Snapshot().Vendors, id)
	if v == nil {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrVendorNotFound, *id)
	}
	return s.Dispatch(store.OpenAddEditModal{Vendor: v}), nil
}

func (s *service) OpenDelete(id int64) (Snapshot, error) {
	v := view.FindVendor(s.store.Snapshot().Vendors, &id)
	if v == nil {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrVendorNotFound, id)
	}
	return s.Dispatch(store.OpenDeleteModal{Vendor: *v}), nil
}

func (s *service) SubmitForm(fields vendor.Fields) (Snapshot, error) {
	if err := validateFields(fields); err != nil {
		return Snapshot{}, err
	}
	modal := s.store.Snapshot().Modal
	if !modal.IsAddEditOpen() {
		return Snapshot{}, fmt.Errorf("%w: add/edit form", ErrModalNotOpen)
	}

	if target := modal.EditTarget(); target != nil {
		s.store.Dispatch(store.UpdateVendor{Vendor: fields.WithID(target.ID)})
	} else {
		s.store.Dispatch(store.AddVendor{Fields: fields})
	}
	return s.Dispatch(store.CloseModals{}), nil
}

func (s *service) ConfirmDelete() (Snapshot, error) {
	target := s.store.Snapshot().Modal.DeleteTarget()
	if target == nil {
		return Snapshot{}, fmt.Errorf("%w: delete confirmation", ErrModalNotOpen)
	}
	s.store.Dispatch(store.DeleteVendor{ID: target.ID})
	return s.Dispatch(store.CloseModals{}), nil
}

func (s *service) snapshot(st store.State) Snapshot {
	filtered := s.selectors.FilteredVendors(st)
	snap := Snapshot{
		State:           st,
		FilteredVendors: filtered,
		SelectedVendor:  s.selectors.SelectedVendor(st),
		ItemsFound:      view.ItemsFound(len(filtered)),
	}
	if st.Modal.IsAddEditOpen() {
		form := vendor.NewFields()
		if target := st.Modal.EditTarget(); target != nil {
			form = target.Fields()
		}
		snap.Form = &form
	}
	return snap
}

// validateFields mirrors the form's required inputs. The logo is optional.
func validateFields(f vendor.Fields) error {
	switch {
	case strings.TrimSpace(f.BrandName) == "":
		return fmt.Errorf("%w: brandName", ErrMissingField)
	case strings.TrimSpace(f.ContactPerson) == "":
		return fmt.Errorf("%w: contactPerson", ErrMissingField)
	case strings.TrimSpace(f.Phone) == "":
		return fmt.Errorf("%w: phone", ErrMissingField)
	}
	return nil
}
