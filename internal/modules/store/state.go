package store

import "github.com/georgemunganga/vendor-panel/internal/modules/vendor"

// ModalKind identifies which overlay, if any, is showing.
type ModalKind string

const (
	ModalNone    ModalKind = "NONE"
	ModalAddEdit ModalKind = "ADD_EDIT"
	ModalDelete  ModalKind = "DELETE"
)

// Modal is the overlay state. Only one kind is ever active, so the edit and
// delete targets share a single field. Build values with NoModal,
// AddEditModal and DeleteModal.
type Modal struct {
	kind   ModalKind
	target *vendor.Vendor
}

// NoModal is the closed state.
func NoModal() Modal { return Modal{kind: ModalNone} }

// AddEditModal opens the form; a nil target means create mode.
func AddEditModal(target *vendor.Vendor) Modal {
	return Modal{kind: ModalAddEdit, target: cloneVendor(target)}
}

// DeleteModal opens the delete confirmation for target.
func DeleteModal(target vendor.Vendor) Modal {
	return Modal{kind: ModalDelete, target: &target}
}

func (m Modal) Kind() ModalKind {
	if m.kind == "" {
		return ModalNone
	}
	return m.kind
}

func (m Modal) IsAddEditOpen() bool { return m.kind == ModalAddEdit }
func (m Modal) IsDeleteOpen() bool  { return m.kind == ModalDelete }

// EditTarget is the vendor being edited, nil in create mode or when the form is closed.
func (m Modal) EditTarget() *vendor.Vendor {
	if m.kind != ModalAddEdit {
		return nil
	}
	return cloneVendor(m.target)
}

// DeleteTarget is the vendor awaiting delete confirmation, nil unless the delete modal is open.
func (m Modal) DeleteTarget() *vendor.Vendor {
	if m.kind != ModalDelete {
		return nil
	}
	return cloneVendor(m.target)
}

// State is the panel's single source of truth. VendorsVersion changes
// whenever Vendors does and never otherwise.
type State struct {
	Vendors          []vendor.Vendor `json:"vendors"`
	VendorsVersion   uint64          `json:"vendorsVersion"`
	SearchQuery      string          `json:"searchQuery"`
	SelectedVendorID *int64          `json:"selectedVendorId"`
	Modal            Modal           `json:"modal"`

	nextID int64
}

// NewState builds the initial state from a seed roster. The seed is copied.
func NewState(seed []vendor.Vendor) State {
	vendors := make([]vendor.Vendor, len(seed))
	copy(vendors, seed)

	var maxID int64
	for _, v := range vendors {
		if v.ID > maxID {
			maxID = v.ID
		}
	}
	return State{
		Vendors:        vendors,
		VendorsVersion: 1,
		Modal:          NoModal(),
		nextID:         maxID + 1,
	}
}

// NextID is the id the next added vendor will receive.
func (s State) NextID() int64 { return s.nextID }

func cloneVendor(v *vendor.Vendor) *vendor.Vendor {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
