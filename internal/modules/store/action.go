package store

import "github.com/georgemunganga/vendor-panel/internal/modules/vendor"

// Type is the wire tag of an action.
type Type string

const (
	TypeSetSearchQuery   Type = "SET_SEARCH_QUERY"
	TypeSelectVendor     Type = "SELECT_VENDOR"
	TypeAddVendor        Type = "ADD_VENDOR"
	TypeUpdateVendor     Type = "UPDATE_VENDOR"
	TypeDeleteVendor     Type = "DELETE_VENDOR"
	TypeOpenAddEditModal Type = "OPEN_ADD_EDIT_MODAL"
	TypeOpenDeleteModal  Type = "OPEN_DELETE_MODAL"
	TypeCloseModals      Type = "CLOSE_MODALS"
)

// Action is a requested state change. The set of actions is closed: the
// interface can only be satisfied inside this package, and every action
// is routed through a Reducer, which has one method per variant.
type Action interface {
	Type() Type
	reduce(r Reducer, s State) State
}

// Reducer handles each action variant. Adding a variant adds a method here,
// so every implementation stops compiling until it handles the new case.
type Reducer interface {
	SetSearchQuery(s State, a SetSearchQuery) State
	SelectVendor(s State, a SelectVendor) State
	AddVendor(s State, a AddVendor) State
	UpdateVendor(s State, a UpdateVendor) State
	DeleteVendor(s State, a DeleteVendor) State
	OpenAddEditModal(s State, a OpenAddEditModal) State
	OpenDeleteModal(s State, a OpenDeleteModal) State
	CloseModals(s State, a CloseModals) State
}

// SetSearchQuery replaces the list filter. The query is used verbatim.
type SetSearchQuery struct {
	Query string
}

// SelectVendor marks a vendor as the one of interest. The id need not exist.
type SelectVendor struct {
	ID int64
}

// AddVendor appends a new vendor; the store assigns its id.
type AddVendor struct {
	Fields vendor.Fields
}

// UpdateVendor replaces the vendor with the same id.
type UpdateVendor struct {
	Vendor vendor.Vendor
}

// DeleteVendor removes the vendor with ID.
type DeleteVendor struct {
	ID int64
}

// OpenAddEditModal opens the add/edit form. A nil Vendor opens it in create mode.
type OpenAddEditModal struct {
	Vendor *vendor.Vendor
}

// OpenDeleteModal asks for confirmation before deleting Vendor.
type OpenDeleteModal struct {
	Vendor vendor.Vendor
}

// CloseModals closes whatever overlay is open.
type CloseModals struct{}

func (SetSearchQuery) Type() Type   { return TypeSetSearchQuery }
func (SelectVendor) Type() Type     { return TypeSelectVendor }
func (AddVendor) Type() Type        { return TypeAddVendor }
func (UpdateVendor) Type() Type     { return TypeUpdateVendor }
func (DeleteVendor) Type() Type     { return TypeDeleteVendor }
func (OpenAddEditModal) Type() Type { return TypeOpenAddEditModal }
func (OpenDeleteModal) Type() Type  { return TypeOpenDeleteModal }
func (CloseModals) Type() Type      { return TypeCloseModals }

func (a SetSearchQuery) reduce(r Reducer, s State) State   { return r.SetSearchQuery(s, a) }
func (a SelectVendor) reduce(r Reducer, s State) State     { return r.SelectVendor(s, a) }
func (a AddVendor) reduce(r Reducer, s State) State        { return r.AddVendor(s, a) }
func (a UpdateVendor) reduce(r Reducer, s State) State     { return r.UpdateVendor(s, a) }
func (a DeleteVendor) reduce(r Reducer, s State) State     { return r.DeleteVendor(s, a) }
func (a OpenAddEditModal) reduce(r Reducer, s State) State { return r.OpenAddEditModal(s, a) }
func (a OpenDeleteModal) reduce(r Reducer, s State) State  { return r.OpenDeleteModal(s, a) }
func (a CloseModals) reduce(r Reducer, s State) State      { return r.CloseModals(s, a) }
