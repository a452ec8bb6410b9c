package store

import "github.com/georgemunganga/vendor-panel/internal/modules/vendor"

// Apply returns the state that results from applying a to s. It is pure:
// s is never modified, and the vendor slice is only replaced when the
// collection actually changes.
func Apply(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.reduce(vendorReducer{}, s)
}

type vendorReducer struct{}

var _ Reducer = vendorReducer{}

func (vendorReducer) SetSearchQuery(s State, a SetSearchQuery) State {
	s.SearchQuery = a.Query
	return s
}

func (vendorReducer) SelectVendor(s State, a SelectVendor) State {
	id := a.ID
	s.SelectedVendorID = &id
	return s
}

func (vendorReducer) AddVendor(s State, a AddVendor) State {
	id := s.nextID
	if id <= 0 {
		id = 1
	}
	// Ids come from a counter that only moves forward, so ids of deleted
	// vendors are never handed out again.
	for _, v := range s.Vendors {
		if v.ID >= id {
			id = v.ID + 1
		}
	}

	vendors := make([]vendor.Vendor, len(s.Vendors), len(s.Vendors)+1)
	copy(vendors, s.Vendors)
	s.Vendors = append(vendors, a.Fields.WithID(id))
	s.VendorsVersion++
	s.nextID = id + 1
	return s
}

func (vendorReducer) UpdateVendor(s State, a UpdateVendor) State {
	idx := indexOf(s.Vendors, a.Vendor.ID)
	if idx < 0 {
		return s
	}
	vendors := make([]vendor.Vendor, len(s.Vendors))
	copy(vendors, s.Vendors)
	vendors[idx] = a.Vendor
	s.Vendors = vendors
	s.VendorsVersion++
	return s
}

func (vendorReducer) DeleteVendor(s State, a DeleteVendor) State {
	idx := indexOf(s.Vendors, a.ID)
	if idx < 0 {
		return s
	}
	vendors := make([]vendor.Vendor, 0, len(s.Vendors)-1)
	vendors = append(vendors, s.Vendors[:idx]...)
	vendors = append(vendors, s.Vendors[idx+1:]...)
	s.Vendors = vendors
	s.VendorsVersion++
	return s
}

func (vendorReducer) OpenAddEditModal(s State, a OpenAddEditModal) State {
	s.Modal = AddEditModal(a.Vendor)
	return s
}

func (vendorReducer) OpenDeleteModal(s State, a OpenDeleteModal) State {
	s.Modal = DeleteModal(a.Vendor)
	return s
}

func (vendorReducer) CloseModals(s State, _ CloseModals) State {
	s.Modal = NoModal()
	return s
}

func indexOf(vendors []vendor.Vendor, id int64) int {
	for i, v := range vendors {
		if v.ID == id {
			return i
		}
	}
	return -1
}
