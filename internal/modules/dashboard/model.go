package dashboard

import (
	"github.com/georgemunganga/vendor-panel/internal/modules/store"
	"github.com/georgemunganga/vendor-panel/internal/modules/vendor"
)

// Snapshot is everything the list, header and modal surfaces render from.
type Snapshot struct {
	State           store.State     `json:"state"`
	FilteredVendors []vendor.Vendor `json:"filteredVendors"`
	SelectedVendor  *vendor.Vendor  `json:"selectedVendor"`
	ItemsFound      string          `json:"itemsFound"`
	// Form is what the add/edit form shows: the edit target's fields, or
	// blank fields at the default location in create mode. Nil when closed.
	Form *vendor.Fields `json:"form,omitempty"`
}

// SearchRequest is the payload for updating the search box.
type SearchRequest struct {
	Query string `json:"query"`
}
