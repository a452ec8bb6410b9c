package view

import (
	"sync"

	"github.com/georgemunganga/vendor-panel/internal/modules/store"
	"github.com/georgemunganga/vendor-panel/internal/modules/vendor"
)

type filterKey struct {
	version uint64
	query   string
}

type selectionKey struct {
	version  uint64
	selected int64
	hasID    bool
}

// Selectors memoises the derived views. Each projection is recomputed only
// when its key changes; otherwise the previous result is returned as-is,
// so callers can compare by identity to skip redraws.
type Selectors struct {
	mu sync.Mutex

	filterValid bool
	filterKey   filterKey
	filtered    []vendor.Vendor

	selectionValid bool
	selectionKey   selectionKey
	selected       *vendor.Vendor

	recomputes int
}

// NewSelectors returns an empty memo.
func NewSelectors() *Selectors {
	return &Selectors{}
}

// FilteredVendors is FilterVendors memoised on (VendorsVersion, SearchQuery).
func (sel *Selectors) FilteredVendors(s store.State) []vendor.Vendor {
	key := filterKey{version: s.VendorsVersion, query: s.SearchQuery}

	sel.mu.Lock()
	defer sel.mu.Unlock()
	if sel.filterValid && sel.filterKey == key {
		return sel.filtered
	}
	sel.filtered = FilterVendors(s.Vendors, s.SearchQuery)
	sel.filterKey = key
	sel.filterValid = true
	sel.recomputes++
	return sel.filtered
}

// SelectedVendor is FindVendor memoised on (VendorsVersion, SelectedVendorID).
func (sel *Selectors) SelectedVendor(s store.State) *vendor.Vendor {
	key := selectionKey{version: s.VendorsVersion}
	if s.SelectedVendorID != nil {
		key.selected = *s.SelectedVendorID
		key.hasID = true
	}

	sel.mu.Lock()
	defer sel.mu.Unlock()
	if sel.selectionValid && sel.selectionKey == key {
		return sel.selected
	}
	sel.selected = FindVendor(s.Vendors, s.SelectedVendorID)
	sel.selectionKey = key
	sel.selectionValid = true
	sel.recomputes++
	return sel.selected
}
