// Package view derives read-only projections from store state: the filtered
// vendor list and the selected vendor.
package view

import (
	"fmt"
	"strings"

	"github.com/georgemunganga/vendor-panel/internal/modules/vendor"
)

// FilterVendors returns the vendors whose brand name contains query,
// ignoring case, in their original order. An empty query returns vendors
// itself.
func FilterVendors(vendors []vendor.Vendor, query string) []vendor.Vendor {
	if query == "" {
		return vendors
	}
	needle := strings.ToLower(query)
	out := make([]vendor.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if strings.Contains(strings.ToLower(v.BrandName), needle) {
			out = append(out, v)
		}
	}
	return out
}

// FindVendor returns the vendor with the given id, or nil when id is unset
// or no longer present.
func FindVendor(vendors []vendor.Vendor, id *int64) *vendor.Vendor {
	if id == nil {
		return nil
	}
	for i := range vendors {
		if vendors[i].ID == *id {
			v := vendors[i]
			return &v
		}
	}
	return nil
}

// ItemsFound is the result-count label shown under the search box.
func ItemsFound(count int) string {
	if count == 1 {
		return "1 item found."
	}
	return fmt.Sprintf("%d items found.", count)
}
