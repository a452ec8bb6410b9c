package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/vendor-panel/internal/modules/store"
	"github.com/georgemunganga/vendor-panel/internal/modules/vendor"
)

func TestFilterVendors_Steel(t *testing.T) {
	s := store.NewState(vendor.SeedVendors())
	s = store.Apply(s, store.SetSearchQuery{Query: "steel"})

	got := FilterVendors(s.Vendors, s.SearchQuery)
	require.Len(t, got, 1)
	assert.Equal(t, "Mobarakeh Steel", got[0].BrandName)
}

func TestFilterVendors_MatchesExactlyInOrder(t *testing.T) {
	vendors := vendor.SeedVendors()
	queries := []string{"", "a", "A", "co", "GROUP", "eco", "xyz", " ", "Trading Co."}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			got := FilterVendors(vendors, q)

			var want []vendor.Vendor
			for _, v := range vendors {
				if strings.Contains(strings.ToLower(v.BrandName), strings.ToLower(q)) {
					want = append(want, v)
				}
			}
			assert.ElementsMatch(t, want, got)
			for i := 1; i < len(got); i++ {
				assert.Less(t, indexByID(vendors, got[i-1].ID), indexByID(vendors, got[i].ID))
			}
		})
	}
}

func TestFilterVendors_EmptyQueryReturnsInput(t *testing.T) {
	vendors := vendor.SeedVendors()
	got := FilterVendors(vendors, "")
	assert.Equal(t, vendors, got)
	assert.Same(t, &vendors[0], &got[0])
}

func TestFindVendor(t *testing.T) {
	vendors := vendor.SeedVendors()
	id := int64(3)
	missing := int64(99)

	got := FindVendor(vendors, &id)
	require.NotNil(t, got)
	assert.Equal(t, "Ofogh Fartak Group", got.BrandName)

	assert.Nil(t, FindVendor(vendors, &missing))
	assert.Nil(t, FindVendor(vendors, nil))
	assert.Nil(t, FindVendor(nil, &id))
}

func TestFindVendor_AfterDelete(t *testing.T) {
	s := store.NewState(vendor.SeedVendors())
	s = store.Apply(s, store.SelectVendor{ID: 2})
	s = store.Apply(s, store.DeleteVendor{ID: 2})

	assert.NotPanics(t, func() {
		assert.Nil(t, FindVendor(s.Vendors, s.SelectedVendorID))
	})
}

func TestItemsFound(t *testing.T) {
	assert.Equal(t, "0 items found.", ItemsFound(0))
	assert.Equal(t, "1 item found.", ItemsFound(1))
	assert.Equal(t, "4 items found.", ItemsFound(4))
}

func indexByID(vendors []vendor.Vendor, id int64) int {
	for i, v := range vendors {
		if v.ID == id {
			return i
		}
	}
	return -1
}
