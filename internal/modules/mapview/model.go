package mapview

import "github.com/georgemunganga/vendor-panel/internal/modules/vendor"

const (
	// DefaultZoom is the zoom level before any vendor has been selected.
	DefaultZoom = 13
	// FocusZoom is the zoom level used when flying to a selected vendor.
	FocusZoom = 15
)

// Camera is the map viewport.
type Camera struct {
	Center   vendor.Location `json:"center"`
	Zoom     int             `json:"zoom"`
	VendorID *int64          `json:"vendor_id,omitempty"` // vendor the camera last flew to
	Moves    int             `json:"moves"`
}

// Marker is one vendor pin.
type Marker struct {
	VendorID  int64           `json:"vendor_id"`
	Position  vendor.Location `json:"position"`
	BrandName string          `json:"brand_name"`
	Contact   string          `json:"contact_person"`
	Phone     string          `json:"phone"`
	TelURL    string          `json:"tel_url"`
}

// View is what the map surface renders.
type View struct {
	Camera  Camera   `json:"camera"`
	Markers []Marker `json:"markers"`
}

// Markers builds one marker per vendor. The map shows the whole roster,
// not the filtered list.
func Markers(vendors []vendor.Vendor) []Marker {
	markers := make([]Marker, 0, len(vendors))
	for _, v := range vendors {
		markers = append(markers, Marker{
			VendorID:  v.ID,
			Position:  v.Location,
			BrandName: v.BrandName,
			Contact:   v.ContactPerson,
			Phone:     v.Phone,
			TelURL:    v.TelURL(),
		})
	}
	return markers
}
