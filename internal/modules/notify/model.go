package notify

import (
	"time"

	"github.com/google/uuid"
)

// Kind selects how a notification is styled.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is a transient toast raised alongside a state change.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Messages shown for vendor mutations.
const (
	MessageVendorAdded   = "Vendor added successfully!"
	MessageVendorUpdated = "Vendor updated successfully!"
	MessageVendorDeleted = "Vendor deleted successfully!"
)
