package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/georgemunganga/vendor-panel/internal/modules/vendor"
)

var (
	// ErrUnknownAction is returned for an envelope whose type tag is not an action.
	ErrUnknownAction = errors.New("unknown action type")
	// ErrInvalidPayload is returned when the payload does not fit the action.
	ErrInvalidPayload = errors.New("invalid action payload")
)

// Envelope is the wire form of an action: {"type": "...", "payload": ...}.
type Envelope struct {
	Type    Type            `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// DecodeAction parses an action envelope.
func DecodeAction(data []byte) (Action, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode action envelope: %w", err)
	}
	return env.Action()
}

// Action converts the envelope into a typed action.
func (e Envelope) Action() (Action, error) {
	switch e.Type {
	case TypeSetSearchQuery:
		var q string
		if err := e.decode(&q, true); err != nil {
			return nil, err
		}
		return SetSearchQuery{Query: q}, nil
	case TypeSelectVendor:
		var id int64
		if err := e.decode(&id, true); err != nil {
			return nil, err
		}
		return SelectVendor{ID: id}, nil
	case TypeAddVendor:
		var f vendor.Fields
		if err := e.decode(&f, true); err != nil {
			return nil, err
		}
		return AddVendor{Fields: f}, nil
	case TypeUpdateVendor:
		var v vendor.Vendor
		if err := e.decode(&v, true); err != nil {
			return nil, err
		}
		return UpdateVendor{Vendor: v}, nil
	case TypeDeleteVendor:
		var id int64
		if err := e.decode(&id, true); err != nil {
			return nil, err
		}
		return DeleteVendor{ID: id}, nil
	case TypeOpenAddEditModal:
		var v *vendor.Vendor
		if err := e.decode(&v, false); err != nil {
			return nil, err
		}
		return OpenAddEditModal{Vendor: v}, nil
	case TypeOpenDeleteModal:
		var v vendor.Vendor
		if err := e.decode(&v, true); err != nil {
			return nil, err
		}
		return OpenDeleteModal{Vendor: v}, nil
	case TypeCloseModals:
		return CloseModals{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, e.Type)
	}
}

func (e Envelope) decode(dst any, required bool) error {
	if len(e.Payload) == 0 || bytes.Equal(bytes.TrimSpace(e.Payload), []byte("null")) {
		if required {
			return fmt.Errorf("%w: %s requires a payload", ErrInvalidPayload, e.Type)
		}
		return nil
	}
	if err := json.Unmarshal(e.Payload, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPayload, e.Type, err)
	}
	return nil
}

// EncodeAction renders a as an envelope.
func EncodeAction(a Action) ([]byte, error) {
	var payload any
	switch a := a.(type) {
	case SetSearchQuery:
		payload = a.Query
	case SelectVendor:
		payload = a.ID
	case AddVendor:
		payload = a.Fields
	case UpdateVendor:
		payload = a.Vendor
	case DeleteVendor:
		payload = a.ID
	case OpenAddEditModal:
		if a.Vendor != nil {
			payload = a.Vendor
		}
	case OpenDeleteModal:
		payload = a.Vendor
	case CloseModals:
	case nil:
		return nil, fmt.Errorf("%w: nil action", ErrUnknownAction)
	}

	env := Envelope{Type: a.Type()}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s payload: %w", a.Type(), err)
		}
		env.Payload = raw
	}
	return json.Marshal(env)
}

type modalJSON struct {
	Kind               ModalKind      `json:"kind"`
	IsAddEditModalOpen bool           `json:"isAddEditModalOpen"`
	IsDeleteModalOpen  bool           `json:"isDeleteModalOpen"`
	VendorToEdit       *vendor.Vendor `json:"vendorToEdit"`
	VendorToDelete     *vendor.Vendor `json:"vendorToDelete"`
}

func (m Modal) MarshalJSON() ([]byte, error) {
	return json.Marshal(modalJSON{
		Kind:               m.Kind(),
		IsAddEditModalOpen: m.IsAddEditOpen(),
		IsDeleteModalOpen:  m.IsDeleteOpen(),
		VendorToEdit:       m.EditTarget(),
		VendorToDelete:     m.DeleteTarget(),
	})
}
