package domain

import (
	"time"

	"github.com/google/uuid"
)

// ControllerVersion is one entry of the append-only access-control history
// the gateway trusts. Version 0 is set at bootstrap and never removed;
// versions only increase and prior entries stay queryable for audit.
type ControllerVersion struct {
	Version            uint64    `json:"version"`
	RegistryID         uuid.UUID `json:"registry_id"`
	RegistryIdentifier string    `json:"registry_identifier"`
	SetBy              Address   `json:"set_by"`
	CreatedAt          time.Time `json:"created_at"`
}
