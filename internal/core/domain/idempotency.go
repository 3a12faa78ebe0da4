package domain

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyLog is the durable record of a processed custody request,
// returned verbatim when the same reference is replayed.
type IdempotencyLog struct {
	Key          string    `json:"key"` // Format: "principal:direction:reference_id"
	TransferID   uuid.UUID `json:"transfer_id"`
	ResponseJSON []byte    `json:"response_json"` // Cached response to return
	CreatedAt    time.Time `json:"created_at"`
}
