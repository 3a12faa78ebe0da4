package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransferDirection tags the two custody movements.
type TransferDirection string

const (
	TransferDirectionDeposit  TransferDirection = "DEPOSIT"
	TransferDirectionWithdraw TransferDirection = "WITHDRAW"
)

// Transfer is the immutable journal entry written for every successful
// deposit or withdrawal. Principal is the claim owner; Recipient is the
// release target (equal to Principal on deposits).
type Transfer struct {
	ID          uuid.UUID         `json:"id"`
	ReferenceID string            `json:"reference_id"`
	Direction   TransferDirection `json:"direction"`
	Kind        AssetKind         `json:"kind"`
	Token       Address           `json:"token,omitempty"`
	TokenID     *int64            `json:"token_id,omitempty"`
	Principal   Address           `json:"principal"`
	Recipient   Address           `json:"recipient"`
	Amount      int64             `json:"amount"`
	InitiatedBy Address           `json:"initiated_by"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Asset reconstructs the tagged asset class of the journal entry.
func (t *Transfer) Asset() AssetClass {
	switch t.Kind {
	case AssetKindFungible:
		return FungibleAsset(t.Token)
	case AssetKindNonFungible:
		var id int64
		if t.TokenID != nil {
			id = *t.TokenID
		}
		return NonFungibleAsset(t.Token, id)
	default:
		return NativeAsset()
	}
}

// IsDeposit reports whether the entry moved assets into custody.
func (t *Transfer) IsDeposit() bool {
	return t.Direction == TransferDirectionDeposit
}

// BuildIdempotencyKey constructs the standard idempotency key for a custody
// operation: "<principal address>:<direction>:<reference id>".
func BuildIdempotencyKey(principal Address, direction TransferDirection, referenceID string) string {
	return principal.String() + ":" + string(direction) + ":" + referenceID
}
