package domain

import "time"

// Claim is one amount-based deposit ledger entry: how much of an asset a
// principal is entitled to have withdrawn on their behalf. A missing row and
// a zero-amount row mean the same thing.
type Claim struct {
	Kind      AssetKind `json:"kind"`
	Token     Address   `json:"token,omitempty"` // zero for native
	Principal Address   `json:"principal"`
	Amount    int64     `json:"amount"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NFTCustody is the record-based ledger entry for a single non-fungible
// token unit. It exists exactly while the vault holds the token; releasing
// the token deletes the record.
type NFTCustody struct {
	Token     Address   `json:"token"`
	TokenID   int64     `json:"token_id"`
	Depositor Address   `json:"depositor"`
	CreatedAt time.Time `json:"created_at"`
}
