package domain

import "time"

// WhitelistKind separates the fungible and non-fungible deposit whitelists.
type WhitelistKind string

const (
	WhitelistKindFungible    WhitelistKind = "FUNGIBLE"
	WhitelistKindNonFungible WhitelistKind = "NON_FUNGIBLE"
)

// WhitelistEntry is one token contract admitted for deposit. Position is the
// insertion order used for index-based enumeration; removing an entry does
// not reorder the retained ones. Whitelisting is a deposit precondition
// only — assets already in custody stay withdrawable after removal.
type WhitelistEntry struct {
	Kind      WhitelistKind `json:"kind"`
	Token     Address       `json:"token"`
	Position  int64         `json:"position"`
	AddedBy   Address       `json:"added_by"`
	CreatedAt time.Time     `json:"created_at"`
}
