package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Address is the opaque identifier of a principal: an external account or a
// contract-like endpoint. Addresses are 20-byte hex strings and compare by
// exact identity after normalization.
type Address string

// ZeroAddress is the empty transfer target; never a valid recipient.
const ZeroAddress Address = "0x0000000000000000000000000000000000000000"

var addressPattern = regexp.MustCompile(`^0x[0-9a-f]{40}$`)

// NormalizeAddress lowercases the input and validates the 0x-hex form.
func NormalizeAddress(s string) (Address, error) {
	a := Address(strings.ToLower(strings.TrimSpace(s)))
	if !addressPattern.MatchString(string(a)) {
		return "", fmt.Errorf("invalid address %q", s)
	}
	return a, nil
}

// IsZero reports whether the address is empty or the zero address.
func (a Address) IsZero() bool {
	return a == "" || a == ZeroAddress
}

func (a Address) String() string {
	return string(a)
}

// PrincipalStatus represents the state of a principal account.
type PrincipalStatus string

const (
	PrincipalStatusActive      PrincipalStatus = "ACTIVE"
	PrincipalStatusSuspended   PrincipalStatus = "SUSPENDED"
	PrincipalStatusDeactivated PrincipalStatus = "DEACTIVATED"
)

// Principal is a registered account on the gateway. The Address is the
// identity used for role membership, ledger claims and transfer endpoints;
// the key material authenticates API requests.
type Principal struct {
	ID           uuid.UUID       `json:"id"`
	Username     string          `json:"username"`
	PasswordHash string          `json:"-"` // Never expose
	Address      Address         `json:"address"`
	AccessKey    string          `json:"access_key"`
	SecretKeyEnc string          `json:"-"` // Encrypted, never expose
	WebhookURL   string          `json:"webhook_url,omitempty"`
	Status       PrincipalStatus `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// IsActive returns true if the principal account is active.
func (p *Principal) IsActive() bool {
	return p.Status == PrincipalStatusActive
}
