package domain

import "fmt"

// AssetKind tags the three custodied asset classes.
type AssetKind string

const (
	AssetKindNative      AssetKind = "NATIVE"
	AssetKindFungible    AssetKind = "FUNGIBLE"
	AssetKindNonFungible AssetKind = "NON_FUNGIBLE"
)

// AssetClass is the tagged variant over asset classes. Token is zero for
// native assets; TokenID is meaningful only for non-fungible assets.
type AssetClass struct {
	Kind    AssetKind `json:"kind"`
	Token   Address   `json:"token,omitempty"`
	TokenID int64     `json:"token_id,omitempty"`
}

// NativeAsset returns the native currency asset class.
func NativeAsset() AssetClass {
	return AssetClass{Kind: AssetKindNative}
}

// FungibleAsset returns the asset class of a fungible token contract.
func FungibleAsset(token Address) AssetClass {
	return AssetClass{Kind: AssetKindFungible, Token: token}
}

// NonFungibleAsset returns the asset class of one token unit of an NFT
// contract.
func NonFungibleAsset(token Address, tokenID int64) AssetClass {
	return AssetClass{Kind: AssetKindNonFungible, Token: token, TokenID: tokenID}
}

// Validate checks the tag/field combination.
func (a AssetClass) Validate() error {
	switch a.Kind {
	case AssetKindNative:
		if !a.Token.IsZero() {
			return fmt.Errorf("native asset must not carry a token contract")
		}
	case AssetKindFungible:
		if a.Token.IsZero() {
			return fmt.Errorf("fungible asset requires a token contract")
		}
	case AssetKindNonFungible:
		if a.Token.IsZero() {
			return fmt.Errorf("non-fungible asset requires a token contract")
		}
		if a.TokenID < 0 {
			return fmt.Errorf("negative token id")
		}
	default:
		return fmt.Errorf("unknown asset kind %q", a.Kind)
	}
	return nil
}

// Divisible reports whether the asset is amount-based (native, fungible)
// rather than record-based (NFT).
func (a AssetClass) Divisible() bool {
	return a.Kind != AssetKindNonFungible
}

func (a AssetClass) String() string {
	switch a.Kind {
	case AssetKindNative:
		return "native"
	case AssetKindFungible:
		return fmt.Sprintf("fungible(%s)", a.Token)
	case AssetKindNonFungible:
		return fmt.Sprintf("nft(%s/%d)", a.Token, a.TokenID)
	}
	return string(a.Kind)
}
