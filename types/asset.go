package types

import "github.com/ethereum/go-ethereum/common"

// AssetHandlerKind classifies which contract handles a registered asset.
type AssetHandlerKind string

const (
	// HandlerHub marks assets handled directly by the bridge hub.
	HandlerHub AssetHandlerKind = "Hub"
	// HandlerVault marks assets backed by the native token vault.
	HandlerVault AssetHandlerKind = "Vault"
	// HandlerOther marks assets registered by an unrecognized deployment
	// tracker.
	HandlerOther AssetHandlerKind = "Other"
)

// RegisteredAsset is one asset registered with the shared asset router,
// classified by the contract that registered it.
//
// TokenAddress and TokenName are only set for HandlerVault assets; TokenName
// is resolved once at discovery time and never re-fetched. Tracker is only
// set for HandlerOther assets.
type RegisteredAsset struct {
	ID           common.Hash
	Handler      AssetHandlerKind
	TokenAddress common.Address
	TokenName    string
	Tracker      common.Address
}
